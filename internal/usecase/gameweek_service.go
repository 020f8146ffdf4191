package usecase

import (
	"context"
	"fmt"

	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
)

type GameweekService struct {
	gameweekRepo gameweek.Repository
}

func NewGameweekService(gameweekRepo gameweek.Repository) *GameweekService {
	return &GameweekService{gameweekRepo: gameweekRepo}
}

func (s *GameweekService) ListGameweeks(ctx context.Context) ([]gameweek.Gameweek, error) {
	gameweeks, err := s.gameweekRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list gameweeks: %v", ErrStorageFailure, err)
	}

	return gameweeks, nil
}

func (s *GameweekService) GetCurrentGameweek(ctx context.Context) (gameweek.Gameweek, error) {
	current, exists, err := s.gameweekRepo.GetCurrent(ctx)
	if err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("%w: get current gameweek: %v", ErrStorageFailure, err)
	}
	if !exists {
		return gameweek.Gameweek{}, ErrNoCurrentGameweek
	}

	return current, nil
}
