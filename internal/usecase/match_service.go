package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/match"
)

type MatchService struct {
	matchRepo    match.Repository
	gameweekRepo gameweek.Repository
}

func NewMatchService(matchRepo match.Repository, gameweekRepo gameweek.Repository) *MatchService {
	return &MatchService{
		matchRepo:    matchRepo,
		gameweekRepo: gameweekRepo,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, gameweekID string) ([]match.Match, error) {
	gameweekID = strings.TrimSpace(gameweekID)
	if gameweekID == "" {
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list matches: %v", ErrStorageFailure, err)
		}
		return matches, nil
	}

	_, exists, err := s.gameweekRepo.GetByID(ctx, gameweekID)
	if err != nil {
		return nil, fmt.Errorf("%w: get gameweek: %v", ErrStorageFailure, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: gameweek %s", ErrNotFound, gameweekID)
	}

	matches, err := s.matchRepo.ListByGameweek(ctx, gameweekID)
	if err != nil {
		return nil, fmt.Errorf("%w: list matches by gameweek: %v", ErrStorageFailure, err)
	}

	return matches, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: get match: %v", ErrStorageFailure, err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	return m, nil
}
