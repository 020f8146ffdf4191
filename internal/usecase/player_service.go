package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openfpl/fantasy-backend/internal/domain/player"
	"github.com/openfpl/fantasy-backend/internal/domain/team"
	idgen "github.com/openfpl/fantasy-backend/internal/platform/id"
)

const defaultTopScorersLimit = 10

// UpsertPlayerInput is the incoming payload for create/update player.
type UpsertPlayerInput struct {
	TeamID      string
	FirstName   string
	LastName    string
	Position    string
	Price       int64
	TotalPoints int
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	logger     *slog.Logger
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen idgen.Generator, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: list players: %v", ErrStorageFailure, err)
		}
		return players, nil
	}

	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: list players by team: %v", ErrStorageFailure, err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: get player: %v", ErrStorageFailure, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input UpsertPlayerInput) (player.Player, error) {
	if err := s.requireTeam(ctx, strings.TrimSpace(input.TeamID)); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:          playerID,
		TeamID:      strings.TrimSpace(input.TeamID),
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Position:    player.Position(strings.ToUpper(strings.TrimSpace(input.Position))),
		Price:       input.Price,
		TotalPoints: input.TotalPoints,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("%w: create player: %v", ErrStorageFailure, err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", p.ID, "team_id", p.TeamID)

	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, input UpsertPlayerInput) (player.Player, error) {
	existing, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	updated := existing
	if teamID := strings.TrimSpace(input.TeamID); teamID != "" {
		if err := s.requireTeam(ctx, teamID); err != nil {
			return player.Player{}, err
		}
		updated.TeamID = teamID
	}
	if firstName := strings.TrimSpace(input.FirstName); firstName != "" {
		updated.FirstName = firstName
	}
	if lastName := strings.TrimSpace(input.LastName); lastName != "" {
		updated.LastName = lastName
	}
	if position := strings.TrimSpace(input.Position); position != "" {
		updated.Position = player.Position(strings.ToUpper(position))
	}
	if input.Price > 0 {
		updated.Price = input.Price
	}
	if input.TotalPoints > 0 {
		updated.TotalPoints = input.TotalPoints
	}

	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("%w: update player: %v", ErrStorageFailure, err)
	}

	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("%w: delete player: %v", ErrStorageFailure, err)
	}
	if !deleted {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	return nil
}

func (s *PlayerService) TopScorers(ctx context.Context, limit int) ([]player.Player, error) {
	if limit <= 0 {
		limit = defaultTopScorersLimit
	}

	players, err := s.playerRepo.TopScorers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: top scorers: %v", ErrStorageFailure, err)
	}

	return players, nil
}

func (s *PlayerService) requireTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("%w: get team: %v", ErrStorageFailure, err)
	}
	if !exists {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	return nil
}
