package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
	idgen "github.com/openfpl/fantasy-backend/internal/platform/id"
)

// AddPlayerInput is the incoming payload for one roster addition.
type AddPlayerInput struct {
	FantasyTeamID string
	PlayerID      string
	UserID        string
	IsCaptain     bool
	IsViceCaptain bool
	IsOnBench     bool
}

// RosterService orchestrates roster additions: ownership check, player
// lookup, composition validation, then the atomic selection-plus-debit
// commit. Every rejection path leaves storage untouched.
type RosterService struct {
	teamRepo     fantasy.TeamRepository
	rosterRepo   fantasy.RosterRepository
	playerRepo   player.Repository
	gameweekRepo gameweek.Repository
	rules        fantasy.Rules
	idGen        idgen.Generator
	logger       *slog.Logger
	now          func() time.Time
}

func NewRosterService(
	teamRepo fantasy.TeamRepository,
	rosterRepo fantasy.RosterRepository,
	playerRepo player.Repository,
	gameweekRepo gameweek.Repository,
	rules fantasy.Rules,
	idGen idgen.Generator,
	logger *slog.Logger,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		teamRepo:     teamRepo,
		rosterRepo:   rosterRepo,
		playerRepo:   playerRepo,
		gameweekRepo: gameweekRepo,
		rules:        rules,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *RosterService) AddPlayer(ctx context.Context, input AddPlayerInput) (fantasy.RosterSelection, error) {
	input.FantasyTeamID = strings.TrimSpace(input.FantasyTeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.UserID = strings.TrimSpace(input.UserID)

	if input.FantasyTeamID == "" {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: fantasy team id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.UserID == "" {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, input.FantasyTeamID)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: get fantasy team: %v", ErrStorageFailure, err)
	}
	if !exists {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: fantasy team %s", ErrNotFound, input.FantasyTeamID)
	}
	if team.UserID != input.UserID {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: fantasy team %s is not owned by the requesting user", ErrForbidden, input.FantasyTeamID)
	}

	candidate, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: get player: %v", ErrStorageFailure, err)
	}
	if !exists {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: player %s", ErrNotFound, input.PlayerID)
	}

	current, exists, err := s.gameweekRepo.GetCurrent(ctx)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: get current gameweek: %v", ErrStorageFailure, err)
	}
	if !exists {
		return fantasy.RosterSelection{}, ErrNoCurrentGameweek
	}

	roster, err := s.rosterRepo.GetRoster(ctx, team.ID, current.ID)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("%w: load roster: %v", ErrStorageFailure, err)
	}

	newBudget, err := fantasy.CheckAddition(fantasy.Candidate{
		PlayerID: candidate.ID,
		TeamID:   candidate.TeamID,
		Position: candidate.Position,
		Price:    candidate.Price,
	}, roster, team.RemainingBudget, s.rules)
	if err != nil {
		return fantasy.RosterSelection{}, err
	}

	selectionID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("generate selection id: %w", err)
	}

	selection, err := s.rosterRepo.CommitAddition(ctx, fantasy.CommitAdditionInput{
		SelectionID:    selectionID,
		FantasyTeamID:  team.ID,
		GameweekID:     current.ID,
		PlayerID:       candidate.ID,
		IsCaptain:      input.IsCaptain,
		IsViceCaptain:  input.IsViceCaptain,
		IsOnBench:      input.IsOnBench,
		ExpectedBudget: team.RemainingBudget,
		NewBudget:      newBudget,
	})
	if err != nil {
		if errors.Is(err, fantasy.ErrPlayerAlreadySelected) || errors.Is(err, fantasy.ErrRosterConflict) {
			return fantasy.RosterSelection{}, err
		}
		return fantasy.RosterSelection{}, fmt.Errorf("%w: commit addition: %v", ErrStorageFailure, err)
	}

	s.logger.InfoContext(ctx, "player added to fantasy team",
		"fantasy_team_id", team.ID,
		"gameweek_id", current.ID,
		"player_id", candidate.ID,
		"price", fantasy.FormatAmount(candidate.Price),
		"budget_left", fantasy.FormatAmount(newBudget),
	)

	return selection, nil
}

// Roster returns the owner's current-gameweek selections joined with player
// details, for the squad view.
func (s *RosterService) Roster(ctx context.Context, teamID, userID string) ([]fantasy.PickedPlayer, gameweek.Gameweek, error) {
	teamID = strings.TrimSpace(teamID)
	userID = strings.TrimSpace(userID)
	if teamID == "" || userID == "" {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: team id and user id are required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: get fantasy team: %v", ErrStorageFailure, err)
	}
	if !exists {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: fantasy team %s", ErrNotFound, teamID)
	}
	if team.UserID != userID {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: fantasy team %s is not owned by the requesting user", ErrForbidden, teamID)
	}

	current, exists, err := s.gameweekRepo.GetCurrent(ctx)
	if err != nil {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: get current gameweek: %v", ErrStorageFailure, err)
	}
	if !exists {
		return nil, gameweek.Gameweek{}, ErrNoCurrentGameweek
	}

	roster, err := s.rosterRepo.GetRoster(ctx, team.ID, current.ID)
	if err != nil {
		return nil, gameweek.Gameweek{}, fmt.Errorf("%w: load roster: %v", ErrStorageFailure, err)
	}

	return roster, current, nil
}
