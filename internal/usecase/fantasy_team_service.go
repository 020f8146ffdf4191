package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	idgen "github.com/openfpl/fantasy-backend/internal/platform/id"
)

const maxTeamNameLength = 100

// FantasyTeamService covers fantasy team lifecycle outside the roster core:
// creation with the starting budget, listing, renaming.
type FantasyTeamService struct {
	teamRepo fantasy.TeamRepository
	rules    fantasy.Rules
	idGen    idgen.Generator
	logger   *slog.Logger
	now      func() time.Time
}

func NewFantasyTeamService(
	teamRepo fantasy.TeamRepository,
	rules fantasy.Rules,
	idGen idgen.Generator,
	logger *slog.Logger,
) *FantasyTeamService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FantasyTeamService{
		teamRepo: teamRepo,
		rules:    rules,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *FantasyTeamService) CreateTeam(ctx context.Context, userID, name string) (fantasy.Team, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)

	if userID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if name == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if len(name) > maxTeamNameLength {
		return fantasy.Team{}, fmt.Errorf("%w: team name exceeds %d characters", ErrInvalidInput, maxTeamNameLength)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	team := fantasy.Team{
		ID:              teamID,
		UserID:          userID,
		Name:            name,
		RemainingBudget: s.rules.StartingBudget,
		TotalPoints:     0,
		CreatedAt:       s.now().UTC(),
	}
	if err := team.Validate(); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: create fantasy team: %v", ErrStorageFailure, err)
	}

	s.logger.InfoContext(ctx, "fantasy team created",
		"fantasy_team_id", team.ID,
		"user_id", userID,
		"starting_budget", fantasy.FormatAmount(team.RemainingBudget),
	)

	return team, nil
}

func (s *FantasyTeamService) ListUserTeams(ctx context.Context, userID string) ([]fantasy.Team, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list fantasy teams: %v", ErrStorageFailure, err)
	}

	return teams, nil
}

func (s *FantasyTeamService) GetTeam(ctx context.Context, teamID, userID string) (fantasy.Team, error) {
	teamID = strings.TrimSpace(teamID)
	userID = strings.TrimSpace(userID)
	if teamID == "" || userID == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team id and user id are required", ErrInvalidInput)
	}

	team, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: get fantasy team: %v", ErrStorageFailure, err)
	}
	if !exists {
		return fantasy.Team{}, fmt.Errorf("%w: fantasy team %s", ErrNotFound, teamID)
	}
	if team.UserID != userID {
		return fantasy.Team{}, fmt.Errorf("%w: fantasy team %s is not owned by the requesting user", ErrForbidden, teamID)
	}

	return team, nil
}

func (s *FantasyTeamService) RenameTeam(ctx context.Context, teamID, userID, name string) (fantasy.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fantasy.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if len(name) > maxTeamNameLength {
		return fantasy.Team{}, fmt.Errorf("%w: team name exceeds %d characters", ErrInvalidInput, maxTeamNameLength)
	}

	team, err := s.GetTeam(ctx, teamID, userID)
	if err != nil {
		return fantasy.Team{}, err
	}

	if err := s.teamRepo.Rename(ctx, team.ID, name); err != nil {
		return fantasy.Team{}, fmt.Errorf("%w: rename fantasy team: %v", ErrStorageFailure, err)
	}
	team.Name = name

	return team, nil
}
