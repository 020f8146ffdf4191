package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openfpl/fantasy-backend/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list teams: %v", ErrStorageFailure, err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: get team: %v", ErrStorageFailure, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	return t, nil
}
