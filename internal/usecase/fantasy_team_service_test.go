package usecase

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/repository/memory"
)

func newFantasyTeamService(repo *memory.FantasyTeamRepository) *FantasyTeamService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFantasyTeamService(repo, fantasy.DefaultRules(), staticIDGenerator{id: "ft-001"}, logger)
}

func TestFantasyTeamService_CreateTeam_AppliesStartingBudget(t *testing.T) {
	repo := memory.NewFantasyTeamRepository()
	service := newFantasyTeamService(repo)

	now := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	team, err := service.CreateTeam(t.Context(), "user-1", "  North End XI  ")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if team.ID != "ft-001" {
		t.Fatalf("unexpected team id: %s", team.ID)
	}
	if team.Name != "North End XI" {
		t.Fatalf("expected trimmed name, got %q", team.Name)
	}
	if team.RemainingBudget != fantasy.DefaultRules().StartingBudget {
		t.Fatalf("expected starting budget, got %d", team.RemainingBudget)
	}
	if !team.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", team.CreatedAt)
	}

	stored, ok, err := repo.GetByID(t.Context(), "ft-001")
	if err != nil || !ok {
		t.Fatalf("stored team lookup: ok=%t err=%v", ok, err)
	}
	if stored.TotalPoints != 0 {
		t.Fatalf("new team must start at zero points, got %d", stored.TotalPoints)
	}
}

func TestFantasyTeamService_CreateTeam_RejectsBadNames(t *testing.T) {
	service := newFantasyTeamService(memory.NewFantasyTeamRepository())

	if _, err := service.CreateTeam(t.Context(), "user-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := service.CreateTeam(t.Context(), "user-1", strings.Repeat("x", 101)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized name, got %v", err)
	}
	if _, err := service.CreateTeam(t.Context(), "", "North End XI"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
}

func TestFantasyTeamService_RenameTeam(t *testing.T) {
	repo := memory.NewFantasyTeamRepository()
	service := newFantasyTeamService(repo)

	if _, err := service.CreateTeam(t.Context(), "user-1", "North End XI"); err != nil {
		t.Fatalf("create team: %v", err)
	}

	renamed, err := service.RenameTeam(t.Context(), "ft-001", "user-1", "South End XI")
	if err != nil {
		t.Fatalf("rename team: %v", err)
	}
	if renamed.Name != "South End XI" {
		t.Fatalf("unexpected name: %q", renamed.Name)
	}

	if _, err := service.RenameTeam(t.Context(), "ft-001", "user-2", "Hijacked"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := service.RenameTeam(t.Context(), "ft-missing", "user-1", "Ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFantasyTeamService_ListUserTeams_FiltersByOwner(t *testing.T) {
	repo := memory.NewFantasyTeamRepository()
	service := newFantasyTeamService(repo)

	base := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	for i, seed := range []fantasy.Team{
		{ID: "ft-a", UserID: "user-1", Name: "First"},
		{ID: "ft-b", UserID: "user-2", Name: "Other"},
		{ID: "ft-c", UserID: "user-1", Name: "Second"},
	} {
		seed.RemainingBudget = 1000
		seed.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(t.Context(), seed); err != nil {
			t.Fatalf("seed team %s: %v", seed.ID, err)
		}
	}

	teams, err := service.ListUserTeams(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list user teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].ID != "ft-a" || teams[1].ID != "ft-c" {
		t.Fatalf("expected creation order ft-a, ft-c; got %s, %s", teams[0].ID, teams[1].ID)
	}
}
