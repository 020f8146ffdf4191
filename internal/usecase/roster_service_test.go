package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type rosterFixture struct {
	teams   *memory.FantasyTeamRepository
	rosters *memory.RosterRepository
	service *RosterService
}

func newRosterFixture(t *testing.T, rules fantasy.Rules, gameweeks []gameweek.Gameweek) rosterFixture {
	t.Helper()

	teams := memory.NewFantasyTeamRepository()
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	rosters := memory.NewRosterRepository(teams, players)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRosterService(
		teams,
		rosters,
		players,
		memory.NewGameweekRepository(gameweeks),
		rules,
		staticIDGenerator{id: "sel-001"},
		logger,
	)

	return rosterFixture{teams: teams, rosters: rosters, service: service}
}

func (f rosterFixture) createTeam(t *testing.T, id, userID string, budget int64) {
	t.Helper()

	err := f.teams.Create(t.Context(), fantasy.Team{
		ID:              id,
		UserID:          userID,
		Name:            "Test XI",
		RemainingBudget: budget,
		CreatedAt:       time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create fantasy team: %v", err)
	}
}

func (f rosterFixture) remainingBudget(t *testing.T, teamID string) int64 {
	t.Helper()

	team, ok, err := f.teams.GetByID(t.Context(), teamID)
	if err != nil || !ok {
		t.Fatalf("get fantasy team %s: ok=%t err=%v", teamID, ok, err)
	}
	return team.RemainingBudget
}

func TestRosterService_AddPlayer_DebitsBudget(t *testing.T) {
	f := newRosterFixture(t, fantasy.DefaultRules(), memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 200)

	selection, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1",
		PlayerID:      "pl-ars-fwd-1", // price 100
		UserID:        "user-1",
		IsCaptain:     true,
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}

	if selection.ID != "sel-001" {
		t.Fatalf("unexpected selection id: %s", selection.ID)
	}
	if selection.FantasyTeamID != "ft-1" || selection.PlayerID != "pl-ars-fwd-1" {
		t.Fatalf("unexpected selection: %+v", selection)
	}
	if selection.GameweekID != memory.GameweekIDTwo {
		t.Fatalf("expected current gameweek %s, got %s", memory.GameweekIDTwo, selection.GameweekID)
	}
	if !selection.IsCaptain {
		t.Fatal("expected captain flag to survive the commit")
	}
	if got := f.remainingBudget(t, "ft-1"); got != 100 {
		t.Fatalf("expected remaining budget 100, got %d", got)
	}
}

func TestRosterService_AddPlayer_InsufficientBudget(t *testing.T) {
	f := newRosterFixture(t, fantasy.DefaultRules(), memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 30)

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1",
		PlayerID:      "pl-ars-gk-1", // price 55
		UserID:        "user-1",
	})
	if !errors.Is(err, fantasy.ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}

	if got := f.remainingBudget(t, "ft-1"); got != 30 {
		t.Fatalf("rejected addition must not touch the budget, got %d", got)
	}
	roster, err := f.rosters.GetRoster(t.Context(), "ft-1", memory.GameweekIDTwo)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("rejected addition must not create a selection, got %d", len(roster))
	}
}

func TestRosterService_AddPlayer_PositionLimit(t *testing.T) {
	rules := fantasy.DefaultRules()
	rules.MaxByPosition["GK"] = 1

	f := newRosterFixture(t, rules, memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	if _, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-ars-gk-1", UserID: "user-1",
	}); err != nil {
		t.Fatalf("first goalkeeper: %v", err)
	}

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-che-gk-1", UserID: "user-1",
	})
	if !errors.Is(err, fantasy.ErrPositionLimitReached) {
		t.Fatalf("expected ErrPositionLimitReached, got %v", err)
	}
}

func TestRosterService_AddPlayer_ClubLimit(t *testing.T) {
	rules := fantasy.DefaultRules()
	rules.MaxPlayersPerTeam = 2

	f := newRosterFixture(t, rules, memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	for _, playerID := range []string{"pl-ars-gk-1", "pl-ars-def-1"} {
		if _, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: playerID, UserID: "user-1",
		}); err != nil {
			t.Fatalf("add %s: %v", playerID, err)
		}
	}

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-ars-def-2", UserID: "user-1",
	})
	if !errors.Is(err, fantasy.ErrTeamLimitReached) {
		t.Fatalf("expected ErrTeamLimitReached, got %v", err)
	}
}

func TestRosterService_AddPlayer_SquadFull(t *testing.T) {
	rules := fantasy.DefaultRules()
	rules.SquadSize = 2

	f := newRosterFixture(t, rules, memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	for _, playerID := range []string{"pl-ars-gk-1", "pl-che-def-1"} {
		if _, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: playerID, UserID: "user-1",
		}); err != nil {
			t.Fatalf("add %s: %v", playerID, err)
		}
	}

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-liv-mid-1", UserID: "user-1",
	})
	if !errors.Is(err, fantasy.ErrSquadFull) {
		t.Fatalf("expected ErrSquadFull, got %v", err)
	}
}

func TestRosterService_AddPlayer_DuplicateSelection(t *testing.T) {
	f := newRosterFixture(t, fantasy.DefaultRules(), memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	if _, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-ars-fwd-1", UserID: "user-1",
	}); err != nil {
		t.Fatalf("first addition: %v", err)
	}

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-ars-fwd-1", UserID: "user-1",
	})
	if !errors.Is(err, fantasy.ErrPlayerAlreadySelected) {
		t.Fatalf("expected ErrPlayerAlreadySelected, got %v", err)
	}
	if got := f.remainingBudget(t, "ft-1"); got != 900 {
		t.Fatalf("duplicate rejection must not debit again, got %d", got)
	}
}

func TestRosterService_AddPlayer_OwnershipAndLookups(t *testing.T) {
	f := newRosterFixture(t, fantasy.DefaultRules(), memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	t.Run("team owned by someone else", func(t *testing.T) {
		_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: "pl-ars-gk-1", UserID: "user-2",
		})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown fantasy team", func(t *testing.T) {
		_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-missing", PlayerID: "pl-ars-gk-1", UserID: "user-1",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: "pl-missing", UserID: "user-1",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank player id", func(t *testing.T) {
		_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: "   ", UserID: "user-1",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestRosterService_AddPlayer_NoCurrentGameweek(t *testing.T) {
	gameweeks := []gameweek.Gameweek{
		{ID: "gw-99", Number: 99, Deadline: time.Date(2026, 9, 4, 17, 30, 0, 0, time.UTC)},
	}

	f := newRosterFixture(t, fantasy.DefaultRules(), gameweeks)
	f.createTeam(t, "ft-1", "user-1", 1000)

	_, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
		FantasyTeamID: "ft-1", PlayerID: "pl-ars-gk-1", UserID: "user-1",
	})
	if !errors.Is(err, ErrNoCurrentGameweek) {
		t.Fatalf("expected ErrNoCurrentGameweek, got %v", err)
	}
}

func TestRosterService_Roster_ReturnsCurrentSelections(t *testing.T) {
	f := newRosterFixture(t, fantasy.DefaultRules(), memory.SeedGameweeks())
	f.createTeam(t, "ft-1", "user-1", 1000)

	for _, playerID := range []string{"pl-ars-gk-1", "pl-che-mid-1"} {
		if _, err := f.service.AddPlayer(t.Context(), AddPlayerInput{
			FantasyTeamID: "ft-1", PlayerID: playerID, UserID: "user-1",
		}); err != nil {
			t.Fatalf("add %s: %v", playerID, err)
		}
	}

	roster, current, err := f.service.Roster(t.Context(), "ft-1", "user-1")
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if current.ID != memory.GameweekIDTwo {
		t.Fatalf("expected current gameweek %s, got %s", memory.GameweekIDTwo, current.ID)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 picked players, got %d", len(roster))
	}

	if _, _, err := f.service.Roster(t.Context(), "ft-1", "user-2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
