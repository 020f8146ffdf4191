package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
)

func newRosterHarness(t *testing.T, budget int64) (*FantasyTeamRepository, *RosterRepository) {
	t.Helper()

	teams := NewFantasyTeamRepository()
	players := NewPlayerRepository(SeedPlayers())
	rosters := NewRosterRepository(teams, players)

	err := teams.Create(t.Context(), fantasy.Team{
		ID:              "ft-1",
		UserID:          "user-1",
		Name:            "Test XI",
		RemainingBudget: budget,
		CreatedAt:       time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create fantasy team: %v", err)
	}

	return teams, rosters
}

func TestRosterRepository_CommitAddition_AppliesBoth(t *testing.T) {
	teams, rosters := newRosterHarness(t, 1000)

	selection, err := rosters.CommitAddition(t.Context(), fantasy.CommitAdditionInput{
		SelectionID:    "sel-1",
		FantasyTeamID:  "ft-1",
		GameweekID:     GameweekIDTwo,
		PlayerID:       "pl-ars-gk-1",
		ExpectedBudget: 1000,
		NewBudget:      945,
	})
	if err != nil {
		t.Fatalf("commit addition: %v", err)
	}
	if selection.ID != "sel-1" || selection.PlayerID != "pl-ars-gk-1" {
		t.Fatalf("unexpected selection: %+v", selection)
	}

	team, _, err := teams.GetByID(t.Context(), "ft-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if team.RemainingBudget != 945 {
		t.Fatalf("expected budget 945, got %d", team.RemainingBudget)
	}

	roster, err := rosters.GetRoster(t.Context(), "ft-1", GameweekIDTwo)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if len(roster) != 1 || roster[0].PlayerID != "pl-ars-gk-1" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
	if roster[0].TeamID != TeamIDArsenal {
		t.Fatalf("picked player must carry the club id, got %q", roster[0].TeamID)
	}
}

func TestRosterRepository_CommitAddition_StaleBudgetConflict(t *testing.T) {
	teams, rosters := newRosterHarness(t, 1000)

	_, err := rosters.CommitAddition(t.Context(), fantasy.CommitAdditionInput{
		SelectionID:    "sel-1",
		FantasyTeamID:  "ft-1",
		GameweekID:     GameweekIDTwo,
		PlayerID:       "pl-ars-gk-1",
		ExpectedBudget: 900, // stale read
		NewBudget:      845,
	})
	if !errors.Is(err, fantasy.ErrRosterConflict) {
		t.Fatalf("expected ErrRosterConflict, got %v", err)
	}

	team, _, err := teams.GetByID(t.Context(), "ft-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if team.RemainingBudget != 1000 {
		t.Fatalf("conflict must not debit, got %d", team.RemainingBudget)
	}

	roster, err := rosters.GetRoster(t.Context(), "ft-1", GameweekIDTwo)
	if err != nil {
		t.Fatalf("get roster: %v", err)
	}
	if len(roster) != 0 {
		t.Fatalf("conflict must not insert a selection, got %d", len(roster))
	}
}

func TestRosterRepository_CommitAddition_DuplicateKey(t *testing.T) {
	teams, rosters := newRosterHarness(t, 1000)

	first := fantasy.CommitAdditionInput{
		SelectionID:    "sel-1",
		FantasyTeamID:  "ft-1",
		GameweekID:     GameweekIDTwo,
		PlayerID:       "pl-ars-gk-1",
		ExpectedBudget: 1000,
		NewBudget:      945,
	}
	if _, err := rosters.CommitAddition(t.Context(), first); err != nil {
		t.Fatalf("first commit: %v", err)
	}

	second := first
	second.SelectionID = "sel-2"
	second.ExpectedBudget = 945
	second.NewBudget = 890
	if _, err := rosters.CommitAddition(t.Context(), second); !errors.Is(err, fantasy.ErrPlayerAlreadySelected) {
		t.Fatalf("expected ErrPlayerAlreadySelected, got %v", err)
	}

	team, _, err := teams.GetByID(t.Context(), "ft-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if team.RemainingBudget != 945 {
		t.Fatalf("duplicate must not debit again, got %d", team.RemainingBudget)
	}
}

func TestRosterRepository_CommitAddition_UnknownPlayerRestoresBudget(t *testing.T) {
	teams, rosters := newRosterHarness(t, 1000)

	_, err := rosters.CommitAddition(t.Context(), fantasy.CommitAdditionInput{
		SelectionID:    "sel-1",
		FantasyTeamID:  "ft-1",
		GameweekID:     GameweekIDTwo,
		PlayerID:       "pl-missing",
		ExpectedBudget: 1000,
		NewBudget:      945,
	})
	if !errors.Is(err, fantasy.ErrRosterConflict) {
		t.Fatalf("expected ErrRosterConflict, got %v", err)
	}

	team, _, err := teams.GetByID(t.Context(), "ft-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if team.RemainingBudget != 1000 {
		t.Fatalf("failed commit must restore the budget, got %d", team.RemainingBudget)
	}
}
