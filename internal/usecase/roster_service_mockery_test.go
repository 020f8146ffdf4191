package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/repository/memory"
	fantasymock "github.com/openfpl/fantasy-backend/internal/mocks/domain/fantasy"
)

func TestRosterService_AddPlayer_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := fantasymock.NewTeamRepository(t)
	rosterRepo := fantasymock.NewRosterRepository(t)
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	gameweeks := memory.NewGameweekRepository(memory.SeedGameweeks())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRosterService(
		teamRepo,
		rosterRepo,
		players,
		gameweeks,
		fantasy.DefaultRules(),
		staticIDGenerator{id: "sel-mock"},
		logger,
	)

	team := fantasy.Team{ID: "ft-1", UserID: "user-1", Name: "Alpha", RemainingBudget: 200}
	expected := fantasy.RosterSelection{
		ID:            "sel-mock",
		FantasyTeamID: "ft-1",
		GameweekID:    memory.GameweekIDTwo,
		PlayerID:      "pl-ars-fwd-1",
		CreatedAt:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}

	teamRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ft-1").
		Return(team, true, nil).
		Once()
	rosterRepo.
		On("GetRoster", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "ft-1", memory.GameweekIDTwo).
		Return([]fantasy.PickedPlayer{}, nil).
		Once()
	rosterRepo.
		On("CommitAddition", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), fantasy.CommitAdditionInput{
			SelectionID:    "sel-mock",
			FantasyTeamID:  "ft-1",
			GameweekID:     memory.GameweekIDTwo,
			PlayerID:       "pl-ars-fwd-1",
			ExpectedBudget: 200,
			NewBudget:      100,
		}).
		Return(expected, nil).
		Once()

	got, err := service.AddPlayer(ctx, AddPlayerInput{
		FantasyTeamID: "ft-1",
		PlayerID:      "pl-ars-fwd-1",
		UserID:        "user-1",
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if got.ID != expected.ID || got.PlayerID != expected.PlayerID {
		t.Fatalf("unexpected selection: %+v", got)
	}
}

func TestRosterService_AddPlayer_ConflictUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := fantasymock.NewTeamRepository(t)
	rosterRepo := fantasymock.NewRosterRepository(t)
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	gameweeks := memory.NewGameweekRepository(memory.SeedGameweeks())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRosterService(
		teamRepo,
		rosterRepo,
		players,
		gameweeks,
		fantasy.DefaultRules(),
		staticIDGenerator{id: "sel-mock"},
		logger,
	)

	team := fantasy.Team{ID: "ft-1", UserID: "user-1", Name: "Alpha", RemainingBudget: 200}

	teamRepo.
		On("GetByID", mock.Anything, "ft-1").
		Return(team, true, nil).
		Once()
	rosterRepo.
		On("GetRoster", mock.Anything, "ft-1", memory.GameweekIDTwo).
		Return([]fantasy.PickedPlayer{}, nil).
		Once()
	rosterRepo.
		On("CommitAddition", mock.Anything, mock.AnythingOfType("fantasy.CommitAdditionInput")).
		Return(fantasy.RosterSelection{}, fantasy.ErrRosterConflict).
		Once()

	_, err := service.AddPlayer(ctx, AddPlayerInput{
		FantasyTeamID: "ft-1",
		PlayerID:      "pl-ars-fwd-1",
		UserID:        "user-1",
	})
	if !errors.Is(err, fantasy.ErrRosterConflict) {
		t.Fatalf("expected ErrRosterConflict, got %v", err)
	}
}
