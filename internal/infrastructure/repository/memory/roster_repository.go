package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

type rosterEntry struct {
	selection fantasy.RosterSelection
	teamID    string
	position  player.Position
}

// RosterRepository mirrors the postgres commit semantics: the selection
// insert and the guarded budget debit apply together or not at all, and the
// (team, gameweek, player) key is unique.
type RosterRepository struct {
	mu         sync.Mutex
	entries    map[string]rosterEntry
	teams      *FantasyTeamRepository
	playerRepo *PlayerRepository
	now        func() time.Time
}

func NewRosterRepository(teams *FantasyTeamRepository, players *PlayerRepository) *RosterRepository {
	return &RosterRepository{
		entries:    make(map[string]rosterEntry),
		teams:      teams,
		playerRepo: players,
		now:        time.Now,
	}
}

func (r *RosterRepository) GetRoster(_ context.Context, teamID, gameweekID string) ([]fantasy.PickedPlayer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]fantasy.PickedPlayer, 0)
	for _, e := range r.entries {
		if e.selection.FantasyTeamID != teamID || e.selection.GameweekID != gameweekID {
			continue
		}
		out = append(out, fantasy.PickedPlayer{
			PlayerID: e.selection.PlayerID,
			TeamID:   e.teamID,
			Position: e.position,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *RosterRepository) CommitAddition(ctx context.Context, input fantasy.CommitAdditionInput) (fantasy.RosterSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := selectionKey(input.FantasyTeamID, input.GameweekID, input.PlayerID)
	if _, exists := r.entries[key]; exists {
		return fantasy.RosterSelection{}, fantasy.ErrPlayerAlreadySelected
	}

	if err := r.teams.debitBudget(input.FantasyTeamID, input.ExpectedBudget, input.NewBudget); err != nil {
		return fantasy.RosterSelection{}, err
	}

	p, ok, err := r.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil || !ok {
		// Keep the unit atomic: undo the debit before reporting failure.
		r.teams.restoreBudget(input.FantasyTeamID, input.ExpectedBudget)
		return fantasy.RosterSelection{}, fantasy.ErrRosterConflict
	}

	selection := fantasy.RosterSelection{
		ID:            input.SelectionID,
		FantasyTeamID: input.FantasyTeamID,
		GameweekID:    input.GameweekID,
		PlayerID:      input.PlayerID,
		IsCaptain:     input.IsCaptain,
		IsViceCaptain: input.IsViceCaptain,
		IsOnBench:     input.IsOnBench,
		CreatedAt:     r.now().UTC(),
	}
	r.entries[key] = rosterEntry{
		selection: selection,
		teamID:    p.TeamID,
		position:  p.Position,
	}

	return selection, nil
}

func selectionKey(teamID, gameweekID, playerID string) string {
	return teamID + "::" + gameweekID + "::" + playerID
}
