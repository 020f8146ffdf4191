package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
)

type FantasyTeamRepository struct {
	mu    sync.RWMutex
	items map[string]fantasy.Team
}

func NewFantasyTeamRepository() *FantasyTeamRepository {
	return &FantasyTeamRepository{items: make(map[string]fantasy.Team)}
}

func (r *FantasyTeamRepository) GetByID(_ context.Context, teamID string) (fantasy.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	return t, ok, nil
}

func (r *FantasyTeamRepository) ListByUser(_ context.Context, userID string) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0)
	for _, t := range r.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r *FantasyTeamRepository) ListAll(_ context.Context) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FantasyTeamRepository) Create(_ context.Context, t fantasy.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[t.ID]; exists {
		return fmt.Errorf("fantasy team %s already exists", t.ID)
	}
	r.items[t.ID] = t

	return nil
}

func (r *FantasyTeamRepository) Rename(_ context.Context, teamID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return fmt.Errorf("fantasy team %s not found", teamID)
	}
	t.Name = name
	r.items[teamID] = t

	return nil
}

func (r *FantasyTeamRepository) UpdatePoints(_ context.Context, teamID string, totalPoints int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return fmt.Errorf("fantasy team %s not found", teamID)
	}
	t.TotalPoints = totalPoints
	r.items[teamID] = t

	return nil
}

// debitBudget applies the guarded budget write for RosterRepository: it
// fails when the stored budget no longer matches what validation read.
func (r *FantasyTeamRepository) debitBudget(teamID string, expected, newBudget int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return fmt.Errorf("fantasy team %s not found", teamID)
	}
	if t.RemainingBudget != expected {
		return fantasy.ErrRosterConflict
	}
	t.RemainingBudget = newBudget
	r.items[teamID] = t

	return nil
}

func (r *FantasyTeamRepository) restoreBudget(teamID string, budget int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return
	}
	t.RemainingBudget = budget
	r.items[teamID] = t
}
