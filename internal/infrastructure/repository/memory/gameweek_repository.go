package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu    sync.RWMutex
	items map[string]gameweek.Gameweek
}

func NewGameweekRepository(gameweeks []gameweek.Gameweek) *GameweekRepository {
	items := make(map[string]gameweek.Gameweek, len(gameweeks))
	for _, g := range gameweeks {
		items[g.ID] = g
	}

	return &GameweekRepository{items: items}
}

func (r *GameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameweek.Gameweek, 0, len(r.items))
	for _, g := range r.items {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out, nil
}

func (r *GameweekRepository) GetByID(_ context.Context, gameweekID string) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gameweekID]
	return g, ok, nil
}

func (r *GameweekRepository) GetCurrent(_ context.Context) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.items {
		if g.IsCurrent {
			return g, true, nil
		}
	}

	return gameweek.Gameweek{}, false, nil
}

// SetCurrent moves the current flag to the given gameweek. Test helper;
// the service itself never flips the flag.
func (r *GameweekRepository) SetCurrent(gameweekID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, g := range r.items {
		g.IsCurrent = id == gameweekID
		r.items[id] = g
	}
}
