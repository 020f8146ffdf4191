package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, p := range players {
		items[p.ID] = p
	}

	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(p player.Player) bool { return p.TeamID == teamID }), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[playerID]; !ok {
		return false, nil
	}
	delete(r.items, playerID)

	return true, nil
}

func (r *PlayerRepository) TopScorers(_ context.Context, limit int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.sortedLocked(func(player.Player) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPoints > out[j].TotalPoints })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *PlayerRepository) sortedLocked(keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
