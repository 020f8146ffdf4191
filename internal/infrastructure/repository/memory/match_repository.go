package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/openfpl/fantasy-backend/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		items[m.ID] = m
	}

	return &MatchRepository{items: items}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListByGameweek(_ context.Context, gameweekID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(m match.Match) bool { return m.GameweekID == gameweekID }), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	return m, ok, nil
}

func (r *MatchRepository) sortedLocked(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KickoffAt.Before(out[j].KickoffAt) })

	return out
}
