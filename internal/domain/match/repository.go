package match

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByGameweek(ctx context.Context, gameweekID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
}
