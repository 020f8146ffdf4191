package gameweek

import "context"

// Repository describes gameweek persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Gameweek, error)
	GetByID(ctx context.Context, gameweekID string) (Gameweek, bool, error)
	GetCurrent(ctx context.Context) (Gameweek, bool, error)
}
