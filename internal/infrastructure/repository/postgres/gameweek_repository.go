package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
)

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

type gameweekRow struct {
	PublicID  string    `db:"public_id"`
	Number    int       `db:"number"`
	Deadline  time.Time `db:"deadline"`
	IsCurrent bool      `db:"is_current"`
}

func (r *GameweekRepository) List(ctx context.Context) ([]gameweek.Gameweek, error) {
	const query = `
SELECT public_id, number, deadline, is_current
FROM gameweeks
ORDER BY number`

	var rows []gameweekRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list gameweeks: %w", err)
	}

	out := make([]gameweek.Gameweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameweekRepository) GetByID(ctx context.Context, gameweekID string) (gameweek.Gameweek, bool, error) {
	const query = `
SELECT public_id, number, deadline, is_current
FROM gameweeks
WHERE public_id = $1`

	var row gameweekRow
	if err := r.db.GetContext(ctx, &row, query, gameweekID); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get gameweek: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameweekRepository) GetCurrent(ctx context.Context) (gameweek.Gameweek, bool, error) {
	const query = `
SELECT public_id, number, deadline, is_current
FROM gameweeks
WHERE is_current
ORDER BY number
LIMIT 1`

	var row gameweekRow
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get current gameweek: %w", err)
	}

	return row.toDomain(), true, nil
}

func (row gameweekRow) toDomain() gameweek.Gameweek {
	return gameweek.Gameweek{
		ID:        row.PublicID,
		Number:    row.Number,
		Deadline:  row.Deadline,
		IsCurrent: row.IsCurrent,
	}
}
