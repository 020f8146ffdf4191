package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type playerRow struct {
	PublicID     string `db:"public_id"`
	TeamPublicID string `db:"team_public_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Position     string `db:"position"`
	Price        int64  `db:"price"`
	TotalPoints  int    `db:"total_points"`
}

const playerColumns = `public_id, team_public_id, first_name, last_name, position, price, total_points`

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY public_id`

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_public_id = $1 ORDER BY public_id`

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return playersToDomain(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE public_id = $1`

	var row playerRow
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	const query = `
INSERT INTO players (public_id, team_public_id, first_name, last_name, position, price, total_points)
VALUES (:public_id, :team_public_id, :first_name, :last_name, :position, :price, :total_points)`

	if _, err := r.db.NamedExecContext(ctx, query, playerToRow(p)); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	const query = `
UPDATE players
SET team_public_id = :team_public_id,
    first_name = :first_name,
    last_name = :last_name,
    position = :position,
    price = :price,
    total_points = :total_points,
    updated_at = NOW()
WHERE public_id = :public_id`

	if _, err := r.db.NamedExecContext(ctx, query, playerToRow(p)); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	const query = `DELETE FROM players WHERE public_id = $1`

	res, err := r.db.ExecContext(ctx, query, playerID)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) TopScorers(ctx context.Context, limit int) ([]player.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY total_points DESC, public_id LIMIT $1`

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}

	return playersToDomain(rows), nil
}

func playerToRow(p player.Player) playerRow {
	return playerRow{
		PublicID:     p.ID,
		TeamPublicID: p.TeamID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     string(p.Position),
		Price:        p.Price,
		TotalPoints:  p.TotalPoints,
	}
}

func (row playerRow) toDomain() player.Player {
	return player.Player{
		ID:          row.PublicID,
		TeamID:      row.TeamPublicID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Position:    player.Position(row.Position),
		Price:       row.Price,
		TotalPoints: row.TotalPoints,
	}
}

func playersToDomain(rows []playerRow) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out
}
