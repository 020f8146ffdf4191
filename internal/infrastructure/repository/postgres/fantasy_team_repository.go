package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
)

type FantasyTeamRepository struct {
	db *sqlx.DB
}

func NewFantasyTeamRepository(db *sqlx.DB) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

type fantasyTeamRow struct {
	PublicID        string    `db:"public_id"`
	UserID          string    `db:"user_id"`
	Name            string    `db:"name"`
	RemainingBudget int64     `db:"remaining_budget"`
	TotalPoints     int       `db:"total_points"`
	CreatedAt       time.Time `db:"created_at"`
}

const fantasyTeamColumns = `public_id, user_id, name, remaining_budget, total_points, created_at`

func (r *FantasyTeamRepository) GetByID(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	query := `SELECT ` + fantasyTeamColumns + ` FROM fantasy_teams WHERE public_id = $1`

	var row fantasyTeamRow
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, fmt.Errorf("get fantasy team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *FantasyTeamRepository) ListByUser(ctx context.Context, userID string) ([]fantasy.Team, error) {
	query := `SELECT ` + fantasyTeamColumns + ` FROM fantasy_teams WHERE user_id = $1 ORDER BY created_at, public_id`

	var rows []fantasyTeamRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list fantasy teams by user: %w", err)
	}

	return fantasyTeamsToDomain(rows), nil
}

func (r *FantasyTeamRepository) ListAll(ctx context.Context) ([]fantasy.Team, error) {
	query := `SELECT ` + fantasyTeamColumns + ` FROM fantasy_teams ORDER BY created_at, public_id`

	var rows []fantasyTeamRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	return fantasyTeamsToDomain(rows), nil
}

func (r *FantasyTeamRepository) Create(ctx context.Context, t fantasy.Team) error {
	const query = `
INSERT INTO fantasy_teams (public_id, user_id, name, remaining_budget, total_points, created_at)
VALUES (:public_id, :user_id, :name, :remaining_budget, :total_points, :created_at)`

	row := fantasyTeamRow{
		PublicID:        t.ID,
		UserID:          t.UserID,
		Name:            t.Name,
		RemainingBudget: t.RemainingBudget,
		TotalPoints:     t.TotalPoints,
		CreatedAt:       t.CreatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert fantasy team: %w", err)
	}

	return nil
}

func (r *FantasyTeamRepository) Rename(ctx context.Context, teamID, name string) error {
	const query = `UPDATE fantasy_teams SET name = $1, updated_at = NOW() WHERE public_id = $2`

	if _, err := r.db.ExecContext(ctx, query, name, teamID); err != nil {
		return fmt.Errorf("rename fantasy team: %w", err)
	}

	return nil
}

func (r *FantasyTeamRepository) UpdatePoints(ctx context.Context, teamID string, totalPoints int) error {
	const query = `UPDATE fantasy_teams SET total_points = $1, updated_at = NOW() WHERE public_id = $2`

	if _, err := r.db.ExecContext(ctx, query, totalPoints, teamID); err != nil {
		return fmt.Errorf("update fantasy team points: %w", err)
	}

	return nil
}

func (row fantasyTeamRow) toDomain() fantasy.Team {
	return fantasy.Team{
		ID:              row.PublicID,
		UserID:          row.UserID,
		Name:            row.Name,
		RemainingBudget: row.RemainingBudget,
		TotalPoints:     row.TotalPoints,
		CreatedAt:       row.CreatedAt,
	}
}

func fantasyTeamsToDomain(rows []fantasyTeamRow) []fantasy.Team {
	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out
}
