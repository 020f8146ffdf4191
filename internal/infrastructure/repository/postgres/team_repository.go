package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type teamRow struct {
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
	Short    string `db:"short_name"`
	Crest    string `db:"crest_url"`
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	const query = `
SELECT public_id, name, short_name, crest_url
FROM teams
ORDER BY name`

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	const query = `
SELECT public_id, name, short_name, crest_url
FROM teams
WHERE public_id = $1`

	var row teamRow
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (row teamRow) toDomain() team.Team {
	return team.Team{
		ID:    row.PublicID,
		Name:  row.Name,
		Short: row.Short,
		Crest: row.Crest,
	}
}
