package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

type matchRow struct {
	PublicID         string    `db:"public_id"`
	GameweekPublicID string    `db:"gameweek_public_id"`
	HomeTeamPublicID string    `db:"home_team_public_id"`
	AwayTeamPublicID string    `db:"away_team_public_id"`
	KickoffAt        time.Time `db:"kickoff_at"`
	HomeScore        int       `db:"home_score"`
	AwayScore        int       `db:"away_score"`
	Status           string    `db:"status"`
}

const matchColumns = `public_id, gameweek_public_id, home_team_public_id, away_team_public_id, kickoff_at, home_score, away_score, status`

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY kickoff_at, public_id`

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matchesToDomain(rows), nil
}

func (r *MatchRepository) ListByGameweek(ctx context.Context, gameweekID string) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE gameweek_public_id = $1 ORDER BY kickoff_at, public_id`

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, gameweekID); err != nil {
		return nil, fmt.Errorf("list matches by gameweek: %w", err)
	}

	return matchesToDomain(rows), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE public_id = $1`

	var row matchRow
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return row.toDomain(), true, nil
}

func (row matchRow) toDomain() match.Match {
	return match.Match{
		ID:         row.PublicID,
		GameweekID: row.GameweekPublicID,
		HomeTeamID: row.HomeTeamPublicID,
		AwayTeamID: row.AwayTeamPublicID,
		KickoffAt:  row.KickoffAt,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		Status:     match.Status(row.Status),
	}
}

func matchesToDomain(rows []matchRow) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out
}
