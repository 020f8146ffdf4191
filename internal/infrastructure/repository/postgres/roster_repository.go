package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

type pickedPlayerRow struct {
	PlayerPublicID string `db:"player_public_id"`
	TeamPublicID   string `db:"team_public_id"`
	Position       string `db:"position"`
}

func (r *RosterRepository) GetRoster(ctx context.Context, teamID, gameweekID string) ([]fantasy.PickedPlayer, error) {
	const query = `
SELECT rs.player_public_id, p.team_public_id, p.position
FROM roster_selections rs
JOIN players p ON p.public_id = rs.player_public_id
WHERE rs.fantasy_team_public_id = $1
  AND rs.gameweek_public_id = $2
ORDER BY rs.player_public_id`

	var rows []pickedPlayerRow
	if err := r.db.SelectContext(ctx, &rows, query, teamID, gameweekID); err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}

	out := make([]fantasy.PickedPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasy.PickedPlayer{
			PlayerID: row.PlayerPublicID,
			TeamID:   row.TeamPublicID,
			Position: player.Position(row.Position),
		})
	}

	return out, nil
}

// CommitAddition debits the team budget and inserts the selection in one
// transaction. The debit is guarded on the budget the caller validated
// against, so a racing addition that already moved the budget makes this
// commit fail with ErrRosterConflict instead of overspending.
func (r *RosterRepository) CommitAddition(ctx context.Context, input fantasy.CommitAdditionInput) (fantasy.RosterSelection, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("begin commit addition: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const debitQuery = `
UPDATE fantasy_teams
SET remaining_budget = $1, updated_at = NOW()
WHERE public_id = $2
  AND remaining_budget = $3`

	res, err := tx.ExecContext(ctx, debitQuery, input.NewBudget, input.FantasyTeamID, input.ExpectedBudget)
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("debit budget: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("debit budget rows affected: %w", err)
	}
	if affected == 0 {
		return fantasy.RosterSelection{}, fantasy.ErrRosterConflict
	}

	const insertQuery = `
INSERT INTO roster_selections (public_id, fantasy_team_public_id, gameweek_public_id, player_public_id, is_captain, is_vice_captain, is_on_bench)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

	var createdAt time.Time
	err = tx.GetContext(ctx, &createdAt, insertQuery,
		input.SelectionID,
		input.FantasyTeamID,
		input.GameweekID,
		input.PlayerID,
		input.IsCaptain,
		input.IsViceCaptain,
		input.IsOnBench,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fantasy.RosterSelection{}, fantasy.ErrPlayerAlreadySelected
		}
		return fantasy.RosterSelection{}, fmt.Errorf("insert roster selection: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fantasy.RosterSelection{}, fmt.Errorf("commit addition: %w", err)
	}

	return fantasy.RosterSelection{
		ID:            input.SelectionID,
		FantasyTeamID: input.FantasyTeamID,
		GameweekID:    input.GameweekID,
		PlayerID:      input.PlayerID,
		IsCaptain:     input.IsCaptain,
		IsViceCaptain: input.IsViceCaptain,
		IsOnBench:     input.IsOnBench,
		CreatedAt:     createdAt,
	}, nil
}
