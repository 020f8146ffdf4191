package fantasy

import (
	"context"
	"errors"
)

var (
	// ErrPlayerAlreadySelected rejects a second selection of the same player
	// for the same fantasy team and gameweek.
	ErrPlayerAlreadySelected = errors.New("player already selected for this gameweek")

	// ErrRosterConflict means a concurrent addition changed the team's budget
	// between the validation read and the commit; nothing was written.
	ErrRosterConflict = errors.New("roster changed concurrently")
)

// TeamRepository describes fantasy team persistence needs from use cases.
type TeamRepository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Team, error)
	ListAll(ctx context.Context) ([]Team, error)
	Create(ctx context.Context, t Team) error
	Rename(ctx context.Context, teamID, name string) error
	UpdatePoints(ctx context.Context, teamID string, totalPoints int) error
}

// CommitAdditionInput carries one accepted addition into the atomic write.
// ExpectedBudget is the budget validation ran against; the commit must fail
// with ErrRosterConflict if the stored budget no longer matches it.
type CommitAdditionInput struct {
	SelectionID    string
	FantasyTeamID  string
	GameweekID     string
	PlayerID       string
	IsCaptain      bool
	IsViceCaptain  bool
	IsOnBench      bool
	ExpectedBudget int64
	NewBudget      int64
}

// RosterRepository owns a fantasy team's selections for a gameweek.
// CommitAddition inserts the selection and debits the budget in one atomic
// unit: both apply or neither does.
type RosterRepository interface {
	GetRoster(ctx context.Context, teamID, gameweekID string) ([]PickedPlayer, error)
	CommitAddition(ctx context.Context, input CommitAdditionInput) (RosterSelection, error)
}
