package fantasy

import (
	"fmt"
	"strconv"
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

// Team is a user's fantasy team. RemainingBudget is in tenths of a unit and
// is mutated only through RosterRepository.CommitAddition.
type Team struct {
	ID              string
	UserID          string
	Name            string
	RemainingBudget int64
	TotalPoints     int
	CreatedAt       time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("fantasy team id is required")
	}
	if t.UserID == "" {
		return fmt.Errorf("fantasy team user id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("fantasy team name is required")
	}
	if t.RemainingBudget < 0 {
		return fmt.Errorf("fantasy team budget cannot be negative")
	}
	if t.TotalPoints < 0 {
		return fmt.Errorf("fantasy team total points cannot be negative")
	}

	return nil
}

// RosterSelection is one player held by a fantasy team for a gameweek.
// At most one row exists per (fantasy team, gameweek, player).
type RosterSelection struct {
	ID            string
	FantasyTeamID string
	GameweekID    string
	PlayerID      string
	IsCaptain     bool
	IsViceCaptain bool
	IsOnBench     bool
	CreatedAt     time.Time
}

// PickedPlayer is the roster-snapshot view the validator works against.
type PickedPlayer struct {
	PlayerID string
	TeamID   string
	Position player.Position
}

// Candidate is the player being added, reduced to what validation needs.
type Candidate struct {
	PlayerID string
	TeamID   string
	Position player.Position
	Price    int64
}

// FormatAmount renders a tenths-of-a-unit amount as its decimal form,
// e.g. 115 -> "11.5".
func FormatAmount(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + strconv.FormatInt(v/10, 10) + "." + strconv.FormatInt(v%10, 10)
}
