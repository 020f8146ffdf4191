package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
)

// Match is one real-world fixture between two clubs within a gameweek.
type Match struct {
	ID         string
	GameweekID string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	HomeScore  int
	AwayScore  int
	Status     Status
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.GameweekID == "" {
		return fmt.Errorf("match gameweek id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match cannot pair a team against itself")
	}

	return nil
}
