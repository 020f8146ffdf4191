package gameweek

import (
	"fmt"
	"time"
)

// Gameweek is a bounded scheduling period during which one roster applies.
// Exactly one gameweek is flagged current at any time; this service reads
// the flag but never sets it.
type Gameweek struct {
	ID        string
	Number    int
	Deadline  time.Time
	IsCurrent bool
}

func (g Gameweek) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gameweek id is required")
	}
	if g.Number <= 0 {
		return fmt.Errorf("gameweek number must be greater than zero")
	}

	return nil
}
