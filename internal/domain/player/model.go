package player

import "fmt"

// Position represents football position categories used in roster rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a selectable athlete from the real-world player pool.
// Price is stored in tenths of a unit so budget arithmetic stays integral.
type Player struct {
	ID          string
	TeamID      string
	FirstName   string
	LastName    string
	Position    Position
	Price       int64
	TotalPoints int
}

func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Price < 0 {
		return fmt.Errorf("player price cannot be negative")
	}
	if p.TotalPoints < 0 {
		return fmt.Errorf("player total points cannot be negative")
	}

	return nil
}
