package fantasy

import (
	"errors"
	"fmt"

	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

var (
	ErrInsufficientBudget   = errors.New("insufficient budget")
	ErrPositionLimitReached = errors.New("position limit reached")
	ErrTeamLimitReached     = errors.New("max players from same club reached")
	ErrSquadFull            = errors.New("squad is full")
	ErrUnknownPosition      = errors.New("unknown player position")
)

// Rules stores roster composition limits.
type Rules struct {
	StartingBudget    int64
	SquadSize         int
	MaxPlayersPerTeam int
	MaxByPosition     map[player.Position]int
}

func DefaultRules() Rules {
	return Rules{
		StartingBudget:    1000,
		SquadSize:         15,
		MaxPlayersPerTeam: 3,
		MaxByPosition: map[player.Position]int{
			player.PositionGoalkeeper: 2,
			player.PositionDefender:   5,
			player.PositionMidfielder: 5,
			player.PositionForward:    3,
		},
	}
}

// CheckAddition decides whether candidate may join the given roster and, on
// acceptance, returns the budget remaining after the purchase.
//
// The check order is part of the contract: budget first, then position cap
// (an unknown position is detected during the cap lookup), then per-club
// cap, then squad size. When several limits are violated at once the
// earliest check wins.
func CheckAddition(candidate Candidate, roster []PickedPlayer, budget int64, rules Rules) (int64, error) {
	if budget < candidate.Price {
		return 0, fmt.Errorf("%w: available=%s required=%s",
			ErrInsufficientBudget, FormatAmount(budget), FormatAmount(candidate.Price))
	}

	positionLimit, ok := rules.MaxByPosition[candidate.Position]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPosition, candidate.Position)
	}

	var samePosition, sameTeam int
	for _, picked := range roster {
		if picked.Position == candidate.Position {
			samePosition++
		}
		if picked.TeamID == candidate.TeamID {
			sameTeam++
		}
	}

	if samePosition >= positionLimit {
		return 0, fmt.Errorf("%w: position=%s max=%d", ErrPositionLimitReached, candidate.Position, positionLimit)
	}
	if sameTeam >= rules.MaxPlayersPerTeam {
		return 0, fmt.Errorf("%w: team=%s max=%d", ErrTeamLimitReached, candidate.TeamID, rules.MaxPlayersPerTeam)
	}
	if len(roster) >= rules.SquadSize {
		return 0, fmt.Errorf("%w: max=%d", ErrSquadFull, rules.SquadSize)
	}

	return budget - candidate.Price, nil
}
