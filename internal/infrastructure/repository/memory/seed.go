package memory

import (
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/match"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
	"github.com/openfpl/fantasy-backend/internal/domain/team"
)

// Seed data for dev mode and service tests. Prices are tenths of a unit.

const (
	TeamIDArsenal   = "team-arsenal"
	TeamIDChelsea   = "team-chelsea"
	TeamIDLiverpool = "team-liverpool"
	TeamIDCity      = "team-man-city"
	TeamIDSpurs     = "team-spurs"

	GameweekIDOne   = "gw-01"
	GameweekIDTwo   = "gw-02"
	GameweekIDThree = "gw-03"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDArsenal, Name: "Arsenal", Short: "ARS"},
		{ID: TeamIDChelsea, Name: "Chelsea", Short: "CHE"},
		{ID: TeamIDLiverpool, Name: "Liverpool", Short: "LIV"},
		{ID: TeamIDCity, Name: "Manchester City", Short: "MCI"},
		{ID: TeamIDSpurs, Name: "Tottenham Hotspur", Short: "TOT"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-ars-gk-1", TeamID: TeamIDArsenal, FirstName: "David", LastName: "Raya", Position: player.PositionGoalkeeper, Price: 55, TotalPoints: 98},
		{ID: "pl-ars-def-1", TeamID: TeamIDArsenal, FirstName: "William", LastName: "Saliba", Position: player.PositionDefender, Price: 60, TotalPoints: 110},
		{ID: "pl-ars-def-2", TeamID: TeamIDArsenal, FirstName: "Gabriel", LastName: "Magalhaes", Position: player.PositionDefender, Price: 60, TotalPoints: 120},
		{ID: "pl-ars-mid-1", TeamID: TeamIDArsenal, FirstName: "Declan", LastName: "Rice", Position: player.PositionMidfielder, Price: 65, TotalPoints: 115},
		{ID: "pl-ars-fwd-1", TeamID: TeamIDArsenal, FirstName: "Bukayo", LastName: "Saka", Position: player.PositionForward, Price: 100, TotalPoints: 160},
		{ID: "pl-che-gk-1", TeamID: TeamIDChelsea, FirstName: "Robert", LastName: "Sanchez", Position: player.PositionGoalkeeper, Price: 45, TotalPoints: 76},
		{ID: "pl-che-def-1", TeamID: TeamIDChelsea, FirstName: "Reece", LastName: "James", Position: player.PositionDefender, Price: 55, TotalPoints: 64},
		{ID: "pl-che-mid-1", TeamID: TeamIDChelsea, FirstName: "Cole", LastName: "Palmer", Position: player.PositionMidfielder, Price: 105, TotalPoints: 178},
		{ID: "pl-che-fwd-1", TeamID: TeamIDChelsea, FirstName: "Nicolas", LastName: "Jackson", Position: player.PositionForward, Price: 75, TotalPoints: 102},
		{ID: "pl-liv-gk-1", TeamID: TeamIDLiverpool, FirstName: "Alisson", LastName: "Becker", Position: player.PositionGoalkeeper, Price: 55, TotalPoints: 88},
		{ID: "pl-liv-def-1", TeamID: TeamIDLiverpool, FirstName: "Virgil", LastName: "van Dijk", Position: player.PositionDefender, Price: 65, TotalPoints: 125},
		{ID: "pl-liv-mid-1", TeamID: TeamIDLiverpool, FirstName: "Dominik", LastName: "Szoboszlai", Position: player.PositionMidfielder, Price: 70, TotalPoints: 96},
		{ID: "pl-liv-fwd-1", TeamID: TeamIDLiverpool, FirstName: "Mohamed", LastName: "Salah", Position: player.PositionForward, Price: 130, TotalPoints: 211},
		{ID: "pl-mci-def-1", TeamID: TeamIDCity, FirstName: "Ruben", LastName: "Dias", Position: player.PositionDefender, Price: 60, TotalPoints: 90},
		{ID: "pl-mci-mid-1", TeamID: TeamIDCity, FirstName: "Phil", LastName: "Foden", Position: player.PositionMidfielder, Price: 95, TotalPoints: 150},
		{ID: "pl-mci-fwd-1", TeamID: TeamIDCity, FirstName: "Erling", LastName: "Haaland", Position: player.PositionForward, Price: 140, TotalPoints: 224},
		{ID: "pl-tot-def-1", TeamID: TeamIDSpurs, FirstName: "Cristian", LastName: "Romero", Position: player.PositionDefender, Price: 50, TotalPoints: 82},
		{ID: "pl-tot-mid-1", TeamID: TeamIDSpurs, FirstName: "James", LastName: "Maddison", Position: player.PositionMidfielder, Price: 75, TotalPoints: 104},
		{ID: "pl-tot-fwd-1", TeamID: TeamIDSpurs, FirstName: "Dominic", LastName: "Solanke", Position: player.PositionForward, Price: 75, TotalPoints: 98},
	}
}

func SeedGameweeks() []gameweek.Gameweek {
	return []gameweek.Gameweek{
		{ID: GameweekIDOne, Number: 1, Deadline: time.Date(2026, 8, 14, 17, 30, 0, 0, time.UTC)},
		{ID: GameweekIDTwo, Number: 2, Deadline: time.Date(2026, 8, 21, 17, 30, 0, 0, time.UTC), IsCurrent: true},
		{ID: GameweekIDThree, Number: 3, Deadline: time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC)},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: "match-001", GameweekID: GameweekIDOne, HomeTeamID: TeamIDArsenal, AwayTeamID: TeamIDChelsea, KickoffAt: time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC), HomeScore: 2, AwayScore: 1, Status: match.StatusFinished},
		{ID: "match-002", GameweekID: GameweekIDOne, HomeTeamID: TeamIDLiverpool, AwayTeamID: TeamIDSpurs, KickoffAt: time.Date(2026, 8, 15, 16, 30, 0, 0, time.UTC), HomeScore: 3, AwayScore: 1, Status: match.StatusFinished},
		{ID: "match-003", GameweekID: GameweekIDTwo, HomeTeamID: TeamIDCity, AwayTeamID: TeamIDArsenal, KickoffAt: time.Date(2026, 8, 22, 14, 0, 0, 0, time.UTC), Status: match.StatusScheduled},
		{ID: "match-004", GameweekID: GameweekIDTwo, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDLiverpool, KickoffAt: time.Date(2026, 8, 22, 16, 30, 0, 0, time.UTC), Status: match.StatusScheduled},
	}
}
