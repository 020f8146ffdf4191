package httpapi

import (
	"time"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/match"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
	"github.com/openfpl/fantasy-backend/internal/domain/team"
)

// Monetary fields go over the wire as decimal strings ("8.5"), matching how
// prices are shown to managers.

type teamDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Short    string `json:"short_name"`
	CrestURL string `json:"crest_url,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		Name:     t.Name,
		Short:    t.Short,
		CrestURL: t.Crest,
	}
}

type playerDTO struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	Price       string `json:"price"`
	TotalPoints int    `json:"total_points"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:          p.ID,
		TeamID:      p.TeamID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		Position:    string(p.Position),
		Price:       fantasy.FormatAmount(p.Price),
		TotalPoints: p.TotalPoints,
	}
}

type matchDTO struct {
	ID         string    `json:"id"`
	GameweekID string    `json:"gameweek_id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	KickoffAt  time.Time `json:"kickoff_at"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Status     string    `json:"status"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		GameweekID: m.GameweekID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		KickoffAt:  m.KickoffAt,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Status:     string(m.Status),
	}
}

type gameweekDTO struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Deadline  time.Time `json:"deadline"`
	IsCurrent bool      `json:"is_current"`
}

func gameweekToDTO(gw gameweek.Gameweek) gameweekDTO {
	return gameweekDTO{
		ID:        gw.ID,
		Number:    gw.Number,
		Deadline:  gw.Deadline,
		IsCurrent: gw.IsCurrent,
	}
}

type fantasyTeamDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	RemainingBudget string    `json:"remaining_budget"`
	TotalPoints     int       `json:"total_points"`
	CreatedAt       time.Time `json:"created_at"`
}

func fantasyTeamToDTO(t fantasy.Team) fantasyTeamDTO {
	return fantasyTeamDTO{
		ID:              t.ID,
		UserID:          t.UserID,
		Name:            t.Name,
		RemainingBudget: fantasy.FormatAmount(t.RemainingBudget),
		TotalPoints:     t.TotalPoints,
		CreatedAt:       t.CreatedAt,
	}
}

type rosterSelectionDTO struct {
	ID            string    `json:"id"`
	FantasyTeamID string    `json:"fantasy_team_id"`
	GameweekID    string    `json:"gameweek_id"`
	PlayerID      string    `json:"player_id"`
	IsCaptain     bool      `json:"is_captain"`
	IsViceCaptain bool      `json:"is_vice_captain"`
	IsOnBench     bool      `json:"is_on_bench"`
	CreatedAt     time.Time `json:"created_at"`
}

func rosterSelectionToDTO(s fantasy.RosterSelection) rosterSelectionDTO {
	return rosterSelectionDTO{
		ID:            s.ID,
		FantasyTeamID: s.FantasyTeamID,
		GameweekID:    s.GameweekID,
		PlayerID:      s.PlayerID,
		IsCaptain:     s.IsCaptain,
		IsViceCaptain: s.IsViceCaptain,
		IsOnBench:     s.IsOnBench,
		CreatedAt:     s.CreatedAt,
	}
}

type pickedPlayerDTO struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Position string `json:"position"`
}

type rosterDTO struct {
	Gameweek gameweekDTO       `json:"gameweek"`
	Players  []pickedPlayerDTO `json:"players"`
}

func rosterToDTO(gw gameweek.Gameweek, picked []fantasy.PickedPlayer) rosterDTO {
	players := make([]pickedPlayerDTO, 0, len(picked))
	for _, p := range picked {
		players = append(players, pickedPlayerDTO{
			PlayerID: p.PlayerID,
			TeamID:   p.TeamID,
			Position: string(p.Position),
		})
	}

	return rosterDTO{
		Gameweek: gameweekToDTO(gw),
		Players:  players,
	}
}

type createFantasyTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type renameFantasyTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type addPlayerRequest struct {
	PlayerID      string `json:"player_id" validate:"required"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
	IsOnBench     bool   `json:"is_on_bench"`
}

type upsertPlayerRequest struct {
	TeamID      string `json:"team_id" validate:"required"`
	FirstName   string `json:"first_name" validate:"omitempty,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Position    string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	Price       int64  `json:"price" validate:"gte=0"`
	TotalPoints int    `json:"total_points" validate:"gte=0"`
}
