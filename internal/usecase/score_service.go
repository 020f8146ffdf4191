package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
)

const defaultScoreWorkers = 8

// ScoreTaskResult reports the recalculation outcome for one fantasy team.
type ScoreTaskResult struct {
	FantasyTeamID string `json:"fantasy_team_id"`
	TotalPoints   int    `json:"total_points"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	DurationMs    int64  `json:"duration_ms"`
}

// ScoreResult summarizes one full recalculation run.
type ScoreResult struct {
	GameweekID   string            `json:"gameweek_id"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	Tasks        []ScoreTaskResult `json:"tasks"`
}

// ScoreService recomputes every fantasy team's cumulative score from its
// current-gameweek roster, fanning out across a bounded worker pool.
type ScoreService struct {
	teamRepo     fantasy.TeamRepository
	rosterRepo   fantasy.RosterRepository
	playerRepo   player.Repository
	gameweekRepo gameweek.Repository
	workerCount  int
	logger       *slog.Logger
}

func NewScoreService(
	teamRepo fantasy.TeamRepository,
	rosterRepo fantasy.RosterRepository,
	playerRepo player.Repository,
	gameweekRepo gameweek.Repository,
	workerCount int,
	logger *slog.Logger,
) *ScoreService {
	if workerCount < 1 {
		workerCount = defaultScoreWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ScoreService{
		teamRepo:     teamRepo,
		rosterRepo:   rosterRepo,
		playerRepo:   playerRepo,
		gameweekRepo: gameweekRepo,
		workerCount:  workerCount,
		logger:       logger,
	}
}

func (s *ScoreService) RecalculateAll(ctx context.Context) (ScoreResult, error) {
	current, exists, err := s.gameweekRepo.GetCurrent(ctx)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("%w: get current gameweek: %v", ErrStorageFailure, err)
	}
	if !exists {
		return ScoreResult{}, ErrNoCurrentGameweek
	}

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("%w: list fantasy teams: %v", ErrStorageFailure, err)
	}

	result := ScoreResult{GameweekID: current.ID}
	if len(teams) == 0 {
		return result, nil
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("%w: list players: %v", ErrStorageFailure, err)
	}
	pointsByPlayer := make(map[string]int, len(players))
	for _, p := range players {
		pointsByPlayer[p.ID] = p.TotalPoints
	}

	results := make(chan ScoreTaskResult, len(teams))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return ScoreResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, team := range teams {
		team := team
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ScoreTaskResult{FantasyTeamID: team.ID}

			total, err := s.recalculateTeam(ctx, team.ID, current.ID, pointsByPlayer)
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = "failed"
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = "success"
				row.TotalPoints = total
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return ScoreResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].FantasyTeamID < result.Tasks[j].FantasyTeamID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "score recalculation finished",
		"gameweek_id", current.ID,
		"teams", len(teams),
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

func (s *ScoreService) recalculateTeam(ctx context.Context, teamID, gameweekID string, pointsByPlayer map[string]int) (int, error) {
	roster, err := s.rosterRepo.GetRoster(ctx, teamID, gameweekID)
	if err != nil {
		return 0, fmt.Errorf("load roster: %w", err)
	}

	total := 0
	for _, picked := range roster {
		total += pointsByPlayer[picked.PlayerID]
	}

	if err := s.teamRepo.UpdatePoints(ctx, teamID, total); err != nil {
		return 0, fmt.Errorf("update points: %w", err)
	}

	return total, nil
}
