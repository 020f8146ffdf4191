package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/openfpl/fantasy-backend/internal/config"
	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/domain/gameweek"
	"github.com/openfpl/fantasy-backend/internal/domain/match"
	"github.com/openfpl/fantasy-backend/internal/domain/player"
	"github.com/openfpl/fantasy-backend/internal/domain/team"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/account/passport"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/repository/memory"
	"github.com/openfpl/fantasy-backend/internal/infrastructure/repository/postgres"
	"github.com/openfpl/fantasy-backend/internal/interfaces/httpapi"
	idgen "github.com/openfpl/fantasy-backend/internal/platform/id"
	"github.com/openfpl/fantasy-backend/internal/platform/logging"
	"github.com/openfpl/fantasy-backend/internal/platform/resilience"
	"github.com/openfpl/fantasy-backend/internal/usecase"
)

type repositories struct {
	teams        team.Repository
	players      player.Repository
	gameweeks    gameweek.Repository
	matches      match.Repository
	fantasyTeams fantasy.TeamRepository
	rosters      fantasy.RosterRepository
}

// NewHTTPServer wires storage, services and the HTTP surface. The returned
// cleanup closes the database pool and is safe to call when memory mode is on.
func NewHTTPServer(cfg config.Config, logger *slog.Logger, accessLogger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if accessLogger == nil {
		accessLogger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rules := buildRules(cfg)
	generator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.teams)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, generator, logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.gameweeks)
	gameweekSvc := usecase.NewGameweekService(repos.gameweeks)
	fantasyTeamSvc := usecase.NewFantasyTeamService(repos.fantasyTeams, rules, generator, logger)
	rosterSvc := usecase.NewRosterService(repos.fantasyTeams, repos.rosters, repos.players, repos.gameweeks, rules, generator, logger)
	scoreSvc := usecase.NewScoreService(repos.fantasyTeams, repos.rosters, repos.players, repos.gameweeks, cfg.ScoreWorkers, logger)

	verifier := buildVerifier(cfg, accessLogger)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, gameweekSvc, fantasyTeamSvc, rosterSvc, scoreSvc, accessLogger)
	router := httpapi.NewRouter(handler, verifier, accessLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup() //nolint:errcheck
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, func() error, error) {
	if cfg.MemoryMode {
		logger.Info("storage mode", "driver", "memory")

		fantasyTeams := memory.NewFantasyTeamRepository()
		players := memory.NewPlayerRepository(memory.SeedPlayers())

		return repositories{
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			players:      players,
			gameweeks:    memory.NewGameweekRepository(memory.SeedGameweeks()),
			matches:      memory.NewMatchRepository(memory.SeedMatches()),
			fantasyTeams: fantasyTeams,
			rosters:      memory.NewRosterRepository(fantasyTeams, players),
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("storage mode", "driver", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		teams:        postgres.NewTeamRepository(db),
		players:      postgres.NewPlayerRepository(db),
		gameweeks:    postgres.NewGameweekRepository(db),
		matches:      postgres.NewMatchRepository(db),
		fantasyTeams: postgres.NewFantasyTeamRepository(db),
		rosters:      postgres.NewRosterRepository(db),
	}, db.Close, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

func buildRules(cfg config.Config) fantasy.Rules {
	rules := fantasy.DefaultRules()
	if cfg.RulesStartingBudget > 0 {
		rules.StartingBudget = cfg.RulesStartingBudget
	}
	if cfg.RulesSquadSize > 0 {
		rules.SquadSize = cfg.RulesSquadSize
	}
	if cfg.RulesMaxPerClub > 0 {
		rules.MaxPlayersPerTeam = cfg.RulesMaxPerClub
	}

	return rules
}

func buildVerifier(cfg config.Config, accessLogger *logging.Logger) httpapi.TokenVerifier {
	client := passport.NewClient(passport.ClientConfig{
		BaseURL:        cfg.PassportBaseURL,
		IntrospectPath: cfg.PassportIntrospectPath,
		Timeout:        cfg.PassportTimeout,
		Logger:         accessLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenReq,
		},
	})
	if !cfg.CacheEnabled || cfg.PassportCacheTTL <= 0 {
		return client
	}

	return passport.NewCachedVerifier(client, cfg.PassportCacheTTL)
}
