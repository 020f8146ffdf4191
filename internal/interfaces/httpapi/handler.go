package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/openfpl/fantasy-backend/internal/platform/logging"
	"github.com/openfpl/fantasy-backend/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	gameweekService    *usecase.GameweekService
	fantasyTeamService *usecase.FantasyTeamService
	rosterService      *usecase.RosterService
	scoreService       *usecase.ScoreService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	gameweekService *usecase.GameweekService,
	fantasyTeamService *usecase.FantasyTeamService,
	rosterService *usecase.RosterService,
	scoreService *usecase.ScoreService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		playerService:      playerService,
		matchService:       matchService,
		gameweekService:    gameweekService,
		fantasyTeamService: fantasyTeamService,
		rosterService:      rosterService,
		scoreService:       scoreService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
