package httpapi

import (
	"net/http"
)

func (h *Handler) RunRecalculateScoresJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateScoresJob")
	defer span.End()

	result, err := h.scoreService.RecalculateAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "recalculate scores job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "recalculate scores job finished",
		"gameweek_id", result.GameweekID,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
