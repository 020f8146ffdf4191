package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/openfpl/fantasy-backend/internal/domain/fantasy"
	"github.com/openfpl/fantasy-backend/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-backend"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

// writeJSON encodes into a pooled buffer first so an encoding failure never
// leaks a half-written body to the client.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	message := err.Error()
	if mapped.HTTPStatus == http.StatusInternalServerError {
		// Storage details stay in the logs.
		message = "internal server error"
	}
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: message,
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

// mapError translates service and roster-rule errors into the wire envelope.
// Reasons are stable API contract strings; clients branch on them.
func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{
			HTTPStatus: http.StatusForbidden,
			Reason:     "forbidden",
			Status:     "PERMISSION_DENIED",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrNoCurrentGameweek):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "noCurrentGameweek",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrInsufficientBudget):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "insufficientBudget",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrPositionLimitReached):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "positionLimitReached",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrTeamLimitReached):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "clubLimitReached",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrSquadFull):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "squadFull",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrUnknownPosition):
		return mappedError{
			HTTPStatus: http.StatusUnprocessableEntity,
			Reason:     "unknownPosition",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, fantasy.ErrPlayerAlreadySelected):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "playerAlreadySelected",
			Status:     "ALREADY_EXISTS",
		}
	case errors.Is(err, fantasy.ErrRosterConflict):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "rosterConflict",
			Status:     "ABORTED",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
