package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNoCurrentGameweek = errors.New("no current gameweek")
	ErrStorageFailure    = errors.New("storage failure")
)
