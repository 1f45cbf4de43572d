package route

import "errors"

var (
	ErrDuplicateName = errors.New("duplicate route name")
	ErrInvalidRoute  = errors.New("invalid route")
	ErrLoadPanic     = errors.New("view load panicked")
	ErrMissingParam  = errors.New("missing route param")
	ErrNoCatchAll    = errors.New("no catch-all route defined")
	ErrNoView        = errors.New("no view")
	ErrUnknownRoute  = errors.New("unknown route")
)
