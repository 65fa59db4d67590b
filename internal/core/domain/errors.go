package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidModel indicates a building model failed validation.
	ErrInvalidModel = errors.New("invalid building model")

	// ErrNoRuns indicates no saved run exists to capture identities from.
	ErrNoRuns = errors.New("no saved runs")

	// ErrAmbiguousMatch indicates more than one stair lies within the match
	// tolerance of an override identity.
	ErrAmbiguousMatch = errors.New("ambiguous identity match")

	// ErrUnknownSetting indicates a settings key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
