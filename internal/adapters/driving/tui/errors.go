package tui

import "errors"

// ErrMissingRunHistory is returned when the run history service is not provided.
var ErrMissingRunHistory = errors.New("tui: run history service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
