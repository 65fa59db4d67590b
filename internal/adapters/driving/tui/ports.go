// Package tui provides an interactive terminal browser for saved egress runs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the browser.
type Ports struct {
	// History reads saved runs.
	History driving.RunHistory
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(history driving.RunHistory) *Ports {
	return &Ports{History: history}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.History == nil {
		return ErrMissingRunHistory
	}
	return nil
}
