package mcp

import (
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
type Ports struct {
	// Planner runs the egress pipeline.
	Planner driving.Planner

	// Sizer runs the calculator on its own.
	Sizer driving.Sizer

	// Loader reads models from disk or from tool input.
	Loader driven.ModelLoader

	// History serves saved runs as resources. Optional.
	History driving.RunHistory
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Planner == nil {
		return ErrMissingPlanner
	}
	if p.Sizer == nil {
		return ErrMissingSizer
	}
	if p.Loader == nil {
		return ErrMissingLoader
	}
	return nil
}
