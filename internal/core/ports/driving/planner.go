package driving

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// Planner runs the full egress pipeline: occupancy, sizing, reconciliation
// and layout.
type Planner interface {
	// Plan computes stairs for a building model. Overrides stored for the
	// project are applied after the model's own overrides.
	Plan(ctx context.Context, model domain.BuildingModel, opts domain.PlanOptions) (*domain.RunResult, error)
}

// Sizer exposes the stair sizing calculator on its own.
type Sizer interface {
	// Size computes a global config for the given occupant load and rise.
	Size(req SizeRequest) (domain.StairConfig, error)
}

// SizeRequest is the input to a standalone sizing calculation.
type SizeRequest struct {
	// Occupants is the largest level occupant load.
	Occupants int

	// Stairs is the number of stairs sharing the load.
	Stairs int

	// Rise is the floor-to-floor height to bridge, in meters.
	Rise float64

	Sprinklered bool

	// MinTreadWidth, when positive, replaces the accessible minimum.
	MinTreadWidth float64
}
