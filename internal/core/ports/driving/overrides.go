package driving

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// OverrideEditor authors the persistent override batch of a project.
// Edits that target an existing stair capture its identity anchor from the
// project's latest saved run.
type OverrideEditor interface {
	// Get returns the stored batch.
	Get(ctx context.Context, project string) (domain.OverrideBatch, error)

	// AddStair records a new stair at origin and returns its override ID.
	AddStair(ctx context.Context, project string, origin domain.Vector3) (string, error)

	// MoveStair records a new placement for a stair.
	MoveStair(ctx context.Context, project, stairID string, transform domain.Transform) (string, error)

	// EditStair records a rename and minimum tread width for a stair.
	EditStair(ctx context.Context, project, stairID, name string, minTreadWidth float64) (string, error)

	// RemoveStair records the deletion of a stair.
	RemoveStair(ctx context.Context, project, stairID string) (string, error)

	// SetOccupancy records an occupant load for a level.
	SetOccupancy(ctx context.Context, project, levelName string, occupants int) (string, error)

	// Clear drops every stored override.
	Clear(ctx context.Context, project string) error
}
