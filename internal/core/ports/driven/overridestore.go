package driven

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// OverrideStore persists the override batch authored for each project.
type OverrideStore interface {
	// Load returns the stored batch for a project.
	// Returns an empty batch and no error if nothing is stored.
	Load(ctx context.Context, project string) (domain.OverrideBatch, error)

	// Save replaces the stored batch for a project.
	Save(ctx context.Context, project string, batch domain.OverrideBatch) error

	// Clear removes the stored batch for a project.
	Clear(ctx context.Context, project string) error
}
