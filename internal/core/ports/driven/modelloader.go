package driven

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// ModelLoader reads planning input supplied by the hosting application.
type ModelLoader interface {
	// LoadModel reads and validates a building model.
	// Returns an error wrapping domain.ErrInvalidModel when validation fails.
	LoadModel(ctx context.Context, path string) (*domain.BuildingModel, error)

	// Parse decodes and validates a building model held in memory.
	Parse(data []byte) (*domain.BuildingModel, error)

	// LoadOverrides reads and validates a standalone override batch.
	LoadOverrides(ctx context.Context, path string) (*domain.OverrideBatch, error)

	// Digest returns a stable content hash of the file at path.
	Digest(path string) (string, error)
}
