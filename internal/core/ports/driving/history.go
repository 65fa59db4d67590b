package driving

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// RunHistory saves and reads back planning runs.
type RunHistory interface {
	// Save stores a run computed from the model with the given digest.
	Save(ctx context.Context, result *domain.RunResult, modelDigest string, levelCount int) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.SavedRun, error)

	// Latest returns the most recent run for a project.
	Latest(ctx context.Context, project string) (*domain.SavedRun, error)

	// List returns recent runs for a project.
	List(ctx context.Context, project string, limit int) ([]domain.RunSummary, error)
}
