package driven

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// RunStore persists planning runs so later edits can capture stair
// identities from them.
type RunStore interface {
	// Save stores a run and the digest of the model it was computed from.
	Save(ctx context.Context, run domain.SavedRun) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.SavedRun, error)

	// Latest returns the most recent run for a project.
	// Returns domain.ErrNoRuns if the project has none.
	Latest(ctx context.Context, project string) (*domain.SavedRun, error)

	// List returns run summaries for a project, most recent first.
	// A limit of zero or less returns every run.
	List(ctx context.Context, project string, limit int) ([]domain.RunSummary, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error
}
