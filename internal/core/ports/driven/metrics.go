package driven

import "github.com/custodia-labs/egress-cli/internal/core/domain"

// MetricsRecorder observes planning runs.
type MetricsRecorder interface {
	// ObserveRun records the outcome of one planning pass.
	ObserveRun(result *domain.RunResult)
}
