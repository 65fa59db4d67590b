package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// Ensure RunHistoryService implements the interface.
var _ driving.RunHistory = (*RunHistoryService)(nil)

// RunHistoryService saves and reads back planning runs.
type RunHistoryService struct {
	store driven.RunStore
}

// NewRunHistoryService creates a run history service.
func NewRunHistoryService(store driven.RunStore) *RunHistoryService {
	return &RunHistoryService{store: store}
}

// Save stores a run. No-op runs are not worth keeping and are ignored.
func (s *RunHistoryService) Save(ctx context.Context, result *domain.RunResult, modelDigest string, levelCount int) error {
	if result == nil || result.ID == "" {
		return domain.ErrInvalidInput
	}
	if result.NoOp {
		return nil
	}

	run := domain.SavedRun{
		Summary: domain.RunSummary{
			ID:          result.ID,
			Project:     result.Project,
			CreatedAt:   result.CreatedAt,
			ModelDigest: modelDigest,
			LevelCount:  levelCount,
			StairCount:  len(result.Stairs),
		},
		Result: *result,
	}
	if err := s.store.Save(ctx, run); err != nil {
		return fmt.Errorf("saving run %s: %w", result.ID, err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *RunHistoryService) Get(ctx context.Context, id string) (*domain.SavedRun, error) {
	return s.store.Get(ctx, id)
}

// Latest returns the most recent run for a project.
func (s *RunHistoryService) Latest(ctx context.Context, project string) (*domain.SavedRun, error) {
	return s.store.Latest(ctx, project)
}

// List returns recent runs for a project.
func (s *RunHistoryService) List(ctx context.Context, project string, limit int) ([]domain.RunSummary, error) {
	return s.store.List(ctx, project, limit)
}
