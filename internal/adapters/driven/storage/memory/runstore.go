package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.SavedRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.SavedRun),
	}
}

// Save stores or replaces a run.
func (s *RunStore) Save(_ context.Context, run domain.SavedRun) error {
	if run.Summary.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.Summary.ID] = run
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.SavedRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// Latest returns the most recent run for a project.
func (s *RunStore) Latest(_ context.Context, project string) (*domain.SavedRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := s.sorted(project)
	if len(runs) == 0 {
		return nil, domain.ErrNoRuns
	}
	return &runs[0], nil
}

// List returns run summaries for a project, most recent first.
func (s *RunStore) List(_ context.Context, project string, limit int) ([]domain.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := s.sorted(project)
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	summaries := make([]domain.RunSummary, len(runs))
	for i, run := range runs {
		summaries[i] = run.Summary
	}
	return summaries, nil
}

// Delete removes a run.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}

// sorted returns the project's runs newest first (caller must hold lock).
func (s *RunStore) sorted(project string) []domain.SavedRun {
	var runs []domain.SavedRun
	for _, run := range s.runs {
		if run.Summary.Project == project {
			runs = append(runs, run)
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Summary.CreatedAt.Equal(runs[j].Summary.CreatedAt) {
			return runs[i].Summary.ID > runs[j].Summary.ID
		}
		return runs[i].Summary.CreatedAt.After(runs[j].Summary.CreatedAt)
	})
	return runs
}
