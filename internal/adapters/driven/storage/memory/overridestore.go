package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
)

// Ensure OverrideStore implements the interface.
var _ driven.OverrideStore = (*OverrideStore)(nil)

// OverrideStore is an in-memory implementation of driven.OverrideStore.
type OverrideStore struct {
	mu      sync.RWMutex
	batches map[string]domain.OverrideBatch
}

// NewOverrideStore creates a new in-memory override store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{
		batches: make(map[string]domain.OverrideBatch),
	}
}

// Load returns the stored batch for a project, or an empty batch.
// The returned batch does not share storage with the store.
func (s *OverrideStore) Load(_ context.Context, project string) (domain.OverrideBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.OverrideBatch{}.Merge(s.batches[project]), nil
}

// Save replaces the stored batch for a project.
func (s *OverrideStore) Save(_ context.Context, project string, batch domain.OverrideBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[project] = domain.OverrideBatch{}.Merge(batch)
	return nil
}

// Clear removes the stored batch for a project.
func (s *OverrideStore) Clear(_ context.Context, project string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, project)
	return nil
}
