package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
)

// overrideStore implements driven.OverrideStore.
type overrideStore struct {
	store *Store
}

var _ driven.OverrideStore = (*overrideStore)(nil)

// Load returns the stored batch for a project, or an empty batch.
func (s *overrideStore) Load(ctx context.Context, project string) (domain.OverrideBatch, error) {
	var batch domain.OverrideBatch
	var batchJSON string

	row := s.store.db.QueryRowContext(ctx, "SELECT batch FROM override_batches WHERE project = ?", project)
	if err := row.Scan(&batchJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return batch, nil
		}
		return batch, fmt.Errorf("scanning override batch: %w", err)
	}

	if err := json.Unmarshal([]byte(batchJSON), &batch); err != nil {
		return domain.OverrideBatch{}, fmt.Errorf("unmarshaling override batch: %w", err)
	}
	return batch, nil
}

// Save replaces the stored batch for a project.
func (s *overrideStore) Save(ctx context.Context, project string, batch domain.OverrideBatch) error {
	batchJSON, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshalling override batch: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO override_batches (project, batch, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(project) DO UPDATE SET
			batch = excluded.batch,
			updated_at = excluded.updated_at
	`, project, string(batchJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving override batch: %w", err)
	}
	return nil
}

// Clear removes the stored batch for a project.
func (s *overrideStore) Clear(ctx context.Context, project string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM override_batches WHERE project = ?", project)
	if err != nil {
		return fmt.Errorf("clearing override batch: %w", err)
	}
	return nil
}
