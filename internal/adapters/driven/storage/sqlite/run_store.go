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

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or replaces a run.
func (s *runStore) Save(ctx context.Context, run domain.SavedRun) error {
	if run.Summary.ID == "" {
		return domain.ErrInvalidInput
	}

	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("marshalling run result: %w", err)
	}

	createdAt := run.Summary.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, project, created_at, model_digest, level_count, stair_count, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project = excluded.project,
			created_at = excluded.created_at,
			model_digest = excluded.model_digest,
			level_count = excluded.level_count,
			stair_count = excluded.stair_count,
			result = excluded.result
	`, run.Summary.ID, run.Summary.Project, createdAt.UTC(), run.Summary.ModelDigest,
		run.Summary.LevelCount, run.Summary.StairCount, string(resultJSON))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.SavedRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, project, created_at, model_digest, level_count, stair_count, result
		FROM runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// Latest returns the most recent run for a project.
func (s *runStore) Latest(ctx context.Context, project string) (*domain.SavedRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, project, created_at, model_digest, level_count, stair_count, result
		FROM runs WHERE project = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, project)

	run, err := scanRun(row)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoRuns
	}
	return run, err
}

// List returns run summaries for a project, most recent first.
func (s *runStore) List(ctx context.Context, project string, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, project, created_at, model_digest, level_count, stair_count
		FROM runs WHERE project = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, project, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []domain.RunSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var summary domain.RunSummary
		var createdAt sql.NullTime
		if err := rows.Scan(&summary.ID, &summary.Project, &createdAt, &summary.ModelDigest,
			&summary.LevelCount, &summary.StairCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if createdAt.Valid {
			summary.CreatedAt = createdAt.Time
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return summaries, nil
}

// Delete removes a run.
func (s *runStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

// scanRun reads one full run row.
func scanRun(row *sql.Row) (*domain.SavedRun, error) {
	var run domain.SavedRun
	var createdAt sql.NullTime
	var resultJSON string
	if err := row.Scan(&run.Summary.ID, &run.Summary.Project, &createdAt, &run.Summary.ModelDigest,
		&run.Summary.LevelCount, &run.Summary.StairCount, &resultJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("unmarshaling run result: %w", err)
	}
	if createdAt.Valid {
		run.Summary.CreatedAt = createdAt.Time
	}

	return &run, nil
}
