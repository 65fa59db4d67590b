package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func savedRun(id, project string, at time.Time) domain.SavedRun {
	return domain.SavedRun{
		Summary: domain.RunSummary{ID: id, Project: project, CreatedAt: at, StairCount: 2},
		Result:  domain.RunResult{ID: id, Project: project, CreatedAt: at},
	}
}

func TestRunStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewRunStore()
	now := time.Now()

	require.NoError(t, store.Save(ctx, savedRun("run-1", "tower", now)))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "tower", got.Summary.Project)
	assert.Equal(t, 2, got.Summary.StairCount)
}

func TestRunStore_Save_RequiresID(t *testing.T) {
	store := NewRunStore()
	err := store.Save(context.Background(), domain.SavedRun{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_Get_NotFound(t *testing.T) {
	_, err := NewRunStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_Latest(t *testing.T) {
	ctx := context.Background()
	store := NewRunStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Latest(ctx, "tower")
	assert.ErrorIs(t, err, domain.ErrNoRuns)

	require.NoError(t, store.Save(ctx, savedRun("old", "tower", base)))
	require.NoError(t, store.Save(ctx, savedRun("new", "tower", base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, savedRun("other", "annex", base.Add(2*time.Hour))))

	latest, err := store.Latest(ctx, "tower")
	require.NoError(t, err)
	assert.Equal(t, "new", latest.Summary.ID)
}

func TestRunStore_List(t *testing.T) {
	ctx := context.Background()
	store := NewRunStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, savedRun(id, "tower", base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := store.List(ctx, "tower", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := store.List(ctx, "tower", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := store.List(ctx, "annex", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRunStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewRunStore()
	require.NoError(t, store.Save(ctx, savedRun("run-1", "tower", time.Now())))

	require.NoError(t, store.Delete(ctx, "run-1"))
	_, err := store.Get(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
