package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func TestRunHistoryService_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	history := NewRunHistoryService(memory.NewRunStore())
	result := &domain.RunResult{
		ID:        "run-1",
		Project:   "tower",
		CreatedAt: time.Now(),
		Stairs:    []domain.PlacedStair{{}, {}},
	}

	require.NoError(t, history.Save(ctx, result, "digest", 3))

	saved, err := history.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "digest", saved.Summary.ModelDigest)
	assert.Equal(t, 3, saved.Summary.LevelCount)
	assert.Equal(t, 2, saved.Summary.StairCount)

	latest, err := history.Latest(ctx, "tower")
	require.NoError(t, err)
	assert.Equal(t, "run-1", latest.Summary.ID)

	list, err := history.List(ctx, "tower", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRunHistoryService_SkipsNoOp(t *testing.T) {
	ctx := context.Background()
	history := NewRunHistoryService(memory.NewRunStore())

	require.NoError(t, history.Save(ctx, &domain.RunResult{ID: "noop", Project: "slab", NoOp: true}, "", 1))

	_, err := history.Latest(ctx, "slab")
	assert.ErrorIs(t, err, domain.ErrNoRuns)
}

func TestRunHistoryService_Save_Invalid(t *testing.T) {
	history := NewRunHistoryService(memory.NewRunStore())

	assert.ErrorIs(t, history.Save(context.Background(), nil, "", 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, history.Save(context.Background(), &domain.RunResult{}, "", 0), domain.ErrInvalidInput)
}
