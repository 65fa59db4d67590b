package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func TestOverrideStore_LoadEmpty(t *testing.T) {
	batch, err := NewOverrideStore().Load(context.Background(), "tower")
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Count())
}

func TestOverrideStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := NewOverrideStore()

	batch := domain.OverrideBatch{
		Additions: []domain.AdditionOverride{{ID: "add-1", Origin: domain.Vector3{X: 5, Y: 5}}},
		Removals:  []domain.RemovalOverride{{ID: "rm-1", Identity: domain.NewIdentity(domain.Vector3{})}},
	}
	require.NoError(t, store.Save(ctx, "tower", batch))

	loaded, err := store.Load(ctx, "tower")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count())
	assert.Equal(t, "add-1", loaded.Additions[0].ID)

	other, err := store.Load(ctx, "annex")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Count())

	require.NoError(t, store.Clear(ctx, "tower"))
	cleared, err := store.Load(ctx, "tower")
	require.NoError(t, err)
	assert.Equal(t, 0, cleared.Count())
}

func TestOverrideStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewOverrideStore()
	require.NoError(t, store.Save(ctx, "tower", domain.OverrideBatch{
		Additions: []domain.AdditionOverride{{ID: "add-1"}},
	}))

	loaded, _ := store.Load(ctx, "tower")
	loaded.Additions[0].ID = "mutated"

	again, _ := store.Load(ctx, "tower")
	assert.Equal(t, "add-1", again.Additions[0].ID)
}
