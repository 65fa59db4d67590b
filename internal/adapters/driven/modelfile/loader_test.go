package modelfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

const sampleModel = `
name: tower
sprinklered: true
levels:
  - name: Ground
    elevation: 0
    thickness: 0.3
    boundary:
      - {x: 0, y: 0}
      - {x: 30, y: 0}
      - {x: 30, y: 20}
      - {x: 0, y: 20}
  - name: Level 2
    elevation: 3.5
    thickness: 0.3
    boundary:
      - {x: 0, y: 0}
      - {x: 30, y: 0}
      - {x: 30, y: 20}
      - {x: 0, y: 20}
    transform:
      origin: {x: 0, y: 0, z: 3.5}
cores:
  - name: Core A
    boundary:
      - {x: 10, y: 8}
      - {x: 14, y: 8}
      - {x: 14, y: 12}
      - {x: 10, y: 12}
overrides:
  additions:
    - id: add-1
      origin: {x: 25, y: 15}
  properties:
    - id: prop-1
      identity:
        original_position: {x: 10, y: 8}
      name: North
      minimum_tread_width: 1.4
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_LoadModel(t *testing.T) {
	path := writeFile(t, "tower.yaml", sampleModel)

	model, err := NewLoader().LoadModel(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "tower", model.Name)
	assert.True(t, model.Sprinklered)
	require.Len(t, model.Levels, 2)
	assert.Equal(t, 3.5, model.Levels[1].Elevation)
	assert.Equal(t, 3.5, model.Levels[1].Transform.Origin.Z)
	assert.InDelta(t, 600, model.Levels[0].Area(), 1e-9)
	require.Len(t, model.Cores, 1)
	assert.Equal(t, domain.Vector3{X: 10, Y: 8}, model.Cores[0].Corner())
	require.Len(t, model.Overrides.Additions, 1)
	require.Len(t, model.Overrides.Properties, 1)
	assert.Equal(t, "North", model.Overrides.Properties[0].Name)
}

func TestLoader_LoadModel_JSON(t *testing.T) {
	content := `{"name": "slab", "levels": [{"name": "L1", "elevation": 0, ` +
		`"boundary": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}]}]}`
	path := writeFile(t, "slab.json", content)

	model, err := NewLoader().LoadModel(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "slab", model.Name)
	assert.False(t, model.HasVerticalEgress())
}

func TestLoader_LoadModel_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "short boundary",
			content: "levels:\n  - name: L1\n    boundary:\n      - {x: 0, y: 0}\n      - {x: 1, y: 0}\n",
			message: "Levels[0].Boundary.Vertices needs at least 3 entries",
		},
		{
			name:    "negative thickness",
			content: "levels:\n  - name: L1\n    thickness: -1\n    boundary: [{x: 0}, {x: 1}, {y: 1}]\n",
			message: "Levels[0].Thickness must be at least 0",
		},
		{
			name:    "negative occupancy",
			content: "overrides:\n  occupancy:\n    - id: o1\n      occupants: -5\n      identity:\n        boundary: [{x: 0}, {x: 1}, {y: 1}]\n",
			message: "Overrides.Occupancy[0].Occupants must be at least 0",
		},
		{
			name:    "unknown field",
			content: "levelz: []\n",
			message: "levelz",
		},
		{
			name:    "empty",
			content: "",
			message: "empty document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tt.content)

			_, err := NewLoader().LoadModel(context.Background(), path)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidModel)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoader_LoadModel_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadModel(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadOverrides(t *testing.T) {
	content := `
removals:
  - id: rm-1
    identity:
      original_position: {x: 10, y: 8}
properties:
  - id: prop-1
    identity:
      original_position: {x: 10, y: 8}
    minimum_tread_width: 0
`
	path := writeFile(t, "overrides.yaml", content)

	_, err := NewLoader().LoadOverrides(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
	assert.Contains(t, err.Error(), "MinimumTreadWidth must be greater than 0")
}

func TestLoader_Digest(t *testing.T) {
	loader := NewLoader()
	a := writeFile(t, "a.yaml", sampleModel)
	b := writeFile(t, "b.yaml", sampleModel)
	c := writeFile(t, "c.yaml", sampleModel+"\n# edited\n")

	da, err := loader.Digest(a)
	require.NoError(t, err)
	db, err := loader.Digest(b)
	require.NoError(t, err)
	dc, err := loader.Digest(c)
	require.NoError(t, err)

	assert.Len(t, da, 64)
	assert.Equal(t, da, db)
	assert.NotEqual(t, da, dc)

	_, err = loader.Digest(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoader_Parse(t *testing.T) {
	model, err := NewLoader().Parse([]byte(sampleModel))
	require.NoError(t, err)
	assert.Equal(t, "tower", model.Name)

	_, err = NewLoader().Parse([]byte("levels: [}"))
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}
