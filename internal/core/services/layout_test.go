package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func countPanels(panels []domain.Panel, kind domain.PanelKind) int {
	n := 0
	for _, p := range panels {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestLayoutFlights_EvenTreads(t *testing.T) {
	c := ComputeGlobalConfig(GlobalInput{TotalStairs: 2, Records: records(150, 0, 3.5, 7)}, domain.DefaultCodeSettings())
	require.Equal(t, 18, c.TreadCount)

	panels := LayoutFlights(c, domain.Transform{})

	require.Len(t, panels, 21)
	assert.Equal(t, 3, countPanels(panels, domain.PanelLanding))
	assert.Equal(t, 18, countPanels(panels, domain.PanelTread))

	first := panels[0]
	assert.Equal(t, domain.PanelLanding, first.Kind)
	assert.InDelta(t, c.StartElevation, first.Transform.Origin.Z, 1e-9)

	top := panels[len(panels)-1]
	assert.Equal(t, domain.PanelLanding, top.Kind)
	assert.InDelta(t, c.StartElevation+c.MaxElevationChange, top.Transform.Origin.Z, 1e-9)

	// Treads climb monotonically.
	lastZ := -1.0
	for _, p := range panels {
		if p.Kind != domain.PanelTread {
			continue
		}
		assert.Greater(t, p.Transform.Origin.Z, lastZ)
		lastZ = p.Transform.Origin.Z
	}
}

func TestLayoutFlights_OddTreadsAddsClosingTread(t *testing.T) {
	c := domain.StairConfig{
		TreadCount:         17,
		FirstFlightTreads:  9,
		SecondFlightTreads: 8,
		RiserHeight:        0.17,
		TreadWidth:         1.2,
		TreadDepth:         0.28,
		LandingDepth:       1.2,
		Width:              2.4,
	}

	panels := LayoutFlights(c, domain.Transform{})

	assert.Len(t, panels, 21)
	assert.Equal(t, 3, countPanels(panels, domain.PanelLanding))
	assert.Equal(t, 18, countPanels(panels, domain.PanelTread))
}

func TestLayoutFlights_NoTreads(t *testing.T) {
	panels := LayoutFlights(domain.StairConfig{Width: 2, LandingDepth: 1}, domain.Transform{})

	require.Len(t, panels, 3)
	for _, p := range panels {
		assert.Equal(t, domain.PanelLanding, p.Kind)
	}
}

func TestLayoutFlights_FollowsPlacement(t *testing.T) {
	c := ComputeGlobalConfig(GlobalInput{TotalStairs: 1, Records: records(100, 3, 6)}, domain.DefaultCodeSettings())
	placement := domain.Transform{Origin: domain.Vector3{X: 10, Y: 5}, Rotation: 90}

	panels := LayoutFlights(c, placement)

	entry := panels[0]
	assert.True(t, entry.Transform.Origin.IsAlmostEqualTo(domain.Vector3{X: 10, Y: 5, Z: 3}, 1e-9))
	assert.InDelta(t, 90, entry.Transform.Rotation, 1e-9)

	// The first tread sits one tread width along local X, which the
	// rotation turns onto +Y.
	tread := panels[1]
	require.Equal(t, domain.PanelTread, tread.Kind)
	assert.InDelta(t, 10-c.LandingDepth, tread.Transform.Origin.X, 1e-9)
	assert.InDelta(t, 5+c.TreadWidth, tread.Transform.Origin.Y, 1e-9)
}
