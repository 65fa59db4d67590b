package services

import "github.com/custodia-labs/egress-cli/internal/core/domain"

// LayoutFlights places the landings and treads of a two-flight stair for
// visualisation. Panels are returned in climbing order, placed by the
// stair's transform and lifted to the config's start elevation.
// Configs with no treads degenerate to their three landings.
func LayoutFlights(c domain.StairConfig, placement domain.Transform) []domain.Panel {
	treads := max(c.TreadCount, 0)
	first := max(c.FirstFlightTreads, 0)
	second := max(c.SecondFlightTreads, 0)
	riser := c.RiserHeight

	landing := domain.Rectangle(domain.Vector3{}, domain.Vector3{X: c.Width, Y: c.LandingDepth})
	tread := domain.Rectangle(domain.Vector3{}, domain.Vector3{X: c.TreadWidth, Y: c.TreadDepth})
	lift := domain.Translation(domain.Vector3{Z: c.StartElevation})

	panels := make([]domain.Panel, 0, treads+4)
	add := func(kind domain.PanelKind, index int, footprint domain.Polygon, at domain.Vector3) {
		local := domain.Translation(at)
		panels = append(panels, domain.Panel{
			Kind:      kind,
			Index:     index,
			Footprint: footprint,
			Transform: local.Then(placement).Then(lift),
		})
	}

	// Entry landing.
	add(domain.PanelLanding, 0, landing, domain.Vector3{})

	// First flight climbs away from the entry on the outer lane.
	for i := range first {
		add(domain.PanelTread, i+1, tread, domain.Vector3{
			X: c.TreadWidth,
			Y: float64(i)*c.TreadDepth + c.LandingDepth,
			Z: float64(i+1) * riser,
		})
	}

	// Mid-level landing.
	add(domain.PanelLanding, 0, landing, domain.Vector3{
		Y: float64(first)*c.TreadDepth + c.LandingDepth,
		Z: float64(first+1) * riser,
	})

	// Second flight walks back on the inner lane.
	for i := first + 1; i <= treads; i++ {
		add(domain.PanelTread, i, tread, domain.Vector3{
			Y: float64(treads-i)*c.TreadDepth + c.LandingDepth,
			Z: float64(i+1) * riser,
		})
	}

	// An odd tread count leaves the second flight one short.
	if second < first {
		add(domain.PanelTread, treads+1, tread, domain.Vector3{
			Y: c.LandingDepth,
			Z: float64(treads+2) * riser,
		})
	}

	// Landing above the entry.
	add(domain.PanelLanding, 0, landing, domain.Vector3{Z: float64(treads+2) * riser})

	return panels
}
