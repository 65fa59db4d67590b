package domain

// StairConfig is the full derived dimension set for a family of stairs that
// share one sizing basis. Configs are values: deriving a new config copies
// the base and never touches the original.
type StairConfig struct {
	// TotalStairs is the number of stairs sharing the building load.
	TotalStairs int `json:"total_stairs"`

	// CoreCount is the number of structural cores stairs were seeded from.
	CoreCount int `json:"core_count"`

	// MaxLoad is the largest occupant load of any level.
	MaxLoad int `json:"max_load"`

	// MinLoadPerStair is MaxLoad apportioned across TotalStairs, rounded up.
	MinLoadPerStair int `json:"min_load_per_stair"`

	// MaxElevationChange is the tallest floor-to-floor rise to bridge.
	MaxElevationChange float64 `json:"max_elevation_change"`

	// StartElevation is the elevation of the lower level of that rise.
	StartElevation float64 `json:"start_elevation"`

	ExtrusionHeight float64 `json:"extrusion_height"`
	FloorDepth      float64 `json:"floor_depth"`

	TargetRiserHeight float64 `json:"target_riser_height"`
	RiserCount        int     `json:"riser_count"`
	RiserHeight       float64 `json:"riser_height"`

	TreadDepth         float64 `json:"tread_depth"`
	TreadCount         int     `json:"tread_count"`
	FirstFlightTreads  int     `json:"first_flight_treads"`
	SecondFlightTreads int     `json:"second_flight_treads"`

	Sprinklered bool `json:"sprinklered"`

	// WidthFactor is the code's inches of stair width per occupant.
	WidthFactor float64 `json:"width_factor"`

	// MinTreadWidth is the width required by the occupant load alone.
	MinTreadWidth float64 `json:"min_tread_width"`

	// AccessibleMinTreadWidth is the accessible-design minimum width.
	AccessibleMinTreadWidth float64 `json:"accessible_min_tread_width"`

	// AbsoluteMinTreadWidth is the floor no stair may be narrower than:
	// the accessible-design minimum unless a user override replaced it.
	AbsoluteMinTreadWidth float64 `json:"absolute_min_tread_width"`

	// MinTreadWidthOverridden is set when AbsoluteMinTreadWidth came from
	// a user override.
	MinTreadWidthOverridden bool `json:"min_tread_width_overridden"`

	ResolvedMinTreadWidth  float64 `json:"resolved_min_tread_width"`
	TreadWidth             float64 `json:"tread_width"`
	Capacity               int     `json:"capacity"`
	LandingDepth           float64 `json:"landing_depth"`
	AccessibleLandingDepth float64 `json:"accessible_landing_depth"`
	RealLandingDepth       float64 `json:"real_landing_depth"`
	Width                  float64 `json:"width"`
	Length                 float64 `json:"length"`

	Log AuditLog `json:"log"`
}

// Footprint returns the stair's rectangular plan footprint in local space.
func (c StairConfig) Footprint() Polygon {
	return Rectangle(Vector3{}, Vector3{X: c.Width, Y: c.Length})
}
