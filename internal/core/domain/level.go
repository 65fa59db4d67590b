package domain

// Level is a horizontal floor plate of the building. Levels are read-only
// input to planning.
type Level struct {
	Name      string    `json:"name" yaml:"name"`
	Elevation float64   `json:"elevation" yaml:"elevation"`
	Thickness float64   `json:"thickness" yaml:"thickness" validate:"gte=0"`
	Boundary  Polygon   `json:"boundary" yaml:"boundary"`
	Transform Transform `json:"transform" yaml:"transform"`
}

// Area returns the plan area of the level boundary in square meters.
func (l Level) Area() float64 {
	return l.Boundary.Area()
}

// Identity returns the positional identity used to re-match occupancy
// overrides to this level on later runs.
func (l Level) Identity() LevelIdentity {
	return LevelIdentity{Transform: l.Transform, Boundary: l.Boundary}
}

// LevelIdentity identifies a level by its placement and boundary rather than
// by a generated key.
type LevelIdentity struct {
	Transform Transform `json:"transform" yaml:"transform"`
	Boundary  Polygon   `json:"boundary" yaml:"boundary"`
}

// Matches reports whether the identity describes level within tolerance.
func (id LevelIdentity) Matches(level Level, tolerance float64) bool {
	return id.Transform.IsAlmostEqualTo(level.Transform, tolerance) &&
		id.Boundary.IsAlmostEqualTo(level.Boundary, tolerance)
}

// StructuralCore is a vertical shaft footprint used as a default stair
// location.
type StructuralCore struct {
	Name     string  `json:"name" yaml:"name"`
	Boundary Polygon `json:"boundary" yaml:"boundary"`
}

// Corner returns the minimum corner of the core footprint.
func (c StructuralCore) Corner() Vector3 {
	lo, _ := c.Boundary.Bounds()
	return lo
}
