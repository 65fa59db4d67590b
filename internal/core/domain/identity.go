package domain

import "fmt"

// DefaultMatchTolerance is the per-axis distance, in meters, within which two
// identity anchors are considered the same position. Regenerated geometry
// never bit-matches a stored value, so matching is always approximate.
const DefaultMatchTolerance = 1e-5

// Identity is the positional anchor that ties an override to the stair it
// edits. It is the stair's placement origin captured when the stair was
// first created, and it never changes when the stair is later moved.
type Identity struct {
	OriginalPosition Vector3 `json:"original_position" yaml:"original_position"`
}

// NewIdentity returns the identity anchored at position.
func NewIdentity(position Vector3) Identity {
	return Identity{OriginalPosition: position}
}

// Matches reports whether both anchors are within tolerance on every axis.
func (i Identity) Matches(o Identity, tolerance float64) bool {
	return i.OriginalPosition.IsAlmostEqualTo(o.OriginalPosition, tolerance)
}

// Distance returns the straight-line distance between two anchors.
func (i Identity) Distance(o Identity) float64 {
	return i.OriginalPosition.Sub(o.OriginalPosition).Length()
}

// Key returns a stable textual form of the anchor rounded to the micrometre.
func (i Identity) Key() string {
	p := i.OriginalPosition
	return fmt.Sprintf("%.6f,%.6f,%.6f", p.X+0, p.Y+0, p.Z+0)
}
