package domain

// StairOrigin describes how a stair entered the working set.
type StairOrigin string

// Stair origins.
const (
	// StairOriginCore is a baseline stair seeded at a structural core.
	StairOriginCore StairOrigin = "core"

	// StairOriginLevel is the single baseline stair seeded at the first
	// level's centroid when the building has no structural cores.
	StairOriginLevel StairOrigin = "level"

	// StairOriginAddition is a stair created by an addition override.
	StairOriginAddition StairOrigin = "addition"
)

// Stair is a placed egress stair.
type Stair struct {
	// ID is derived from the identity anchor, so it is stable across runs.
	ID   string `json:"id"`
	Name string `json:"name"`

	Origin    StairOrigin `json:"origin"`
	Footprint Polygon     `json:"footprint"`

	// Capacity is the number of occupants the stair width can carry.
	Capacity int `json:"capacity"`

	// Load is the number of occupants the stair is required to carry.
	Load int `json:"load"`

	Transform Transform `json:"transform"`

	// Anchor is the placement origin at creation time. Overrides from
	// earlier runs find this stair by it.
	Anchor Identity `json:"anchor"`

	// MinimumTreadWidth is the width floor that applied to this stair.
	MinimumTreadWidth float64 `json:"minimum_tread_width"`

	Audit []string `json:"audit"`

	// AppliedOverrides lists the IDs of overrides stamped onto the stair.
	AppliedOverrides []string `json:"applied_overrides,omitempty"`
}

// IsOverCapacity reports whether the stair carries more than it can.
func (s Stair) IsOverCapacity() bool {
	return s.Load > s.Capacity
}
