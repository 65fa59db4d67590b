package domain

import "fmt"

// OccupancySource records where a level's occupant load came from.
type OccupancySource string

// Occupancy sources.
const (
	// OccupancySourceOverride means a prior override record was reused.
	OccupancySourceOverride OccupancySource = "override"

	// OccupancySourceDefault means the area-based default formula was used.
	OccupancySourceDefault OccupancySource = "default"
)

// OccupancyOverride is a user-supplied occupant load for one level.
type OccupancyOverride struct {
	ID        string        `json:"id" yaml:"id"`
	Identity  LevelIdentity `json:"identity" yaml:"identity"`
	Occupants int           `json:"occupants" yaml:"occupants" validate:"gte=0"`
}

// OccupancyRecord is the resolved occupant load for one level. Records are
// created once per run and never mutated.
type OccupancyRecord struct {
	LevelName  string          `json:"level_name"`
	Elevation  float64         `json:"elevation"`
	Thickness  float64         `json:"thickness"`
	Identity   LevelIdentity   `json:"identity"`
	Occupants  int             `json:"occupants"`
	Source     OccupancySource `json:"source"`
	OverrideID string          `json:"override_id,omitempty"`
}

// Warning is a distinct warning message and how many times it was raised.
type Warning struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// String returns the message with its occurrence count.
func (w Warning) String() string {
	if w.Count <= 1 {
		return w.Message
	}
	return fmt.Sprintf("%s (x%d)", w.Message, w.Count)
}
