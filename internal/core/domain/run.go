package domain

import "time"

// PlacedStair is a surviving stair with the config it was sized from and
// its flight layout.
type PlacedStair struct {
	Stair  Stair       `json:"stair"`
	Config StairConfig `json:"config"`
	Panels []Panel     `json:"panels"`
}

// RunResult is everything one planning pass produced.
type RunResult struct {
	ID        string    `json:"id"`
	Project   string    `json:"project"`
	CreatedAt time.Time `json:"created_at"`

	// NoOp is set when the model had fewer than two levels.
	NoOp bool `json:"no_op"`

	Occupancy []OccupancyRecord `json:"occupancy"`
	Warnings  []Warning         `json:"warnings"`

	// Global is the shared sizing baseline. Nil when NoOp is set.
	Global *StairConfig `json:"global,omitempty"`

	Stairs   []PlacedStair     `json:"stairs"`
	Removed  []Stair           `json:"removed,omitempty"`
	Outcomes []OverrideOutcome `json:"outcomes"`
}

// StairByID returns the placed stair with the given ID.
func (r *RunResult) StairByID(id string) (*PlacedStair, bool) {
	for i := range r.Stairs {
		if r.Stairs[i].Stair.ID == id {
			return &r.Stairs[i], true
		}
	}
	return nil, false
}

// OccupancyByLevel returns the occupancy record for the named level.
func (r *RunResult) OccupancyByLevel(name string) (*OccupancyRecord, bool) {
	for i := range r.Occupancy {
		if r.Occupancy[i].LevelName == name {
			return &r.Occupancy[i], true
		}
	}
	return nil, false
}

// CountOutcomes returns how many outcomes have the given status.
func (r *RunResult) CountOutcomes(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// RunSummary is the listing view of a saved run.
type RunSummary struct {
	ID          string    `json:"id"`
	Project     string    `json:"project"`
	CreatedAt   time.Time `json:"created_at"`
	ModelDigest string    `json:"model_digest"`
	LevelCount  int       `json:"level_count"`
	StairCount  int       `json:"stair_count"`
}

// SavedRun is a persisted run and the digest of the model it was run on.
type SavedRun struct {
	Summary RunSummary
	Result  RunResult
}

// PlanOptions adjusts one planning pass.
type PlanOptions struct {
	// Project scopes stored overrides and run history.
	Project string

	// Sprinklered forces the sprinklered width factor regardless of the
	// model and settings.
	Sprinklered bool
}

// DefaultProject is used when no project name is given.
const DefaultProject = "default"
