package domain

// OverrideKind names one of the edit paradigms.
type OverrideKind string

// Override kinds.
const (
	OverrideKindAddition OverrideKind = "addition"
	OverrideKindMove     OverrideKind = "move"
	OverrideKindProperty OverrideKind = "property"
	OverrideKindRemoval  OverrideKind = "removal"
)

// AdditionOverride creates a new stair at Origin.
type AdditionOverride struct {
	ID     string  `json:"id" yaml:"id"`
	Origin Vector3 `json:"origin" yaml:"origin"`
}

// MoveOverride replaces the placement of the stair anchored at Identity.
type MoveOverride struct {
	ID        string    `json:"id" yaml:"id"`
	Identity  Identity  `json:"identity" yaml:"identity"`
	Transform Transform `json:"transform" yaml:"transform"`
}

// PropertyOverride renames the stair anchored at Identity and re-sizes it
// against a user-specified minimum tread width.
type PropertyOverride struct {
	ID                string   `json:"id" yaml:"id"`
	Identity          Identity `json:"identity" yaml:"identity"`
	Name              string   `json:"name" yaml:"name"`
	MinimumTreadWidth float64  `json:"minimum_tread_width" yaml:"minimum_tread_width" validate:"gt=0"`
}

// RemovalOverride deletes the stair anchored at Identity.
type RemovalOverride struct {
	ID       string   `json:"id" yaml:"id"`
	Identity Identity `json:"identity" yaml:"identity"`
}

// OverrideBatch is the immutable set of user edits supplied to one run.
type OverrideBatch struct {
	Additions  []AdditionOverride  `json:"additions,omitempty" yaml:"additions"`
	Moves      []MoveOverride      `json:"moves,omitempty" yaml:"moves"`
	Properties []PropertyOverride  `json:"properties,omitempty" yaml:"properties" validate:"dive"`
	Removals   []RemovalOverride   `json:"removals,omitempty" yaml:"removals"`
	Occupancy  []OccupancyOverride `json:"occupancy,omitempty" yaml:"occupancy" validate:"dive"`
}

// Count returns the total number of override records in the batch.
func (b OverrideBatch) Count() int {
	return len(b.Additions) + len(b.Moves) + len(b.Properties) + len(b.Removals) + len(b.Occupancy)
}

// Merge returns a batch holding b's records followed by o's.
func (b OverrideBatch) Merge(o OverrideBatch) OverrideBatch {
	return OverrideBatch{
		Additions:  append(append([]AdditionOverride(nil), b.Additions...), o.Additions...),
		Moves:      append(append([]MoveOverride(nil), b.Moves...), o.Moves...),
		Properties: append(append([]PropertyOverride(nil), b.Properties...), o.Properties...),
		Removals:   append(append([]RemovalOverride(nil), b.Removals...), o.Removals...),
		Occupancy:  append(append([]OccupancyOverride(nil), b.Occupancy...), o.Occupancy...),
	}
}

// OutcomeStatus is what happened to one override during reconciliation.
type OutcomeStatus string

// Outcome statuses.
const (
	// OutcomeApplied means the override changed the working set.
	OutcomeApplied OutcomeStatus = "applied"

	// OutcomeSkipped means no stair matched the override identity.
	OutcomeSkipped OutcomeStatus = "skipped"

	// OutcomeRejected means several stairs matched and the ambiguity
	// policy refused to pick one.
	OutcomeRejected OutcomeStatus = "rejected"
)

// OverrideOutcome records the effect of one override.
type OverrideOutcome struct {
	OverrideID string        `json:"override_id"`
	Kind       OverrideKind  `json:"kind"`
	Status     OutcomeStatus `json:"status"`

	// Candidates is the number of stairs within tolerance of the identity.
	Candidates int `json:"candidates"`

	// StairID is the stair the override was applied to, if any.
	StairID string `json:"stair_id,omitempty"`
}

// Ambiguous reports whether more than one stair matched.
func (o OverrideOutcome) Ambiguous() bool {
	return o.Candidates > 1
}
