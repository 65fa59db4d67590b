package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideBatch_CountAndMerge(t *testing.T) {
	a := OverrideBatch{
		Additions: []AdditionOverride{{ID: "a1"}},
		Removals:  []RemovalOverride{{ID: "r1"}},
	}
	b := OverrideBatch{
		Additions: []AdditionOverride{{ID: "a2"}},
		Moves:     []MoveOverride{{ID: "m1"}},
		Occupancy: []OccupancyOverride{{ID: "o1"}},
	}

	merged := a.Merge(b)

	assert.Equal(t, 2, a.Count())
	assert.Equal(t, 5, merged.Count())
	assert.Equal(t, []AdditionOverride{{ID: "a1"}, {ID: "a2"}}, merged.Additions)

	// Merging never aliases the inputs.
	merged.Additions[0].ID = "changed"
	assert.Equal(t, "a1", a.Additions[0].ID)
}

func TestOverrideOutcome_Ambiguous(t *testing.T) {
	assert.False(t, OverrideOutcome{Candidates: 0}.Ambiguous())
	assert.False(t, OverrideOutcome{Candidates: 1}.Ambiguous())
	assert.True(t, OverrideOutcome{Candidates: 2}.Ambiguous())
}

func TestRunResult_Lookups(t *testing.T) {
	r := &RunResult{
		Occupancy: []OccupancyRecord{{LevelName: "Ground", Occupants: 12}},
		Stairs:    []PlacedStair{{Stair: Stair{ID: "s1", Name: "North"}}},
		Outcomes: []OverrideOutcome{
			{Status: OutcomeApplied},
			{Status: OutcomeSkipped},
			{Status: OutcomeApplied},
		},
	}

	stair, ok := r.StairByID("s1")
	assert.True(t, ok)
	assert.Equal(t, "North", stair.Stair.Name)
	_, ok = r.StairByID("s2")
	assert.False(t, ok)

	record, ok := r.OccupancyByLevel("Ground")
	assert.True(t, ok)
	assert.Equal(t, 12, record.Occupants)
	_, ok = r.OccupancyByLevel("Roof")
	assert.False(t, ok)

	assert.Equal(t, 2, r.CountOutcomes(OutcomeApplied))
	assert.Equal(t, 0, r.CountOutcomes(OutcomeRejected))
}

func TestWarning_String(t *testing.T) {
	assert.Equal(t, "check load", Warning{Message: "check load", Count: 1}.String())
	assert.Equal(t, "check load (x3)", Warning{Message: "check load", Count: 3}.String())
}

func TestStair_IsOverCapacity(t *testing.T) {
	assert.False(t, Stair{Capacity: 100, Load: 100}.IsOverCapacity())
	assert.True(t, Stair{Capacity: 100, Load: 101}.IsOverCapacity())
}

func TestBuildingModel_HasVerticalEgress(t *testing.T) {
	assert.False(t, BuildingModel{}.HasVerticalEgress())
	assert.False(t, BuildingModel{Levels: []Level{{}}}.HasVerticalEgress())
	assert.True(t, BuildingModel{Levels: []Level{{}, {}}}.HasVerticalEgress())
}

func TestStairConfig_Footprint(t *testing.T) {
	p := StairConfig{Width: 2, Length: 5}.Footprint()
	assert.InDelta(t, 10, p.Area(), 1e-12)
}
