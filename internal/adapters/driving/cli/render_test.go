package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func TestReport_Truncate(t *testing.T) {
	r := newReport(new(bytes.Buffer))
	assert.Equal(t, defaultReportWidth, r.width)

	short := "fits"
	assert.Equal(t, short, r.truncate(short, 4))

	long := string(bytes.Repeat([]byte("x"), 120))
	got := r.truncate(long, 4)
	assert.Len(t, got, defaultReportWidth-4)
	assert.True(t, len(got) > 3 && got[len(got)-3:] == "...")
}

func TestReport_RunOverCapacityAndOutcomes(t *testing.T) {
	buf := new(bytes.Buffer)
	result := &domain.RunResult{
		ID:        "run-1",
		Project:   "tower",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Stairs: []domain.PlacedStair{{
			Stair: domain.Stair{ID: "s1", Name: "Stair 1", Origin: domain.StairOriginAddition, Load: 300, Capacity: 200},
		}},
		Warnings: []domain.Warning{{Message: "level Roof has no area", Count: 2}},
		Outcomes: []domain.OverrideOutcome{
			{OverrideID: "ovd-1", Kind: domain.OverrideKindMove, Status: domain.OutcomeRejected, Candidates: 3},
			{OverrideID: "ovd-2", Kind: domain.OverrideKindRemoval, Status: domain.OutcomeSkipped},
		},
	}

	newReport(buf).run(result, false)

	out := buf.String()
	assert.Contains(t, out, "Project tower")
	assert.Contains(t, out, "300/200 over capacity")
	assert.Contains(t, out, "! level Roof has no area (x2)")
	assert.Contains(t, out, "ovd-1 (3 candidates)")
	assert.Contains(t, out, "skipped")
	assert.NotContains(t, out, "Global sizing")
}

func TestReport_Batch(t *testing.T) {
	buf := new(bytes.Buffer)
	batch := domain.OverrideBatch{
		Properties: []domain.PropertyOverride{{ID: "p1", Name: "North", MinimumTreadWidth: 1.4}},
		Removals:   []domain.RemovalOverride{{ID: "r1"}},
	}

	newReport(buf).batch("tower", batch)

	out := buf.String()
	assert.Contains(t, out, "2 overrides")
	assert.Contains(t, out, "Property edits")
	assert.Contains(t, out, `name "North"`)
	assert.Contains(t, out, "Removals")
	assert.NotContains(t, out, "Additions")
}

func TestReport_Summaries(t *testing.T) {
	buf := new(bytes.Buffer)
	newReport(buf).summaries([]domain.RunSummary{{
		ID:          "run-1",
		CreatedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		ModelDigest: "0123456789abcdef",
		LevelCount:  4,
		StairCount:  2,
	}})

	out := buf.String()
	assert.Contains(t, out, "2026-03-01 09:00:00")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abc")
}
