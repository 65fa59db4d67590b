// Package messages defines Bubbletea message types for the run browser.
package messages

import (
	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// RunRequested asks the browser to (re)load a run. An empty RunID means
// the latest run of Project.
type RunRequested struct {
	RunID   string
	Project string
}

// RunLoaded carries a saved run back to the model.
type RunLoaded struct {
	Run *domain.SavedRun
	Err error
}

// PaneChanged is sent when switching between panes.
type PaneChanged struct {
	Pane PaneType
}

// PaneType identifies which pane is currently active.
type PaneType int

const (
	// PaneStairs lists placed stairs with the selected stair's config.
	PaneStairs PaneType = iota
	// PaneOccupancy lists per-level occupant loads.
	PaneOccupancy
	// PaneOutcomes lists what happened to each override.
	PaneOutcomes
	// PaneWarnings lists occupancy warnings.
	PaneWarnings

	paneCount
)

// Panes returns every pane in display order.
func Panes() []PaneType {
	panes := make([]PaneType, 0, int(paneCount))
	for p := PaneStairs; p < paneCount; p++ {
		panes = append(panes, p)
	}
	return panes
}

// Next returns the pane after p, wrapping around.
func (p PaneType) Next() PaneType {
	return (p + 1) % paneCount
}

// Prev returns the pane before p, wrapping around.
func (p PaneType) Prev() PaneType {
	return (p + paneCount - 1) % paneCount
}

// String returns the tab label of the pane.
func (p PaneType) String() string {
	switch p {
	case PaneStairs:
		return "Stairs"
	case PaneOccupancy:
		return "Occupancy"
	case PaneOutcomes:
		return "Overrides"
	case PaneWarnings:
		return "Warnings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
