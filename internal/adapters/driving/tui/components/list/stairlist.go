// Package list provides list display components for the run browser.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// StairList displays placed stairs in a navigable list.
type StairList struct {
	stairs   []domain.PlacedStair
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewStairList creates a new stair list component.
func NewStairList(s *styles.Styles) *StairList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &StairList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the stair list.
func (l *StairList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *StairList) Update(msg tea.Msg) (*StairList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the stair list.
func (l *StairList) View() string {
	if len(l.stairs) == 0 {
		return l.styles.Muted.Render("No stairs")
	}

	lines := make([]string, 0, len(l.stairs)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Stairs (%d)", len(l.stairs))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.stairs) {
		end = len(l.stairs)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderStair(i, &l.stairs[i]))
	}

	return strings.Join(lines, "\n")
}

// renderStair formats one row: name, origin and load over capacity.
func (l *StairList) renderStair(index int, ps *domain.PlacedStair) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := ps.Stair.Name
	maxNameLen := l.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	load := fmt.Sprintf("%d/%d", ps.Stair.Load, ps.Stair.Capacity)
	if ps.Stair.IsOverCapacity() {
		load += " !"
	}

	label := fmt.Sprintf("%s%-*s  %-8s", indicator, maxNameLen, name, ps.Stair.Origin)
	if index == l.selected {
		return l.styles.Selected.Render(label) + "  " + l.styles.Load(ps.Stair.Load, ps.Stair.Capacity).Render(load)
	}
	return l.styles.Normal.Render(label) + "  " + l.styles.Load(ps.Stair.Load, ps.Stair.Capacity).Render(load)
}

// SetStairs replaces the listed stairs and resets the cursor.
func (l *StairList) SetStairs(stairs []domain.PlacedStair) {
	l.stairs = stairs
	l.selected = 0
}

// Stairs returns the listed stairs.
func (l *StairList) Stairs() []domain.PlacedStair {
	return l.stairs
}

// Selected returns the cursor index.
func (l *StairList) Selected() int {
	return l.selected
}

// SetSelected moves the cursor when index is in range.
func (l *StairList) SetSelected(index int) {
	if index >= 0 && index < len(l.stairs) {
		l.selected = index
	}
}

// SelectedStair returns the stair under the cursor, or nil if none.
func (l *StairList) SelectedStair() *domain.PlacedStair {
	if len(l.stairs) == 0 || l.selected < 0 || l.selected >= len(l.stairs) {
		return nil
	}
	return &l.stairs[l.selected]
}

// MoveUp moves selection up.
func (l *StairList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *StairList) MoveDown() {
	if l.selected < len(l.stairs)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *StairList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of stairs.
func (l *StairList) Count() int {
	return len(l.stairs)
}

// IsEmpty returns whether the list is empty.
func (l *StairList) IsEmpty() bool {
	return len(l.stairs) == 0
}
