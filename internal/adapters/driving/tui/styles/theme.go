// Package styles provides colour themes and styling for the run browser.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the run browser.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary highlights headings and the active pane tab.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for labels and hints.
	Muted lipgloss.Color

	// Success marks stairs within capacity and applied overrides.
	Success lipgloss.Color

	// Warning marks skipped overrides and occupancy warnings.
	Warning lipgloss.Color

	// Error marks over-capacity stairs and rejected overrides.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#E0773A"), // Exit-sign orange
		Secondary:  lipgloss.Color("#5FB3B3"), // Teal
		Foreground: lipgloss.Color("#D8DEE9"),
		Muted:      lipgloss.Color("#7B8394"),
		Success:    lipgloss.Color("#8FBF74"),
		Warning:    lipgloss.Color("#E5C07B"),
		Error:      lipgloss.Color("#E06C75"),
		Border:     lipgloss.Color("#4C566A"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the cursor row of the stair list.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Tab and ActiveTab render the pane switcher.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style

	// Panel frames the detail pane.
	Panel lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Border),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			Underline(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#2E3440")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Load picks the style for a stair load against its capacity.
func (s *Styles) Load(load, capacity int) lipgloss.Style {
	if load > capacity {
		return s.Error
	}
	return s.Success
}
