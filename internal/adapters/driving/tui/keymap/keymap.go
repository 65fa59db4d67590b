// Package keymap defines keybindings for the run browser.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the run browser.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Up and Down move the stair cursor.
	Up   key.Binding
	Down key.Binding

	// NextPane and PrevPane cycle through stairs, occupancy, outcomes and
	// warnings.
	NextPane key.Binding
	PrevPane key.Binding

	// Audit toggles the audit trail of the selected stair.
	Audit key.Binding

	// Reload fetches the run again from history.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Audit: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "audit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// ShortHelp returns the hints shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Help, k.Quit}
}

// StairsHelp returns the hints shown while the stair pane is active.
func (k *KeyMap) StairsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Audit, k.NextPane, k.Quit}
}

// FullHelp returns the full list of keybindings for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Audit},
		{k.NextPane, k.PrevPane, k.Reload},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
