// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns to the search view.
	Back key.Binding

	// Search runs a search for the entered postcode.
	Search key.Binding

	// RadiusUp widens the search radius by one mile.
	RadiusUp key.Binding

	// RadiusDown narrows the search radius by one mile.
	RadiusDown key.Binding

	// ClearCache forgets every cached geocode.
	ClearCache key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "?"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		RadiusUp: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "radius +1"),
		),
		RadiusDown: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "radius -1"),
		),
		ClearCache: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear cache"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.RadiusDown, k.RadiusUp, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.RadiusDown, k.RadiusUp},
		{k.ClearCache, k.Help, k.Quit},
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
