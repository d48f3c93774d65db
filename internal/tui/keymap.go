package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. Row navigation is left to the table.
type KeyMap struct {
	// Filters
	CycleType     key.Binding
	CycleMonth    key.Binding
	CycleCategory key.Binding
	ClearFilters  key.Binding

	// Actions
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle type"),
		),
		CycleMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle month"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle category"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),

		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x/Del", "delete entry"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/Esc", "cancel"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleType, k.CycleMonth, k.CycleCategory, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleType, k.CycleMonth, k.CycleCategory, k.ClearFilters},
		{k.Delete, k.Confirm, k.Cancel},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
