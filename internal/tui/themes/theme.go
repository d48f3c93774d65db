// Package themes holds the color themes of the history browser.
package themes

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Selected    lipgloss.Style
	Header      lipgloss.Style
	Income      lipgloss.Style
	Expense     lipgloss.Style
	Savings     lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
}

// palette is the handful of colors a theme is derived from.
type palette struct {
	primary, onPrimary  lipgloss.Color
	text, subtext       lipgloss.Color
	muted, border       lipgloss.Color
	income, expense     lipgloss.Color
	savings, info       lipgloss.Color
}

func (p palette) theme() Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return Theme{
		Primary: p.primary,
		Muted:   p.muted,
		Border:  p.border,

		Title:    fg(p.text).Bold(true).MarginBottom(1),
		Subtitle: fg(p.subtext),
		Normal:   fg(p.text),
		Bold:     fg(p.text).Bold(true),
		Selected: fg(p.onPrimary).Background(p.primary).Bold(true),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			BorderBottom(true).
			Bold(true),
		Income:      fg(p.income),
		Expense:     fg(p.expense),
		Savings:     fg(p.savings),
		StatusError: fg(p.expense).Bold(true),
		StatusInfo:  fg(p.info).Bold(true),
	}
}

// Default is the default theme.
var Default = palette{
	primary: "#5b8def", onPrimary: "#fafafa",
	text: "#fafafa", subtext: "#a3a3a3",
	muted: "#737373", border: "#404040",
	income: "#10b981", expense: "#ef4444",
	savings: "#f59e0b", info: "#3b82f6",
}.theme()

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = palette{
	primary: "#cba6f7", onPrimary: "#1e1e2e",
	text: "#cdd6f4", subtext: "#a6adc8",
	muted: "#6c7086", border: "#45475a",
	income: "#a6e3a1", expense: "#f38ba8",
	savings: "#f9e2af", info: "#89dceb",
}.theme()

var registry = map[string]Theme{
	"default":          Default,
	"catppuccin-mocha": CatppuccinMocha,
}

// Lookup returns the theme registered under name.
func Lookup(name string) (Theme, bool) {
	t, ok := registry[name]
	return t, ok
}

// GetTheme returns the theme registered under name, or Default.
func GetTheme(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return Default
}

// Names lists the registered theme names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
