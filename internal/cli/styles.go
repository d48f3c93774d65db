// Package cli provides styled terminal output and prompts for the tally commands.
package cli

import (
	"github.com/Veraticus/tally/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#5B8DEF")
	IncomeColor  = lipgloss.Color("#4ECDC4")
	ExpenseColor = lipgloss.Color("#FF6B6B")
	SavingsColor = lipgloss.Color("#FFB347")
	WarningColor = lipgloss.Color("#FFE66D")
	SubtleColor  = lipgloss.Color("#666666")
	BorderColor  = lipgloss.Color("#333333")
)

// Text styles shared by every command.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(IncomeColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ExpenseColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	WalletIcon  = "👛"
	ChartIcon   = "📊"
	BankIcon    = "🏦"
)

var typeColors = map[model.TransactionType]lipgloss.Color{
	model.TypeIncome:  IncomeColor,
	model.TypeExpense: ExpenseColor,
	model.TypeSavings: SavingsColor,
}

// TypeStyle returns the color style of a transaction type. Unknown types render
// like expenses.
func TypeStyle(t model.TransactionType) lipgloss.Style {
	color, ok := typeColors[t]
	if !ok {
		color = ExpenseColor
	}
	return lipgloss.NewStyle().Foreground(color)
}

func withIcon(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess reports a completed change.
func FormatSuccess(message string) string { return withIcon(SuccessStyle, SuccessIcon, message) }

// FormatError reports a failed command.
func FormatError(message string) string { return withIcon(ErrorStyle, ErrorIcon, message) }

// FormatWarning flags something the user should double-check.
func FormatWarning(message string) string { return withIcon(WarningStyle, WarningIcon, message) }

// FormatTitle renders a section title behind the wallet icon.
func FormatTitle(title string) string { return withIcon(TitleStyle, WalletIcon, title) }

// FormatPrompt renders a question waiting for an answer on the same line.
func FormatPrompt(prompt string) string {
	return promptStyle.Render(prompt + " → ")
}

// RenderBox draws content under a bold title inside a rounded border.
func RenderBox(title, content string) string {
	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.UnsetMargins().Render(title),
		content,
	))
}
