package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the history browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)

	if _, err := tea.NewProgram(New(ctx, cfg), opts...).Run(); err != nil {
		return fmt.Errorf("history browser failed: %w", err)
	}
	return nil
}
