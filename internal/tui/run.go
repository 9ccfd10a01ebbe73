package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard and blocks until the user quits.
func Run(cfg Config) error {
	if cfg.Ledger == nil {
		return fmt.Errorf("ledger is required")
	}
	if cfg.Adviser == nil {
		return fmt.Errorf("adviser is required")
	}

	program := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
