// Package tui is an interactive findings browser: a keyboard-driven list
// with a syntax-highlighted source snippet for the selected finding.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leakgate/leakgate/internal/types"
)

// Run starts the browser. root resolves relative finding paths for the
// snippet pane; rescanFunc re-runs the originating scan when the operator
// presses r.
func Run(findings []types.Finding, root string, rescanFunc func() ([]types.Finding, error)) error {
	m := NewModel(findings, root, rescanFunc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
