// Package tui implements the interactive VM dashboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/virtray/virtray/internal/snapshot"
)

// Run launches the dashboard against an established host connection and
// blocks until the user quits.
func Run(h Host, builder *snapshot.Builder, shotDir string, poll time.Duration) error {
	model := NewModel(h, builder, shotDir, poll)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
