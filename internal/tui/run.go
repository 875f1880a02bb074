package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/nameform/internal/form"
)

// Run shows the form full-screen until the user quits or ctx ends.
func Run(ctx context.Context, session *form.Session, opts Options) (form.State, error) {
	m := New(session, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return session.State(), fmt.Errorf("run terminal ui: %w", err)
	}
	return session.State(), nil
}
