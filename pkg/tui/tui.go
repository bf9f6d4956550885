// Package tui is the interactive schedule browser. It drives the same
// calendar builders as the CLI printers through a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agroplanner/fieldops/pkg/app"
)

type UI struct {
	Service *app.Service

	Now time.Time
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("tui: no service configured")
	}
	now := u.Now
	if now.IsZero() {
		now = time.Now()
	}
	p := tea.NewProgram(newModel(u.Service, now), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
