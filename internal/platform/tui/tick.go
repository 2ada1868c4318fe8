// Package tui provides the Bubble Tea integration for the session demo.
// It handles the terminal UI loop, input mapping, and the setup/session/
// history flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AutoTickMsg is sent to trigger an auto-play tick.
type AutoTickMsg time.Time

// autoTickCmd returns a command that fires one auto-play tick after the
// configured delay. The session model re-arms it after every tick, so the
// speed setting takes effect immediately.
func autoTickCmd(secPerTick float64) tea.Cmd {
	interval := time.Duration(secPerTick * float64(time.Second))
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AutoTickMsg(t)
	})
}
