// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, menus and the SSH host.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one animation frame for the game model that scheduled it.
type TickMsg struct {
	ID   string
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// interval. Each handled tick schedules the next one.
func tickCmd(id string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
