// Package tui provides the Bubble Tea integration for letra.
// It handles the terminal UI loop, the countdown tick, key mapping and the
// screens around a run.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per countdown interval. RunID ties the tick to the
// run that scheduled it, so ticks of an abandoned run are dropped and their
// loop ends.
type TickMsg struct {
	RunID string
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(runID string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{RunID: runID, Time: t}
	})
}
