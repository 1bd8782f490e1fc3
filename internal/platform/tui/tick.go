// Package tui provides the Bubble Tea front end for the match-3 engine.
// It handles the terminal UI loop, key bindings, rendering and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg is sent to run the next cascade pass.
type StepMsg time.Time

// stepCmd returns a Bubble Tea command that sends a step message after delay.
func stepCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return StepMsg(t)
	})
}
