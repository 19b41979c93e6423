// Package tui provides the Bubble Tea adapter for breakout: it maps keys to
// paddle input, draws the session each frame, and serves the same program
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/loop"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(loop.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
