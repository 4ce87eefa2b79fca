// Package tui runs the shooter in a terminal through Bubble Tea.
// It handles the terminal UI loop, input mapping, the scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the wall-clock step fed to the simulation.
const MaxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed time between ticks, clamped to
// (0, MaxFrameDelta]. The first tick uses fallback.
func frameDelta(prev, now time.Time, fallback time.Duration) time.Duration {
	if prev.IsZero() {
		return fallback
	}
	dt := now.Sub(prev)
	switch {
	case dt <= 0:
		return fallback
	case dt > MaxFrameDelta:
		return MaxFrameDelta
	}
	return dt
}
