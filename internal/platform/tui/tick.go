// Package tui hosts the breakout simulation in a Bubble Tea program.
// It owns the frame clock, key mapping, menus and session history screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame. The host derives dt
// from consecutive ticks, so a late frame simulates a longer step.
type TickMsg time.Time

// tickInterval returns the frame period for a tick rate.
// Non-positive rates fall back to 60 frames per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
