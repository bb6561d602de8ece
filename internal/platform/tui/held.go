package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HeldKeys turns key press events into a held state.
//
// Terminals report key presses and auto-repeats but never releases, so a
// key counts as held for a short window after each press. Pressing one
// direction releases the opposite one immediately, so a frame built here
// never holds both directions at once.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Apply sets every action still held at now on the frame and forgets the
// ones whose window has passed.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.until)
}
