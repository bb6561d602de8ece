package tui

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var testHost = config.HostConfig{MaxFrameDT: 0.05, KeyHoldMS: 120}

func newTestModel(t *testing.T, store *storage.Store) (Model, *breakout.Game) {
	t.Helper()

	game := breakout.New()
	m := NewModel(game, core.DefaultConfig(), Options{Store: store, Host: testHost})
	m.Init()
	return m, game
}

// tick feeds one TickMsg at the given time.
func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()

	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg, at time.Time) Model {
	t.Helper()

	next, _ := m.handleKey(msg, at)
	return next.(Model)
}

func paddleX(t *testing.T, game *breakout.Game) float64 {
	t.Helper()

	snap := game.Snapshot()
	p, ok := snap.Find(breakout.KindPaddle)
	if !ok {
		t.Fatal("paddle not found")
	}
	return p.Center.X
}

func TestFrameDeltaClamped(t *testing.T) {
	m, _ := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	if got := m.frameDelta(t0); got != 0 {
		t.Errorf("first frame delta = %v, expected 0", got)
	}

	m.lastTick = t0
	tests := []struct {
		name     string
		after    time.Duration
		expected float64
	}{
		{"regular frame", 20 * time.Millisecond, 0.02},
		{"stall", 2 * time.Second, testHost.MaxFrameDT},
		{"clock went back", -time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.frameDelta(t0.Add(tc.after)); math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("frameDelta(+%v) = %v, expected %v", tc.after, got, tc.expected)
			}
		})
	}
}

func TestHeldKeyMovesPaddle(t *testing.T) {
	m, game := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = tick(t, m, t0)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = tick(t, m, t0.Add(16*time.Millisecond))

	speed := game.Config().Paddle.Speed
	expected := -speed * 0.016
	if got := paddleX(t, game); math.Abs(got-expected) > 1e-9 {
		t.Fatalf("paddle x = %v, expected %v", got, expected)
	}

	// The hold window has passed; the paddle stays put
	_ = tick(t, m, t0.Add(time.Second))
	if got := paddleX(t, game); math.Abs(got-expected) > 1e-9 {
		t.Errorf("paddle moved after release: x = %v, expected %v", got, expected)
	}
}

func TestPauseKeyIsOneShot(t *testing.T) {
	m, game := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = press(t, m, runeKey('p'), t0)
	m = tick(t, m, t0)
	if !game.State().Paused {
		t.Fatal("expected game to be paused")
	}

	// The action must not toggle pause again on the next tick
	_ = tick(t, m, t0.Add(16*time.Millisecond))
	if !game.State().Paused {
		t.Error("pause should stay on until pressed again")
	}
}

func TestInspectorToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m = press(t, m, runeKey('i'), t0)
	if !m.inspecting {
		t.Fatal("expected inspector to be on")
	}
	if !strings.Contains(m.View(), "inspector") {
		t.Error("view should show the inspector panel")
	}

	m = press(t, m, runeKey('i'), t0)
	if m.inspecting {
		t.Error("expected inspector to be off")
	}
}

func TestSessionRecordedOnQuitAndRestart(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	t0 := time.Unix(1000, 0)

	for i := range 10 {
		m = tick(t, m, t0.Add(time.Duration(i)*16*time.Millisecond))
	}

	// Restart records the finished session and starts over
	m = press(t, m, runeKey('r'), t0)
	m = tick(t, m, t0.Add(200*time.Millisecond))
	if got := m.game.State().Tick; got != 0 {
		t.Errorf("tick after restart = %d, expected 0", got)
	}

	for i := range 5 {
		m = tick(t, m, t0.Add(time.Duration(300+i*16)*time.Millisecond))
	}

	next, cmd := m.handleKey(runeKey('q'), t0.Add(time.Second))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}

	sessions, err := store.RecentSessions("breakout", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Ticks != 5 || sessions[1].Ticks != 10 {
		t.Errorf("ticks = %d, %d, expected 5, 10", sessions[0].Ticks, sessions[1].Ticks)
	}
	for _, s := range sessions {
		if s.Layout != breakout.DefaultLayoutID || s.BricksTotal != 56 {
			t.Errorf("unexpected session %+v", s)
		}
	}
}

func TestRestartOnSmallScreenRecordsOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	t0 := time.Unix(1000, 0)

	for i := range 30 {
		m = tick(t, m, t0.Add(time.Duration(i)*16*time.Millisecond))
	}

	next, _ := m.handleResize(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = next.(Model)
	m = press(t, m, runeKey('r'), t0)
	m = tick(t, m, t0.Add(500*time.Millisecond))
	if got := m.game.State().Tick; got != 0 {
		t.Errorf("tick after restart on a small screen = %d, expected 0", got)
	}

	next, _ = m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	for i := range 10 {
		m = tick(t, m, t0.Add(time.Duration(600+i*16)*time.Millisecond))
	}
	m.handleKey(runeKey('q'), t0.Add(time.Second))

	sessions, err := store.RecentSessions("breakout", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Ticks != 10 || sessions[1].Ticks != 30 {
		t.Errorf("ticks = %d, %d, expected 10, 30", sessions[0].Ticks, sessions[1].Ticks)
	}
}

func TestBackKeyLeavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	t0 := time.Unix(1000, 0)
	for i := range 8 {
		m = tick(t, m, t0.Add(time.Duration(i)*16*time.Millisecond))
	}

	next, cmd := m.handleKey(runeKey('b'), t0.Add(time.Second))
	if cmd == nil {
		t.Fatal("back should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}

	sessions, err := store.RecentSessions("breakout", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Ticks != 8 {
		t.Errorf("sessions = %+v, expected one with 8 ticks", sessions)
	}
}

func TestEmptySessionNotRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	m.handleKey(runeKey('q'), time.Unix(1000, 0))

	sessions, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestDrawInspectorTruncates(t *testing.T) {
	screen := core.NewScreen(80, 10)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat("x", 100)
	}

	drawInspector(screen, lines)

	// 8 panel rows minus the border leave 6 content rows
	if got := screen.Row(7); !strings.Contains(got, "... 15 more") {
		t.Errorf("last row = %q, expected a summary of hidden lines", got)
	}
	if got := screen.Row(2); strings.Count(got, "x") != 60 {
		t.Errorf("row 2 has %d x, expected lines cut to 60", strings.Count(got, "x"))
	}
}
