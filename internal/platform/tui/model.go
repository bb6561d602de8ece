package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures the game host.
type Options struct {
	Store  *storage.Store // Optional; sessions are not recorded without it
	Host   config.HostConfig
	Logger *log.Logger // Optional; defaults to discarding everything
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	host       config.HostConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame // One-shot actions for the next tick
	gameState  core.GameState
	lastTick   time.Time
	started    time.Time
	inspecting bool
	quitting   bool
	cleared    bool // Whether the clear of the current session was logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	host := opts.Host
	if host.MaxFrameDT <= 0 {
		host.MaxFrameDT = config.DefaultBreakoutConfig().Host.MaxFrameDT
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		host:       host,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(time.Duration(host.KeyHoldMS) * time.Millisecond),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.recordSession(m.game.State(), now)
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionInspect:
		m.inspecting = !m.inspecting
	case IsHeld(action):
		m.held.Press(action, now)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// frameDelta returns the measured time since the previous tick, clamped so
// a stalled terminal cannot launch the ball through a wall.
func (m Model) frameDelta(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 0
	}
	dt := now.Sub(m.lastTick).Seconds()
	return core.ClampF(dt, 0, m.host.MaxFrameDT)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)
	m.lastTick = now

	frame := m.inputFrame.Clone()
	m.held.Apply(&frame, now)

	// Run game simulation
	before := m.game.State()
	result := m.game.Step(dt, frame)
	m.gameState = result.State

	if result.Reset {
		m.recordSession(before, now)
		m.started = now
		m.cleared = false
		m.held.Release()
	}

	for _, id := range result.Removed {
		m.logger.Debug("brick removed", "id", id, "tick", result.State.Tick, "remaining", result.State.BricksRemaining)
	}
	if result.State.Cleared && !m.cleared {
		m.logger.Info("layout cleared", "layout", result.State.Layout, "ticks", result.State.Tick, "elapsed", now.Sub(m.started).Round(time.Millisecond))
		m.cleared = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordSession stores a session that ended at end in history.
func (m Model) recordSession(state core.GameState, end time.Time) {
	if state.Tick == 0 {
		return
	}

	sess := storage.Session{
		GameID:          m.game.ID(),
		Layout:          state.Layout,
		Ticks:           state.Tick,
		Duration:        end.Sub(m.started),
		BricksTotal:     state.BricksTotal,
		BricksDestroyed: state.BricksTotal - state.BricksRemaining,
	}
	m.logger.Info("session ended", "game", sess.GameID, "ticks", sess.Ticks, "destroyed", sess.BricksDestroyed, "total", sess.BricksTotal)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSession(sess); err != nil {
		m.logger.Warn("cannot record session", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.render()

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the game and, when enabled, the inspector into the screen.
func (m Model) render() {
	m.game.Render(m.screen)

	if !m.inspecting {
		return
	}
	if insp, ok := m.game.(registry.Inspector); ok {
		drawInspector(m.screen, insp.Inspect())
	}
}

// drawInspector draws entity lines in a panel on the left of the screen.
// Lines that do not fit are summarized in the last row.
func drawInspector(dst *core.Screen, lines []string) {
	w := core.Min(64, dst.Width()-2)
	h := dst.Height() - 2
	if w < 10 || h < 4 {
		return
	}

	panel := core.NewRect(1, 1, w, h)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel)
	dst.DrawText(3, 1, " inspector ")

	rows := h - 2
	if len(lines) > rows {
		hidden := len(lines) - rows + 1
		lines = append(lines[:rows-1:rows-1], fmt.Sprintf("... %d more", hidden))
	}
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > w-4 {
			runes = runes[:w-4]
		}
		dst.DrawText(3, 2+i, string(runes))
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
