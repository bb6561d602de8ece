package breakout

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	WallChar   = '░'
	PaddleChar = '='
	BallChar   = '●'
)

// BrickGlyphs alternate by column so neighbouring bricks stay distinguishable
// once projected onto terminal cells.
var BrickGlyphs = []rune{'█', '▓'}

// Mode selects who drives the paddle.
type Mode int

const (
	ModePlayer  Mode = iota // Paddle follows the left/right actions
	ModeAttract             // Paddle follows the ball
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// layoutID overrides the configured brick layout when set
var layoutID string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLayout overrides the brick layout for new sessions.
// An empty ID falls back to the configured layout.
func SetLayout(id string) {
	layoutID = id
}

// Game wraps a World for the platform host: it loads configuration, maps
// input to a paddle direction and draws the world onto a terminal screen.
type Game struct {
	mode Mode

	world   *World
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	paused  bool

	// loadErr is the last config or layout problem; the session still runs
	// on defaults.
	loadErr error

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance driven by the player.
func New() *Game {
	return &Game{mode: ModePlayer}
}

// NewAttract creates a Breakout instance whose paddle plays itself.
func NewAttract() *Game {
	return &Game{mode: ModeAttract}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeAttract {
		return "breakout_attract"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeAttract {
		return "Breakout (Attract)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil

	// Load game config
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		// The preset can outgrow a custom arena.
		g.loadErr = err
		cfg = config.DefaultBreakoutConfig()
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	id := cfg.Bricks.Layout
	if layoutID != "" {
		id = layoutID
	}
	layout, err := LayoutByID(id)
	if err != nil {
		g.loadErr = err
		layout, _ = LayoutByID(DefaultLayoutID)
	}

	g.world = NewWorld(ParamsFromConfig(cfg), layout)
	g.paused = false

	g.Resize(runtime)
}

// Resize adapts to a new screen size. The world is independent of the
// screen, so the session carries on.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Check screen size
	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// ParamsFromConfig converts a loaded config into simulation parameters.
func ParamsFromConfig(cfg config.BreakoutConfig) Params {
	return Params{
		ArenaWidth:    cfg.Arena.Width,
		ArenaHeight:   cfg.Arena.Height,
		WallThickness: cfg.Arena.WallThickness,

		PaddleSize:  core.V(cfg.Paddle.Width, cfg.Paddle.Height),
		PaddleGap:   cfg.Paddle.Gap,
		PaddleSpeed: cfg.Paddle.Speed,

		BallStart:     core.V(cfg.Ball.StartX, cfg.Ball.StartY),
		BallSize:      core.V(cfg.Ball.Size, cfg.Ball.Size),
		BallSpeed:     cfg.Ball.Speed,
		BallDirection: core.V(cfg.Ball.DirectionX, cfg.Ball.DirectionY),

		Bricks: BrickParams{
			Size:         core.V(cfg.Bricks.Width, cfg.Bricks.Height),
			Gap:          cfg.Bricks.Gap,
			GapToPaddle:  cfg.Bricks.GapToPaddle,
			GapToCeiling: cfg.Bricks.GapToCeiling,
			GapToSides:   cfg.Bricks.GapToSides,
		},
	}
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	// Restart works even while the screen is too small to play
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Reset: true}
	}

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var dir float64
	if g.mode == ModeAttract {
		dir = AutopilotDirection(g.world.Store)
	} else {
		dir = in.Direction()
	}

	report := g.world.Tick(dt, dir)

	// The demo loops forever
	if g.mode == ModeAttract && g.world.Cleared() {
		g.world = NewWorld(g.world.Params(), g.world.Layout)
	}

	removed := make([]uint32, len(report.Removed))
	for i, id := range report.Removed {
		removed[i] = uint32(id)
	}
	return core.StepResult{State: g.State(), Removed: removed}
}

// Config returns the configuration the session was started with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// LoadError returns the config or layout problem found by the last Reset,
// or nil. The session falls back to defaults when it is set.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Snapshot returns the current world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Tick:            g.world.Ticks(),
		BricksTotal:     g.world.BricksTotal(),
		BricksRemaining: g.world.BricksRemaining(),
		Cleared:         g.world.Cleared(),
		Paused:          g.paused,
		Layout:          g.world.Layout.ID,
	}
}

// Inspect returns one line per live entity in spawn order.
func (g *Game) Inspect() []string {
	snap := g.world.Snapshot()
	lines := make([]string, 0, len(snap.Entities)+1)
	lines = append(lines, fmt.Sprintf("tick %d  ball v=(%.1f, %.1f) |v|=%.1f",
		snap.Tick, snap.BallVelocity.X, snap.BallVelocity.Y, snap.BallVelocity.Len()))

	for _, e := range snap.Entities {
		line := fmt.Sprintf("#%-3d %-6s (%7.1f, %7.1f) %gx%g z=%g %s",
			e.ID, e.Kind, e.Center.X, e.Center.Y, e.Half.X*2, e.Half.Y*2, e.Z, e.Color)
		if e.Kind == KindBrick {
			line += fmt.Sprintf(" r%d c%d", e.Cell.Row, e.Cell.Col)
		}
		lines = append(lines, line)
	}
	return lines
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	proj := newProjection(g.world.Arena.Bounds(), dst.Width(), dst.Height())

	// Lower layers first; spawn order breaks ties
	snap := g.world.Snapshot()
	sort.SliceStable(snap.Entities, func(i, j int) bool {
		return snap.Entities[i].Z < snap.Entities[j].Z
	})
	for _, e := range snap.Entities {
		g.renderEntity(dst, proj, e)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// projection maps world coordinates onto screen cells below the HUD row.
type projection struct {
	minX, maxY float64
	sx, sy     float64
	top        int
}

func newProjection(bounds core.Box, w, h int) projection {
	const hudRows = 1
	size := bounds.Size()
	return projection{
		minX: bounds.Min().X,
		maxY: bounds.Max().Y,
		sx:   float64(w) / size.X,
		sy:   float64(h-hudRows) / size.Y,
		top:  hudRows,
	}
}

// rect returns the cells covered by a world box, at least one cell each way.
func (p projection) rect(center, half core.Vec2) core.Rect {
	x0 := int(math.Floor((center.X - half.X - p.minX) * p.sx))
	x1 := int(math.Ceil((center.X+half.X-p.minX)*p.sx)) - 1
	y0 := int(math.Floor((p.maxY - (center.Y + half.Y)) * p.sy))
	y1 := int(math.Ceil((p.maxY-(center.Y-half.Y))*p.sy)) - 1

	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return core.NewRect(x0, y0+p.top, x1-x0+1, y1-y0+1)
}

// point returns the cell under a world position.
func (p projection) point(pos core.Vec2) (int, int) {
	x := int(math.Floor((pos.X - p.minX) * p.sx))
	y := int(math.Floor((p.maxY-pos.Y)*p.sy)) + p.top
	return x, y
}

func (g *Game) renderEntity(dst *core.Screen, proj projection, e EntityView) {
	switch e.Kind {
	case KindBall:
		x, y := proj.point(e.Center)
		dst.SetColored(x, y, BallChar, e.Color)
	case KindPaddle:
		dst.FillRect(proj.rect(e.Center, e.Half), PaddleChar, e.Color)
	case KindBrick:
		glyph := BrickGlyphs[e.Cell.Col%len(BrickGlyphs)]
		dst.FillRect(proj.rect(e.Center, e.Half), glyph, e.Color)
	default:
		dst.FillRect(proj.rect(e.Center, e.Half), WallChar, e.Color)
	}
}

// renderHUD draws bricks remaining, layout and tick count.
func (g *Game) renderHUD(dst *core.Screen) {
	bricksText := fmt.Sprintf("Bricks: %d/%d", g.world.BricksRemaining(), g.world.BricksTotal())
	dst.DrawText(1, 0, bricksText)

	center := g.world.Layout.Name
	if g.mode == ModeAttract {
		center += " - DEMO"
	}
	dst.DrawTextCentered(0, center)

	tickText := fmt.Sprintf("Tick: %d", g.world.Ticks())
	dst.DrawText(dst.Width()-len(tickText)-1, 0, tickText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.world.Cleared():
		subtitle := fmt.Sprintf("%d ticks  |  Press R to restart", g.world.Ticks())
		g.drawCenteredBox(dst, "CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_attract", func() registry.Game {
		return NewAttract()
	})
}
