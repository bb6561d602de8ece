package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Params holds every tunable of a session. All values are in world units
// (or world units per second) with y pointing up.
type Params struct {
	ArenaWidth    float64
	ArenaHeight   float64
	WallThickness float64

	PaddleSize  core.Vec2
	PaddleGap   float64 // Paddle center height above the bottom wall center line
	PaddleSpeed float64

	BallStart     core.Vec2
	BallSize      core.Vec2
	BallSpeed     float64
	BallDirection core.Vec2 // Normalized at spawn

	Bricks BrickParams
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		ArenaWidth:    900,
		ArenaHeight:   600,
		WallThickness: 20,

		PaddleSize:  core.V(120, 20),
		PaddleGap:   60,
		PaddleSpeed: 500,

		BallStart:     core.V(0, -50),
		BallSize:      core.V(30, 30),
		BallSpeed:     400,
		BallDirection: core.V(0.5, -0.5),

		Bricks: BrickParams{
			Size:         core.V(100, 30),
			Gap:          5,
			GapToPaddle:  270,
			GapToCeiling: 20,
			GapToSides:   20,
		},
	}
}

// Draw layers.
const (
	zBackground = 0.0
	zBall       = 1.0
)

// Entity colors.
const (
	wallColor   = core.ColorGray
	paddleColor = core.ColorBlue
	ballColor   = core.ColorBrightWhite
)

// World is one running session: the arena, its entities and a tick counter.
type World struct {
	Arena  Arena
	Store  *Store
	Grid   Grid
	Layout Layout

	params      Params
	ticks       int
	bricksTotal int
}

// NewWorld spawns walls, paddle, ball and bricks, in that order.
// Spawn order is collision test order, so it is part of the behaviour.
func NewWorld(p Params, layout Layout) *World {
	arena := NewArena(p.ArenaWidth, p.ArenaHeight, p.WallThickness)
	w := &World{
		Arena:  arena,
		Store:  NewStore(),
		Layout: layout,
		params: p,
	}

	for _, loc := range wallSpawnOrder {
		w.Store.Spawn(Entity{
			Kind:  KindWall,
			Box:   arena.Wall(loc),
			Z:     zBackground,
			Color: wallColor,
			Wall:  loc,
		})
	}

	paddleY := arena.Bottom() + p.PaddleGap
	w.Store.Spawn(Entity{
		Kind:  KindPaddle,
		Box:   core.NewBox(core.V(0, paddleY), p.PaddleSize),
		Z:     zBackground,
		Color: paddleColor,
	})

	w.Store.Spawn(Entity{
		Kind:      KindBall,
		Box:       core.NewBox(p.BallStart, p.BallSize),
		Z:         zBall,
		Color:     ballColor,
		Velocity:  p.BallDirection.Normalize().Scale(p.BallSpeed),
		Kinematic: true,
	})

	w.Grid = NewGrid(arena, paddleY, p.Bricks)
	for _, c := range w.Grid.Cells() {
		if !layout.Keeps(c, w.Grid.Rows, w.Grid.Cols) {
			continue
		}
		w.Store.Spawn(Entity{
			Kind:  KindBrick,
			Box:   w.Grid.Box(c),
			Z:     zBackground,
			Color: BrickColor(c.Row),
			Cell:  c,
		})
		w.bricksTotal++
	}

	return w
}

// Tick advances the world by dt seconds with the given paddle direction.
func (w *World) Tick(dt, dir float64) Report {
	r := Tick(w.Store, w.Arena, w.params.PaddleSpeed, dt, dir)
	w.ticks++
	return r
}

// Params returns the parameters the world was built with.
func (w *World) Params() Params {
	return w.params
}

// Ticks returns the number of ticks simulated.
func (w *World) Ticks() int {
	return w.ticks
}

// BricksTotal returns the number of bricks spawned at start.
func (w *World) BricksTotal() int {
	return w.bricksTotal
}

// BricksRemaining returns the number of bricks still in play.
func (w *World) BricksRemaining() int {
	return w.Store.Count(KindBrick)
}

// Cleared reports whether a layout with bricks has been fully destroyed.
func (w *World) Cleared() bool {
	return w.bricksTotal > 0 && w.BricksRemaining() == 0
}
