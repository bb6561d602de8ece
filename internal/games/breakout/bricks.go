package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickParams describes brick size and spacing.
type BrickParams struct {
	Size         core.Vec2 // Full brick width and height
	Gap          float64   // Space between neighbouring bricks
	GapToPaddle  float64   // Space between the paddle center line and the lowest row
	GapToCeiling float64   // Space between the top row and the top wall center line
	GapToSides   float64   // Space between the outer columns and the side wall center lines
}

// Grid is the brick layout for an arena. It is a pure function of the
// arena, the paddle height and the brick parameters, so the same inputs
// always produce the same bricks.
type Grid struct {
	Rows, Cols int
	Size       core.Vec2
	Gap        float64

	origin core.Vec2 // Center of the bottom-left brick
}

// NewGrid fits as many whole bricks as possible between the side walls and
// between the area above the paddle and the ceiling, centered horizontally.
func NewGrid(arena Arena, paddleY float64, p BrickParams) Grid {
	totalWidth := arena.Right() - arena.Left() - 2*p.GapToSides
	bottomEdge := paddleY + p.GapToPaddle
	totalHeight := arena.Top() - bottomEdge - p.GapToCeiling

	cols := fitCount(totalWidth, p.Size.X+p.Gap)
	rows := fitCount(totalHeight, p.Size.Y+p.Gap)

	center := (arena.Left() + arena.Right()) / 2
	verticalGaps := float64(cols - 1)
	leftEdge := center - float64(cols)/2*p.Size.X - verticalGaps/2*p.Gap

	return Grid{
		Rows:   rows,
		Cols:   cols,
		Size:   p.Size,
		Gap:    p.Gap,
		origin: core.V(leftEdge+p.Size.X/2, bottomEdge+p.Size.Y/2),
	}
}

func fitCount(span, step float64) int {
	if span <= 0 || step <= 0 {
		return 0
	}
	return int(math.Floor(span / step))
}

// Center returns the world position of a cell's brick.
func (g Grid) Center(c Cell) core.Vec2 {
	return core.V(
		g.origin.X+float64(c.Col)*(g.Size.X+g.Gap),
		g.origin.Y+float64(g.Rows-1-c.Row)*(g.Size.Y+g.Gap),
	)
}

// Box returns the bounding box of a cell's brick.
func (g Grid) Box(c Cell) core.Box {
	return core.NewBox(g.Center(c), g.Size)
}

// Cells returns every cell in row-major order, top row first.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Rows*g.Cols)
	for row := range g.Rows {
		for col := range g.Cols {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// brickColors cycles per row, top row first.
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// BrickColor returns the display color for a brick row.
func BrickColor(row int) core.Color {
	if row < 0 {
		row = -row
	}
	return brickColors[row%len(brickColors)]
}
