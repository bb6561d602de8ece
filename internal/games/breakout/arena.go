package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// WallLocation identifies one of the four arena walls.
type WallLocation int

const (
	WallTop WallLocation = iota
	WallBottom
	WallLeft
	WallRight
)

// String returns the wall name.
func (w WallLocation) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "unknown"
	}
}

// wallSpawnOrder is the order walls enter the store, and therefore the
// order they are tested against the ball.
var wallSpawnOrder = []WallLocation{WallRight, WallLeft, WallTop, WallBottom}

// Arena is the static play field: four wall rectangles centered on the
// field edges. It never changes after construction.
type Arena struct {
	Width     float64 // Distance between the left and right wall center lines
	Height    float64 // Distance between the bottom and top wall center lines
	Thickness float64 // Wall thickness
}

// NewArena creates an arena centered on the origin.
func NewArena(width, height, thickness float64) Arena {
	return Arena{Width: width, Height: height, Thickness: thickness}
}

// Left returns the x coordinate of the left wall center line.
func (a Arena) Left() float64 { return -a.Width / 2 }

// Right returns the x coordinate of the right wall center line.
func (a Arena) Right() float64 { return a.Width / 2 }

// Bottom returns the y coordinate of the bottom wall center line.
func (a Arena) Bottom() float64 { return -a.Height / 2 }

// Top returns the y coordinate of the top wall center line.
func (a Arena) Top() float64 { return a.Height / 2 }

// Wall returns the bounding box of the given wall.
// Horizontal walls span the full width plus one thickness so the corners
// are covered; vertical walls do the same along the height.
func (a Arena) Wall(loc WallLocation) core.Box {
	t := a.Thickness
	switch loc {
	case WallTop:
		return core.NewBox(core.V(0, a.Top()), core.V(a.Width+t, t))
	case WallBottom:
		return core.NewBox(core.V(0, a.Bottom()), core.V(a.Width+t, t))
	case WallLeft:
		return core.NewBox(core.V(a.Left(), 0), core.V(t, a.Height+t))
	default:
		return core.NewBox(core.V(a.Right(), 0), core.V(t, a.Height+t))
	}
}

// Bounds returns the outer extent of the arena including wall thickness.
func (a Arena) Bounds() core.Box {
	return core.NewBox(core.V(0, 0), core.V(a.Width+a.Thickness, a.Height+a.Thickness))
}

// PaddleBounds returns the range the paddle center may occupy so that a
// paddle of the given half width never enters a side wall.
func (a Arena) PaddleBounds(paddleHalfWidth float64) (left, right float64) {
	halfWall := a.Thickness / 2
	left = a.Left() + halfWall + paddleHalfWidth
	right = a.Right() - halfWall - paddleHalfWidth
	return left, right
}
