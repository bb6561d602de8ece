package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Side is the face of a collider the ball was found against.
// Left means the ball is on the collider's left, moving right into it.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideInside // Ball is contained in (or spans) the collider on both axes
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests the ball box against a collider box.
// It returns false when the boxes do not overlap; touching edges are not
// an overlap. On overlap it classifies the collider face the ball is
// most likely to have just crossed.
func Collide(ball, other core.Box) (Side, bool) {
	if !ball.Overlaps(other) {
		return SideInside, false
	}

	aMin, aMax := ball.Min(), ball.Max()
	bMin, bMax := other.Min(), other.Max()

	xSide, xDepth, xHit := crossing(aMin.X, aMax.X, bMin.X, bMax.X, SideLeft, SideRight)
	ySide, yDepth, yHit := crossing(aMin.Y, aMax.Y, bMin.Y, bMax.Y, SideBottom, SideTop)

	switch {
	case xHit && yHit:
		// Compare penetration relative to the collider's size on each axis
		if normalize(yDepth, other.Half.Y) < normalize(xDepth, other.Half.X) {
			return ySide, true
		}
		return xSide, true
	case xHit:
		return xSide, true
	case yHit:
		return ySide, true
	default:
		return SideInside, true
	}
}

// crossing classifies one axis of an overlapping pair. The ball crosses the
// low edge when it starts below the collider and ends inside it, and the
// high edge symmetrically. Containment or spanning yields no side.
func crossing(aMin, aMax, bMin, bMax float64, low, high Side) (Side, float64, bool) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return low, aMax - bMin, true
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return high, bMax - aMin, true
	default:
		return SideInside, 0, false
	}
}

func normalize(depth, half float64) float64 {
	if half <= 0 {
		return depth
	}
	return depth / half
}

// Resolve reflects v off the given side. A component is negated only when
// it points into the surface, so a ball already moving away is left alone.
// The magnitude of v never changes.
func Resolve(v core.Vec2, side Side) (core.Vec2, bool) {
	switch side {
	case SideLeft:
		if v.X > 0 {
			v.X = -v.X
			return v, true
		}
	case SideRight:
		if v.X < 0 {
			v.X = -v.X
			return v, true
		}
	case SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
			return v, true
		}
	case SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
			return v, true
		}
	}
	return v, false
}
