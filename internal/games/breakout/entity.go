package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// EntityID identifies an entity within a Store. IDs are never reused.
type EntityID uint32

// Kind is the closed set of entity variants the simulation knows about.
type Kind uint8

const (
	KindWall Kind = iota
	KindPaddle
	KindBall
	KindBrick

	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// IsCollider reports whether entities of this kind are tested against the ball.
func (k Kind) IsCollider() bool {
	return k == KindWall || k == KindPaddle || k == KindBrick
}

// Cell is a brick position in the grid. Row 0 is the top row.
type Cell struct {
	Row, Col int
}

// Entity is a single record in the Store.
//
// Wall is only meaningful for KindWall, Cell only for KindBrick.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Box   core.Box
	Z     float64 // Draw layer; has no effect on collision
	Color core.Color

	// Velocity in world units per second. Only Kinematic entities are
	// advanced by the integrator; the paddle records its derived velocity
	// here without being integrated.
	Velocity  core.Vec2
	Kinematic bool

	Wall WallLocation
	Cell Cell
}
