package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// EntityView is the read-only presentation record of one entity.
type EntityView struct {
	ID     EntityID
	Kind   Kind
	Center core.Vec2
	Half   core.Vec2
	Z      float64
	Color  core.Color
	Cell   Cell // Bricks only
}

// Snapshot contains every live entity for rendering and determinism checks.
// Entities are listed in spawn order.
type Snapshot struct {
	Tick     uint64
	Layout   string
	Entities []EntityView

	BallVelocity core.Vec2
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	views := make([]EntityView, 0, w.Store.Len())
	var velocity core.Vec2

	w.Store.Each(func(e *Entity) {
		views = append(views, EntityView{
			ID:     e.ID,
			Kind:   e.Kind,
			Center: e.Box.Center,
			Half:   e.Box.Half,
			Z:      e.Z,
			Color:  e.Color,
			Cell:   e.Cell,
		})
		if e.Kind == KindBall {
			velocity = e.Velocity
		}
	})

	return Snapshot{
		Tick:         uint64(w.ticks), //#nosec G115 -- tick count is always positive
		Layout:       w.Layout.ID,
		Entities:     views,
		BallVelocity: velocity,
	}
}

// Count returns the number of entities of a kind in the snapshot.
func (snap *Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Find returns the first entity of a kind in the snapshot.
func (snap *Snapshot) Find(k Kind) (EntityView, bool) {
	for _, e := range snap.Entities {
		if e.Kind == k {
			return e, true
		}
	}
	return EntityView{}, false
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so two runs only match when
// they are bit-for-bit identical.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Layout {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = h*31 + math.Float64bits(snap.BallVelocity.X)
	h = h*31 + math.Float64bits(snap.BallVelocity.Y)
	h = h*31 + uint64(len(snap.Entities))

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.Center.X)
		h = h*31 + math.Float64bits(e.Center.Y)
		h = h*31 + math.Float64bits(e.Half.X)
		h = h*31 + math.Float64bits(e.Half.Y)
	}

	return h
}
