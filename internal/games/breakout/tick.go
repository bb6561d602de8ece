package breakout

// Hit is one collision found during a tick.
type Hit struct {
	Collider EntityID
	Kind     Kind
	Side     Side
	Flipped  bool // Velocity component was reflected
}

// Report describes what happened during a single tick.
type Report struct {
	Hits    []Hit
	Removed []EntityID // Bricks despawned this tick, in removal order
}

// Tick advances the store by dt seconds. The stages run strictly in order:
// paddle movement, integration, then detection and resolution against every
// collider in spawn order, with bricks despawned right after the hit that
// resolved them.
//
// dir is the paddle direction (-1, 0 or 1). A dt of zero or less moves
// nothing and reports no collisions.
// Tick panics when the store does not hold exactly one paddle and one ball.
func Tick(s *Store, arena Arena, paddleSpeed, dt, dir float64) Report {
	s.mustValidate()

	if dt <= 0 {
		return Report{}
	}

	MovePaddle(s, arena, paddleSpeed, dir, dt)
	Integrate(s, dt)

	var report Report
	for _, id := range s.Colliders() {
		other, ok := s.Get(id)
		if !ok {
			continue
		}

		// Refetched every iteration: a despawn shifts the backing slice
		ball := s.Ball()

		side, hit := Collide(ball.Box, other.Box)
		if !hit {
			continue
		}

		kind := other.Kind
		v, flipped := Resolve(ball.Velocity, side)
		ball.Velocity = v

		report.Hits = append(report.Hits, Hit{
			Collider: id,
			Kind:     kind,
			Side:     side,
			Flipped:  flipped,
		})

		if kind == KindBrick && s.Despawn(id) {
			report.Removed = append(report.Removed, id)
		}
	}

	return report
}
