package breakout

// Integrate advances every kinematic entity by velocity*dt.
// Velocity is constant between reflections, so there is no acceleration
// term. A non-positive dt moves nothing.
func Integrate(s *Store, dt float64) {
	if dt <= 0 {
		return
	}
	s.Each(func(e *Entity) {
		if !e.Kinematic {
			return
		}
		e.Box.Center.X += e.Velocity.X * dt
		e.Box.Center.Y += e.Velocity.Y * dt
	})
}
