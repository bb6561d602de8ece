package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// MovePaddle moves the paddle horizontally by dir*speed*dt and clamps it
// between the side walls. dir is expected to be -1, 0 or 1.
func MovePaddle(s *Store, arena Arena, speed, dir, dt float64) {
	p := s.Paddle()

	left, right := arena.PaddleBounds(p.Box.Half.X)
	x := p.Box.Center.X + dir*speed*dt
	p.Box.Center.X = core.ClampF(x, left, right)

	p.Velocity = core.V(dir*speed, 0)
}

// AutopilotDirection steers the paddle toward the ball's x position.
// The dead zone keeps the paddle from jittering once it is underneath.
func AutopilotDirection(s *Store) float64 {
	p := s.Paddle()
	b := s.Ball()

	deadZone := p.Box.Half.X / 4
	diff := b.Box.Center.X - p.Box.Center.X
	switch {
	case diff > deadZone:
		return 1
	case diff < -deadZone:
		return -1
	default:
		return 0
	}
}
