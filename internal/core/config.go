package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick            int  // Ticks simulated since the last reset
	BricksTotal     int  // Bricks spawned at session start
	BricksRemaining int  // Bricks still in play
	Cleared         bool // Every brick has been destroyed
	Paused          bool
	Layout          string // Brick layout ID
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Removed lists the ids of entities despawned during this tick.
	Removed []uint32

	// Reset is set when the step restarted the session.
	Reset bool
}
