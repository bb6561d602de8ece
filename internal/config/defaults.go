package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: BreakoutArena{
			Width:         900,
			Height:        600,
			WallThickness: 20,
		},
		Paddle: BreakoutPaddle{
			Width:  120,
			Height: 20,
			Gap:    60,
			Speed:  500,
		},
		Ball: BreakoutBall{
			StartX:     0,
			StartY:     -50,
			Size:       30,
			Speed:      400,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Bricks: BreakoutBricks{
			Width:        100,
			Height:       30,
			Gap:          5,
			GapToPaddle:  270,
			GapToCeiling: 20,
			GapToSides:   20,
			Layout:       "classic",
		},
		Host: HostConfig{
			MaxFrameDT: 0.05, // 20 fps floor
			KeyHoldMS:  120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
