// Package config provides YAML and TOML configuration loading and
// difficulty presets for the breakout simulation and its terminal host.
package config

// BreakoutConfig contains all configuration for a Breakout session.
// Distances are world units, speeds are world units per second.
type BreakoutConfig struct {
	Arena  BreakoutArena  `yaml:"arena" toml:"arena"`
	Paddle BreakoutPaddle `yaml:"paddle" toml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball" toml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks" toml:"bricks"`
	Host   HostConfig     `yaml:"host" toml:"host"`
}

// BreakoutArena defines the wall rectangle.
type BreakoutArena struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	WallThickness float64 `yaml:"wall_thickness" toml:"wall_thickness"`
}

// BreakoutPaddle defines paddle size, height and speed.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Gap    float64 `yaml:"gap" toml:"gap"` // Center height above the bottom wall
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BreakoutBall defines the ball spawn state.
type BreakoutBall struct {
	StartX     float64 `yaml:"start_x" toml:"start_x"`
	StartY     float64 `yaml:"start_y" toml:"start_y"`
	Size       float64 `yaml:"size" toml:"size"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	DirectionX float64 `yaml:"direction_x" toml:"direction_x"`
	DirectionY float64 `yaml:"direction_y" toml:"direction_y"`
}

// BreakoutBricks defines brick size, spacing and the layout mask.
type BreakoutBricks struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Gap          float64 `yaml:"gap" toml:"gap"`
	GapToPaddle  float64 `yaml:"gap_to_paddle" toml:"gap_to_paddle"`
	GapToCeiling float64 `yaml:"gap_to_ceiling" toml:"gap_to_ceiling"`
	GapToSides   float64 `yaml:"gap_to_sides" toml:"gap_to_sides"`
	Layout       string  `yaml:"layout" toml:"layout"`
}

// HostConfig defines how the terminal host feeds the simulation.
type HostConfig struct {
	MaxFrameDT float64 `yaml:"max_frame_dt" toml:"max_frame_dt"` // Upper bound on a measured frame delta, seconds
	KeyHoldMS  int     `yaml:"key_hold_ms" toml:"key_hold_ms"`   // How long a key press counts as held
}
