package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets are applied once at session start; nothing changes mid-session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Use the loaded config as is
)

// Presets returns every preset in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name yields an empty preset,
// which leaves the config untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 160
		cfg.Paddle.Speed = 600
		cfg.Ball.Speed = 300
	case DifficultyNormal:
		def := DefaultBreakoutConfig()
		cfg.Paddle.Width = def.Paddle.Width
		cfg.Paddle.Speed = def.Paddle.Speed
		cfg.Ball.Speed = def.Ball.Speed
	case DifficultyHard:
		cfg.Paddle.Width = 90
		cfg.Paddle.Speed = 500
		cfg.Ball.Speed = 520
	}
}
