package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}

	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig:\n got %+v\nwant %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("paddle:\n  speed: 650\nbricks:\n  layout: diamond\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}

	if cfg.Paddle.Speed != 650 {
		t.Errorf("paddle speed = %g, want 650", cfg.Paddle.Speed)
	}
	if cfg.Bricks.Layout != "diamond" {
		t.Errorf("layout = %q, want diamond", cfg.Bricks.Layout)
	}
	// Keys not in the file keep their defaults
	if cfg.Arena.Width != 900 {
		t.Errorf("arena width = %g, want default 900", cfg.Arena.Width)
	}
}

func TestLoadBreakoutCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[ball]\nspeed = 350.0\n\n[host]\nkey_hold_ms = 80\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}

	if cfg.Ball.Speed != 350 {
		t.Errorf("ball speed = %g, want 350", cfg.Ball.Speed)
	}
	if cfg.Host.KeyHoldMS != 80 {
		t.Errorf("key hold = %d, want 80", cfg.Host.KeyHoldMS)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("paddle width = %g, want default 120", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(broken); err == nil {
		t.Error("expected error for unparsable config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero arena width", func(c *BreakoutConfig) { c.Arena.Width = 0 }, false},
		{"negative paddle speed", func(c *BreakoutConfig) { c.Paddle.Speed = -1 }, false},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = 900 }, false},
		{"zero direction", func(c *BreakoutConfig) { c.Ball.DirectionX, c.Ball.DirectionY = 0, 0 }, false},
		{"horizontal direction", func(c *BreakoutConfig) { c.Ball.DirectionY = 0 }, true},
		{"negative gap", func(c *BreakoutConfig) { c.Bricks.Gap = -5 }, false},
		{"zero frame clamp", func(c *BreakoutConfig) { c.Host.MaxFrameDT = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want := DefaultBreakoutConfig()
	want.Bricks.Layout = "checker"

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, format, want); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			var got BreakoutConfig
			if err := Decode(buf.Bytes(), format, &got); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != want {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"breakout.yaml": FormatYAML,
		"breakout.yml":  FormatYAML,
		"breakout.TOML": FormatTOML,
		"breakout":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("empty preset: got %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}

	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if cfg.Ball.Speed <= DefaultBreakoutConfig().Ball.Speed {
		t.Errorf("hard ball speed %g should exceed default", cfg.Ball.Speed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	ApplyBreakoutPreset(&cfg, DifficultyNormal)
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("normal preset should restore defaults, got %+v", cfg)
	}

	cfg.Ball.Speed = 123
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Ball.Speed != 123 {
		t.Errorf("fixed preset changed ball speed to %g", cfg.Ball.Speed)
	}
}

func TestPresetOutgrowsCustomArena(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: 170\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("narrow arena should load with the default paddle: %v", err)
	}

	ApplyBreakoutPreset(&cfg, DifficultyEasy)
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("easy paddle in a 170 wide arena: got %v, want ErrInvalid", err)
	}
}
