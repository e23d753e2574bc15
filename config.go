package gesturepad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries window, indicator, and gesture tuning values. Zero
// fields fall back to the defaults from DefaultConfig, so partial YAML
// files work.
type Config struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Indicators int     `yaml:"indicators"`
	MinScale   float64 `yaml:"min_scale"`
	MaxScale   float64 `yaml:"max_scale"`
	DeadZone   float64 `yaml:"dead_zone"`
	TapFrames  int     `yaml:"tap_frames"`
	ShowFPS    bool    `yaml:"show_fps"`
	ClearColor Color   `yaml:"clear_color"`
}

// DefaultConfig returns the built-in configuration: a dark 800x600 window,
// five indicators, and the standard scale bounds.
func DefaultConfig() Config {
	return Config{
		Title:      "gesturepad",
		Width:      800,
		Height:     600,
		Indicators: DefaultIndicatorCount,
		MinScale:   DefaultMinScale,
		MaxScale:   DefaultMaxScale,
		DeadZone:   defaultDeadZone,
		TapFrames:  defaultTapFrames,
		ClearColor: Color{R: 0.08, G: 0.09, B: 0.12, A: 1},
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gesturepad: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("gesturepad: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML config data, filling unset fields with
// defaults.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults replaces zero fields with their DefaultConfig values.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Indicators <= 0 {
		c.Indicators = def.Indicators
	}
	if c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale <= 0 {
		c.MaxScale = def.MaxScale
	}
	if c.DeadZone <= 0 {
		c.DeadZone = def.DeadZone
	}
	if c.TapFrames <= 0 {
		c.TapFrames = def.TapFrames
	}
	if c.ClearColor.A <= 0 {
		c.ClearColor = def.ClearColor
	}
}
