// Package config provides YAML-based configuration loading for pacmen and
// parsing of loose spawn options.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pacmen/internal/sprite"
)

// PacmenConfig contains all configuration for the toy.
type PacmenConfig struct {
	TickInterval time.Duration  `yaml:"tick_interval"`
	InitialCount int            `yaml:"initial_count"`
	Viewport     ViewportConfig `yaml:"viewport"`
	Sprite       SpriteConfig   `yaml:"sprite"`
	Spawn        SpawnConfig    `yaml:"spawn"`
	Controls     ControlsConfig `yaml:"controls"`
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// SpriteConfig defines the motion constants shared by all sprites.
type SpriteConfig struct {
	Margin      float64 `yaml:"margin"`       // Half-size used for boundary reflection
	SpeedFactor float64 `yaml:"speed_factor"` // Bound of the random initial velocity
	Scale       float64 `yaml:"scale"`        // Bound of random start positions, 0 = viewport
}

// SpawnConfig holds the default options applied to click spawns.
type SpawnConfig struct {
	Behavior string  `yaml:"behavior"`
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
}

// ControlsConfig defines the step and range of the runtime control keys.
type ControlsConfig struct {
	SpeedStep float64 `yaml:"speed_step"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	SizeStep  float64 `yaml:"size_step"`
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
}

// SpawnOptions converts the spawn section into sprite options.
// An unknown behavior is left unset, like any other malformed spawn option.
func (c PacmenConfig) SpawnOptions() sprite.Options {
	opts := sprite.Options{}.WithSpeed(c.Spawn.Speed).WithSize(c.Spawn.Size)
	if b, err := sprite.ParseBehavior(c.Spawn.Behavior); err == nil {
		opts = opts.WithBehavior(b)
	}
	return opts
}

// Validate reports the first value that cannot drive the toy.
func (c PacmenConfig) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	case c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0:
		return fmt.Errorf("viewport cell size must be positive, got %gx%g", c.Viewport.CellWidth, c.Viewport.CellHeight)
	case c.InitialCount < 0:
		return fmt.Errorf("initial_count must not be negative, got %d", c.InitialCount)
	case c.Controls.MinSize > c.Controls.MaxSize:
		return fmt.Errorf("controls: min_size %g above max_size %g", c.Controls.MinSize, c.Controls.MaxSize)
	case c.Controls.MinSpeed > c.Controls.MaxSpeed:
		return fmt.Errorf("controls: min_speed %g above max_speed %g", c.Controls.MinSpeed, c.Controls.MaxSpeed)
	}
	return nil
}
