package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pacmen.yaml
var defaultPacmenYAML []byte

// DefaultPacmenConfig returns the default configuration.
func DefaultPacmenConfig() PacmenConfig {
	return PacmenConfig{
		TickInterval: 50 * time.Millisecond,
		InitialCount: 3,
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Sprite: SpriteConfig{
			Margin:      50,
			SpeedFactor: 50,
			Scale:       0,
		},
		Spawn: SpawnConfig{
			Behavior: "normal",
			Speed:    0.2,
			Size:     40,
		},
		Controls: ControlsConfig{
			SpeedStep: 0.05,
			MinSpeed:  0,
			MaxSpeed:  2,
			SizeStep:  10,
			MinSize:   10,
			MaxSize:   200,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPacmenYAML
}
