package core

import "time"

// RuntimeConfig contains the values the platform layer hands to the toy.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	CellW        float64       // World units per character column
	CellH        float64       // World units per character row
	TickInterval time.Duration // Period of the redraw tick
	Seed         int64         // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		CellW:        10,
		CellH:        20,
		TickInterval: 50 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Viewport returns the screen extent in world units.
func (c RuntimeConfig) Viewport() Vector {
	return Vector{X: float64(c.ScreenW) * c.CellW, Y: float64(c.ScreenH) * c.CellH}
}

// ToWorld converts a character cell to the world position of its top-left corner.
func (c RuntimeConfig) ToWorld(col, row int) Vector {
	return Vector{X: float64(col) * c.CellW, Y: float64(row) * c.CellH}
}
