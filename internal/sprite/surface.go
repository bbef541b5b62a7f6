package sprite

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/pacmen/internal/core"
)

// Frame is what a sprite reports to its rendering handle after each update.
type Frame struct {
	Position core.Vector
	Rotation float64 // Radians, atan2(vy, vx)
	Image    int     // Walk-cycle image, 1 or 2
}

// Surface creates rendering handles. The terminal UI is one implementation;
// NopSurface serves headless runs.
type Surface interface {
	Attach(id uuid.UUID) Handle
}

// Handle is the rendering resource owned by exactly one sprite.
type Handle interface {
	// Draw records the sprite's latest frame.
	Draw(f Frame)
	// Resize sets the visual size in world units.
	Resize(size float64)
	// Release frees the resource. The handle is not used afterwards.
	Release()
}

// NopSurface hands out handles that discard everything.
type NopSurface struct{}

// Attach implements Surface.
func (NopSurface) Attach(uuid.UUID) Handle { return nopHandle{} }

type nopHandle struct{}

func (nopHandle) Draw(Frame)     {}
func (nopHandle) Resize(float64) {}
func (nopHandle) Release()       {}
