// Package sprite implements the bouncing Pac-Man sprites and the manager
// that spawns, ticks and removes them.
package sprite

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/pacmen/internal/core"
)

const (
	// DefaultMargin is the half-size used for boundary reflection.
	DefaultMargin = 50.0
	// DefaultSpeedFactor bounds the random initial velocity per axis.
	DefaultSpeedFactor = 50.0
	// frameStep is how far the walk-cycle counter advances per tick.
	frameStep = 0.5
)

// PacMan is a single bouncing sprite.
type PacMan struct {
	id uuid.UUID

	Position core.Vector
	Velocity core.Vector
	Speed    float64 // Multiplier applied to Velocity each tick

	behavior Behavior
	frame    float64 // Walk-cycle counter, +0.5 per tick
	size     float64
	margin   float64

	handle Handle
	last   Frame
}

// spawnParams describes how to place a new sprite.
type spawnParams struct {
	start       *core.Vector // nil picks a random position
	scale       float64      // Random position bound, 0 uses the viewport
	speedFactor float64
	margin      float64
	viewport    core.Vector
}

// newPacMan creates a sprite and attaches its rendering handle.
func newPacMan(p spawnParams, rng *rand.Rand, surface Surface) *PacMan {
	s := &PacMan{
		id:       uuid.New(),
		Speed:    1,
		behavior: BehaviorNormal,
		margin:   p.margin,
	}

	if p.start != nil {
		s.Position = *p.start
	} else {
		boundX, boundY := p.viewport.X, p.viewport.Y
		if p.scale > 0 {
			boundX, boundY = p.scale, p.scale
		}
		s.Position = core.NewVector(rng.Float64()*boundX, rng.Float64()*boundY)
	}
	s.Velocity = core.NewVector(rng.Float64()*p.speedFactor, rng.Float64()*p.speedFactor)

	s.handle = surface.Attach(s.id)
	s.report(1)
	return s
}

// ID returns the sprite's identity.
func (s *PacMan) ID() uuid.UUID { return s.id }

// Behavior returns the current movement mode.
func (s *PacMan) Behavior() Behavior { return s.behavior }

// SetBehavior switches the movement mode. It takes effect on the next tick.
func (s *PacMan) SetBehavior(b Behavior) { s.behavior = b }

// Size returns the visual size in world units, 0 when never set.
func (s *PacMan) Size() float64 { return s.size }

// SetSize changes the visual size and forwards it to the rendering handle.
func (s *PacMan) SetSize(size float64) {
	s.size = size
	s.handle.Resize(size)
}

// Frame returns the last frame reported to the rendering handle.
func (s *PacMan) Frame() Frame { return s.last }

// Start was the per-sprite timer entry point. Sprites are driven by the
// manager's tick instead and this always fails.
//
// Deprecated: use Manager.Tick. Start will never be implemented.
func (s *PacMan) Start() error {
	return fmt.Errorf("pacman %s: start: %w", s.id, ErrNotImplemented)
}

// FollowPointer would steer the sprite toward target. Pointer following is
// declared but undefined, so this always fails.
func (s *PacMan) FollowPointer(target core.Vector) error {
	return fmt.Errorf("pacman %s: follow pointer to %s: %w", s.id, target, ErrNotImplemented)
}

// Update advances the sprite by one tick inside the given viewport.
func (s *PacMan) Update(viewport core.Vector) error {
	switch s.behavior {
	case BehaviorNormal:
		return s.updateNormal(viewport)
	case BehaviorFollowPointer:
		// No movement is defined for this mode.
		return nil
	default:
		return fmt.Errorf("pacman %s: unknown behavior %s", s.id, s.behavior)
	}
}

func (s *PacMan) updateNormal(viewport core.Vector) error {
	step, err := s.Velocity.Mul(core.Scalar(s.Speed))
	if err != nil {
		return fmt.Errorf("pacman %s: %w", s.id, err)
	}
	s.Position.Increment(step)

	s.Velocity.X = bounce(s.Position.X, s.Velocity.X, s.margin, viewport.X)
	s.Velocity.Y = bounce(s.Position.Y, s.Velocity.Y, s.margin, viewport.Y)

	image := int(math.Floor(math.Mod(s.frame, 2))) + 1
	s.frame += frameStep
	s.report(image)
	return nil
}

// bounce inverts v when the sprite is moving toward an edge it has reached.
func bounce(p, v, margin, extent float64) float64 {
	if (v < 0 && p-margin <= 0) || (v > 0 && p+margin >= extent) {
		return -v
	}
	return v
}

func (s *PacMan) report(image int) {
	s.last = Frame{
		Position: s.Position,
		Rotation: math.Atan2(s.Velocity.Y, s.Velocity.X),
		Image:    image,
	}
	s.handle.Draw(s.last)
}

// release frees the rendering handle.
func (s *PacMan) release() {
	s.handle.Release()
	s.handle = nopHandle{}
}
