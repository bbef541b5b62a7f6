package sprite

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacmen/internal/core"
)

// PointerEvent is a click on the viewport, in world units.
type PointerEvent struct {
	Position core.Vector
}

// ManagerConfig holds the values a Manager is created with.
type ManagerConfig struct {
	// Surface creates the rendering handle for each sprite.
	// Defaults to NopSurface.
	Surface Surface

	// Viewport is the extent sprites bounce inside, in world units.
	Viewport core.Vector

	// Margin is the half-size used for boundary reflection.
	// Zero means DefaultMargin.
	Margin float64

	// SpeedFactor bounds the random initial velocity per axis.
	// Zero means DefaultSpeedFactor.
	SpeedFactor float64

	// Scale bounds random start positions. Zero means the viewport.
	Scale float64

	// Defaults are applied when a spawn carries no options of its own.
	Defaults Options

	// Seed for the random source. Zero seeds from the clock.
	Seed int64

	// Logger receives spawn and removal events. Defaults to a discarding logger.
	Logger *log.Logger
}

// Manager owns the live sprites. Insertion order is spawn order and is the
// order Tick updates them in.
//
// A Manager is not safe for concurrent use; it is driven from a single
// event loop.
type Manager struct {
	cfg     ManagerConfig
	sprites []*PacMan
	rng     *rand.Rand
	logger  *log.Logger
}

// NewManager creates an empty manager.
func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Surface == nil {
		cfg.Surface = NopSurface{}
	}
	if cfg.Margin == 0 {
		cfg.Margin = DefaultMargin
	}
	if cfg.SpeedFactor == 0 {
		cfg.SpeedFactor = DefaultSpeedFactor
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Manager{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}
}

// Viewport returns the current bounce extent.
func (m *Manager) Viewport() core.Vector { return m.cfg.Viewport }

// SetViewport changes the bounce extent, e.g. after a terminal resize.
// Live sprites keep their state.
func (m *Manager) SetViewport(v core.Vector) {
	m.cfg.Viewport = v
}

// Defaults returns the options applied to spawns that carry none.
func (m *Manager) Defaults() Options { return m.cfg.Defaults }

// SetDefaults replaces the options applied to spawns that carry none.
func (m *Manager) SetDefaults(o Options) { m.cfg.Defaults = o }

// Spawn creates a sprite at origin, or at the event position when origin is
// nil. With nil opts the manager defaults apply; otherwise only the fields
// set in opts are applied.
func (m *Manager) Spawn(ev PointerEvent, origin *core.Vector, opts *Options) *PacMan {
	start := ev.Position
	if origin != nil {
		start = *origin
	}
	return m.spawn(&start, opts)
}

// SpawnRandom creates a sprite at a random position inside the scale bound.
func (m *Manager) SpawnRandom(opts *Options) *PacMan {
	return m.spawn(nil, opts)
}

func (m *Manager) spawn(start *core.Vector, opts *Options) *PacMan {
	s := newPacMan(spawnParams{
		start:       start,
		scale:       m.cfg.Scale,
		speedFactor: m.cfg.SpeedFactor,
		margin:      m.cfg.Margin,
		viewport:    m.cfg.Viewport,
	}, m.rng, m.cfg.Surface)

	applied := m.cfg.Defaults
	if opts != nil {
		applied = *opts
	}
	if b, ok := applied.Behavior(); ok {
		s.SetBehavior(b)
	}
	if speed, ok := applied.Speed(); ok {
		s.Speed = speed
	}
	if size, ok := applied.Size(); ok {
		s.SetSize(size)
	}

	m.sprites = append(m.sprites, s)
	m.logger.Debug("spawned",
		"id", s.ID(),
		"position", s.Position,
		"velocity", s.Velocity,
		"options", applied,
	)
	return s
}

// Tick updates every live sprite once, in registry order. Errors from
// individual sprites do not stop the others.
func (m *Manager) Tick() error {
	var errs []error
	for _, s := range m.sprites {
		if err := s.Update(m.cfg.Viewport); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Remove drops s from the registry and releases its rendering handle.
// It reports whether s was live; a second call returns false.
func (m *Manager) Remove(s *PacMan) bool {
	i := slices.Index(m.sprites, s)
	if i < 0 {
		return false
	}
	m.sprites = slices.Delete(m.sprites, i, i+1)
	s.release()
	m.logger.Debug("removed", "id", s.ID(), "remaining", len(m.sprites))
	return true
}

// RemoveNewest removes the most recently spawned sprite.
func (m *Manager) RemoveNewest() bool {
	if len(m.sprites) == 0 {
		return false
	}
	return m.Remove(m.sprites[len(m.sprites)-1])
}

// Clear removes every sprite and returns how many there were.
func (m *Manager) Clear() int {
	n := len(m.sprites)
	for len(m.sprites) > 0 {
		m.Remove(m.sprites[0])
	}
	return n
}

// Sprites returns the live sprites in registry order.
func (m *Manager) Sprites() []*PacMan {
	return slices.Clone(m.sprites)
}

// Len returns the number of live sprites.
func (m *Manager) Len() int { return len(m.sprites) }

// Run ticks every interval until ctx is done. It returns ctx.Err().
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := m.Tick(); err != nil {
				m.logger.Error("tick failed", "error", err)
			}
		}
	}
}
