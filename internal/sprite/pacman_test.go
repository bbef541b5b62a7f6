package sprite

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/pacmen/internal/core"
)

// recordingSurface keeps every handle it hands out.
type recordingSurface struct {
	handles map[uuid.UUID]*recordingHandle
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{handles: make(map[uuid.UUID]*recordingHandle)}
}

func (r *recordingSurface) Attach(id uuid.UUID) Handle {
	h := &recordingHandle{}
	r.handles[id] = h
	return h
}

type recordingHandle struct {
	frames   []Frame
	size     float64
	released int
}

func (h *recordingHandle) Draw(f Frame)        { h.frames = append(h.frames, f) }
func (h *recordingHandle) Resize(size float64) { h.size = size }
func (h *recordingHandle) Release()            { h.released++ }

// placed spawns a sprite with a fixed position and velocity.
func placed(m *Manager, pos, vel core.Vector) *PacMan {
	s := m.Spawn(PointerEvent{Position: pos}, nil, &Options{})
	s.Velocity = vel
	return s
}

func TestBoundaryReflection(t *testing.T) {
	viewport := core.NewVector(800, 600)

	tests := []struct {
		name     string
		pos, vel core.Vector
		expected core.Vector
	}{
		{"right edge flips x", core.NewVector(751, 300), core.NewVector(10, 0), core.NewVector(-10, 0)},
		{"middle keeps x", core.NewVector(400, 300), core.NewVector(10, 0), core.NewVector(10, 0)},
		{"left edge flips x", core.NewVector(55, 300), core.NewVector(-10, 0), core.NewVector(10, 0)},
		{"left edge moving away keeps x", core.NewVector(20, 300), core.NewVector(10, 0), core.NewVector(10, 0)},
		{"bottom edge flips y", core.NewVector(400, 545), core.NewVector(0, 5), core.NewVector(0, -5)},
		{"top edge flips y", core.NewVector(400, 52), core.NewVector(0, -3), core.NewVector(0, 3)},
		{"corner flips both", core.NewVector(790, 590), core.NewVector(4, 4), core.NewVector(-4, -4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager(ManagerConfig{Viewport: viewport, Seed: 1})
			s := placed(m, tc.pos, tc.vel)

			if err := m.Tick(); err != nil {
				t.Fatalf("Tick() error = %v", err)
			}
			if !s.Velocity.Equal(tc.expected) {
				t.Errorf("velocity = %s, expected %s", s.Velocity, tc.expected)
			}
		})
	}
}

func TestUpdateMovesBySpeedScaledVelocity(t *testing.T) {
	m := NewManager(ManagerConfig{Viewport: core.NewVector(800, 600), Seed: 1})
	s := placed(m, core.NewVector(100, 200), core.NewVector(4, -2))
	s.Speed = 2.5

	if err := s.Update(m.Viewport()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !s.Position.Equal(core.NewVector(110, 195)) {
		t.Errorf("position = %s, expected (110, 195)", s.Position)
	}
}

func TestUpdateReportsRotation(t *testing.T) {
	surface := newRecordingSurface()
	m := NewManager(ManagerConfig{Surface: surface, Viewport: core.NewVector(800, 600), Seed: 1})
	s := placed(m, core.NewVector(400, 300), core.NewVector(0, 5))

	if err := m.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	frames := surface.handles[s.ID()].frames
	last := frames[len(frames)-1]
	if math.Abs(last.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("rotation = %v, expected pi/2", last.Rotation)
	}
	if !last.Position.Equal(core.NewVector(400, 305)) {
		t.Errorf("reported position = %s, expected (400, 305)", last.Position)
	}
	if last != s.Frame() {
		t.Errorf("Frame() = %+v, expected last reported %+v", s.Frame(), last)
	}
}

func TestAnimationFrameSequence(t *testing.T) {
	m := NewManager(ManagerConfig{Viewport: core.NewVector(10000, 10000), Seed: 1})
	s := placed(m, core.NewVector(5000, 5000), core.NewVector(1, 1))

	expected := []int{1, 1, 2, 2, 1, 1, 2, 2, 1, 1}
	for i, want := range expected {
		if err := m.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if got := s.Frame().Image; got != want {
			t.Errorf("tick %d: image = %d, expected %d", i, got, want)
		}
	}
}

func TestFollowPointerTickIsNoOp(t *testing.T) {
	surface := newRecordingSurface()
	m := NewManager(ManagerConfig{Surface: surface, Viewport: core.NewVector(800, 600), Seed: 1})
	opts := Options{}.WithBehavior(BehaviorFollowPointer)
	s := m.Spawn(PointerEvent{Position: core.NewVector(100, 100)}, nil, &opts)
	s.Velocity = core.NewVector(10, 10)
	drawn := len(surface.handles[s.ID()].frames)

	for i := 0; i < 5; i++ {
		if err := m.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if !s.Position.Equal(core.NewVector(100, 100)) {
		t.Errorf("position = %s, expected unchanged", s.Position)
	}
	if got := len(surface.handles[s.ID()].frames); got != drawn {
		t.Errorf("frames drawn = %d, expected %d", got, drawn)
	}

	if err := s.FollowPointer(core.NewVector(0, 0)); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("FollowPointer() error = %v, expected ErrNotImplemented", err)
	}

	s.SetBehavior(BehaviorNormal)
	if err := m.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if s.Position.Equal(core.NewVector(100, 100)) {
		t.Error("switching back to normal should resume movement")
	}
}

func TestStartAlwaysFails(t *testing.T) {
	m := NewManager(ManagerConfig{Viewport: core.NewVector(800, 600), Seed: 1})
	s := m.SpawnRandom(nil)

	for i := 0; i < 3; i++ {
		//nolint:staticcheck // Exercising the deprecated entry point.
		if err := s.Start(); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("Start() error = %v, expected ErrNotImplemented", err)
		}
	}
}

func TestUnknownBehaviorFailsUpdate(t *testing.T) {
	m := NewManager(ManagerConfig{Viewport: core.NewVector(800, 600), Seed: 1})
	s := m.SpawnRandom(nil)
	s.SetBehavior(Behavior(42))

	if err := m.Tick(); err == nil {
		t.Error("Tick() should report an unknown behavior")
	}
}
