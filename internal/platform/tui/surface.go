package tui

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/vovakirdan/pacmen/internal/core"
	"github.com/vovakirdan/pacmen/internal/sprite"
)

const (
	// mouthHalfAngle is half the opening of the mouth wedge, in radians.
	mouthHalfAngle = 0.6
	// defaultSpriteSize is used for handles that were never resized.
	defaultSpriteSize = 40.0
)

// Surface rasterises sprite frames into a core.Screen.
// Sprite positions are the centre of the Pac-Man in world units.
type Surface struct {
	cellW   float64
	cellH   float64
	handles []*cellHandle
}

// NewSurface creates a surface for the given world units per cell.
func NewSurface(cellW, cellH float64) *Surface {
	return &Surface{cellW: cellW, cellH: cellH}
}

// Attach implements sprite.Surface.
func (s *Surface) Attach(uuid.UUID) sprite.Handle {
	h := &cellHandle{surface: s, size: defaultSpriteSize}
	s.handles = append(s.handles, h)
	return h
}

// Len returns the number of attached handles.
func (s *Surface) Len() int { return len(s.handles) }

// Render draws every attached sprite in attach order.
func (s *Surface) Render(dst *core.Screen) {
	for _, h := range s.handles {
		if h.drawn {
			s.draw(dst, h)
		}
	}
}

func (s *Surface) detach(h *cellHandle) {
	if i := slices.Index(s.handles, h); i >= 0 {
		s.handles = slices.Delete(s.handles, i, i+1)
	}
}

// draw fills the cells whose centres fall inside the sprite's disc, leaving
// the mouth wedge empty on the open-mouth image.
func (s *Surface) draw(dst *core.Screen, h *cellHandle) {
	f := h.frame
	r := h.size / 2

	if r < s.cellH {
		col := int(math.Floor(f.Position.X / s.cellW))
		row := int(math.Floor(f.Position.Y / s.cellH))
		dst.SetColored(col, row, glyph(f), core.ColorBrightYellow)
		return
	}

	minCol := int(math.Floor((f.Position.X - r) / s.cellW))
	maxCol := int(math.Ceil((f.Position.X + r) / s.cellW))
	minRow := int(math.Floor((f.Position.Y - r) / s.cellH))
	maxRow := int(math.Ceil((f.Position.Y + r) / s.cellH))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dx := (float64(col)+0.5)*s.cellW - f.Position.X
			dy := (float64(row)+0.5)*s.cellH - f.Position.Y
			if dx*dx+dy*dy > r*r {
				continue
			}
			if f.Image == 1 && math.Abs(angleDiff(math.Atan2(dy, dx), f.Rotation)) < mouthHalfAngle {
				continue
			}
			dst.SetColored(col, row, '█', core.ColorBrightYellow)
		}
	}
}

// glyph picks a single-cell Pac-Man facing the nearest axis direction.
func glyph(f sprite.Frame) rune {
	if f.Image != 1 {
		return '●'
	}
	a := f.Rotation
	switch {
	case a > -math.Pi/4 && a <= math.Pi/4:
		return 'ᗧ' // right
	case a > math.Pi/4 && a <= 3*math.Pi/4:
		return 'ᗣ' // down, y grows downward
	case a > -3*math.Pi/4 && a <= -math.Pi/4:
		return 'ᗢ' // up
	default:
		return 'ᗤ' // left
	}
}

// angleDiff returns a-b wrapped to (-pi, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// cellHandle is the rendering resource of one sprite.
type cellHandle struct {
	surface *Surface
	frame   sprite.Frame
	size    float64
	drawn   bool
}

func (h *cellHandle) Draw(f sprite.Frame) {
	h.frame = f
	h.drawn = true
}

func (h *cellHandle) Resize(size float64) {
	h.size = size
}

func (h *cellHandle) Release() {
	h.surface.detach(h)
}
