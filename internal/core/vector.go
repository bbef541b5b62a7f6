package core

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrInvalidOperand is returned when a vector operation receives an operand
// that is neither vector-like nor a scalar.
var ErrInvalidOperand = errors.New("invalid operand")

// Vector is a 2D quantity used for positions and velocities.
// Values are treated as immutable except through Increment and Decrement.
type Vector struct {
	X, Y float64
}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Operand is the right-hand side of Mul, Div, Increment and Decrement.
// It is one of Scalar, PerAxis or Vector; a nil Operand means "absent".
type Operand interface {
	operand()
}

// Scalar applies the same value to both axes.
type Scalar float64

// PerAxis carries explicit deltas for each axis.
type PerAxis struct {
	X, Y float64
}

func (Scalar) operand()  {}
func (PerAxis) operand() {}
func (Vector) operand()  {}

// Add returns a + b.
func (v Vector) Add(b Vector) Vector {
	return Vector{v.X + b.X, v.Y + b.Y}
}

// Sub returns a - b.
func (v Vector) Sub(b Vector) Vector {
	return Vector{v.X - b.X, v.Y - b.Y}
}

// Mul multiplies component-wise for vector-like operands and scales both
// components for a Scalar.
func (v Vector) Mul(b Operand) (Vector, error) {
	switch b := b.(type) {
	case Vector:
		return Vector{v.X * b.X, v.Y * b.Y}, nil
	case PerAxis:
		return Vector{v.X * b.X, v.Y * b.Y}, nil
	case Scalar:
		return Vector{v.X * float64(b), v.Y * float64(b)}, nil
	default:
		return Vector{}, fmt.Errorf("multiply %s by %T: %w", v, b, ErrInvalidOperand)
	}
}

// Div divides component-wise for vector-like operands and by a scalar
// otherwise. Division by zero is not guarded and yields Inf or NaN.
func (v Vector) Div(b Operand) Vector {
	switch b := b.(type) {
	case Vector:
		return Vector{v.X / b.X, v.Y / b.Y}
	case PerAxis:
		return Vector{v.X / b.X, v.Y / b.Y}
	case Scalar:
		return Vector{v.X / float64(b), v.Y / float64(b)}
	default:
		return Vector{math.NaN(), math.NaN()}
	}
}

// Equal reports exact component equality. There is no epsilon.
func (v Vector) Equal(b Vector) bool {
	return v.X == b.X && v.Y == b.Y
}

// Increment adds d to v in place and returns v for chaining.
// A nil operand increments both axes by 1.
func (v *Vector) Increment(d Operand) *Vector {
	dx, dy := deltas(d)
	v.X += dx
	v.Y += dy
	return v
}

// Decrement subtracts d from v in place and returns v for chaining.
// A nil operand decrements both axes by 1.
func (v *Vector) Decrement(d Operand) *Vector {
	dx, dy := deltas(d)
	v.X -= dx
	v.Y -= dy
	return v
}

// deltas resolves an operand into per-axis amounts.
func deltas(d Operand) (float64, float64) {
	switch d := d.(type) {
	case Vector:
		return d.X, d.Y
	case PerAxis:
		return d.X, d.Y
	case Scalar:
		return float64(d), float64(d)
	default:
		return 1, 1
	}
}

// All yields X then Y. Each range over the sequence starts from X again.
func (v Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}

// String formats the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add returns a + b.
func Add(a, b Vector) Vector { return a.Add(b) }

// Subtract returns a - b.
func Subtract(a, b Vector) Vector { return a.Sub(b) }

// Multiply returns a * b, see Vector.Mul.
func Multiply(a Vector, b Operand) (Vector, error) { return a.Mul(b) }

// Divide returns a / b, see Vector.Div.
func Divide(a Vector, b Operand) Vector { return a.Div(b) }

// Equal reports whether a and b are exactly equal.
func Equal(a, b Vector) bool { return a.Equal(b) }
