package geom

import (
	"errors"
	"math"
)

// Epsilon is the absolute tolerance used for approximate comparisons.
const Epsilon = 1e-7

// ErrZeroLength is returned by NormalizeChecked for a zero vector.
var ErrZeroLength = errors.New("geom: normalize zero-length vector")

// Vector is an immutable 2D point or displacement.
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y). Inputs are not validated.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Subtract(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) ScaleBy(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Length is the Euclidean norm, computed with math.Hypot to avoid
// overflow and underflow on extreme components.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// A zero vector normalizes to the zero vector.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return v.ScaleBy(1 / l)
}

// NormalizeChecked is Normalize but reports a zero vector as ErrZeroLength.
func (v Vector) NormalizeChecked() (Vector, error) {
	if v.Length() == 0 {
		return Vector{}, ErrZeroLength
	}
	return v.Normalize(), nil
}

// ApproxEqual reports whether both components differ by less than Epsilon.
func (v Vector) ApproxEqual(o Vector) bool {
	return approxEqual(v.X, o.X) && approxEqual(v.Y, o.Y)
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// PathLength sums the lengths of consecutive segments of a polyline.
func PathLength(points []Vector) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Subtract(points[i-1]).Length()
	}
	return total
}
