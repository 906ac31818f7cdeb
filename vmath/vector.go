package vmath

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a zero-length vector is normalized.
var ErrZeroVector = errors.New("vmath: cannot normalize zero vector")

// Vector2 is a 2D point or direction in map units.
type Vector2 struct {
	X, Y float64
}

// V2 creates a new Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Mul returns the component-wise product.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns v / s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// LenSq returns the squared length, no sqrt.
func (v Vector2) LenSq() float64 {
	return v.Dot(v)
}

// Normalize returns the unit vector pointing along v.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, ErrZeroVector
	}
	return v.Div(l), nil
}

// Rotate rotates v by angle radians (counter-clockwise in math axes,
// clockwise on a y-down screen).
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perp returns v rotated a quarter turn, (-y, x).
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Floor returns the integer cell coordinates containing v.
func (v Vector2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Equals reports whether v and o differ by at most eps on each axis.
func (v Vector2) Equals(o Vector2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// AddInPlace accumulates o into v. Used for building movement deltas.
func (v *Vector2) AddInPlace(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

// Fract returns the fractional part of f in [0, 1), also for negative f.
func Fract(f float64) float64 {
	return f - math.Floor(f)
}

// Sign returns -1, 0 or 1.
func Sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
