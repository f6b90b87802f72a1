package physics

import "math"

// Vector is a 2D point or direction in world coordinates (y grows downward).
type Vector struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Len returns the magnitude.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// Distance returns the Euclidean distance to o.
func (v Vector) Distance(o Vector) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Heading returns the angle of v from the +X axis, in radians.
func (v Vector) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector with the given heading.
func FromAngle(angle float64) Vector {
	return Vector{math.Cos(angle), math.Sin(angle)}
}
