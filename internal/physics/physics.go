// Package physics provides vectors, distances and overlap tests.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(a Vector, r1 float64, b Vector, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < minDist*minDist
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the middle of r.
func (r Rect) Center() Vector {
	return Vector{r.X + r.W/2, r.Y + r.H/2}
}
