package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestVectorArithmetic(t *testing.T) {
	v := Vector{3, 4}
	if got := v.Len(); !near(got, 5) {
		t.Fatalf("Len = %f, want 5", got)
	}
	if got := v.Add(Vector{1, -1}); got != (Vector{4, 3}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := v.Sub(Vector{1, 1}); got != (Vector{2, 3}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := v.Scale(2); got != (Vector{6, 8}) {
		t.Fatalf("Scale = %+v", got)
	}
	n := v.Normalize()
	if !near(n.Len(), 1) || !near(n.X, 0.6) || !near(n.Y, 0.8) {
		t.Fatalf("Normalize = %+v", n)
	}
	if got := (Vector{}).Normalize(); got != (Vector{}) {
		t.Fatalf("Normalize(zero) = %+v", got)
	}
}

func TestHeadingAndFromAngle(t *testing.T) {
	if got := (Vector{0, 1}).Heading(); !near(got, math.Pi/2) {
		t.Fatalf("Heading = %f", got)
	}
	v := FromAngle(math.Pi)
	if !near(v.X, -1) || !near(v.Y, 0) {
		t.Fatalf("FromAngle(pi) = %+v", v)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{-5, 10}
	if a.Distance(b) != b.Distance(a) {
		t.Fatalf("distance not symmetric")
	}
	if !near(a.Distance(b), 10) {
		t.Fatalf("Distance = %f, want 10", a.Distance(b))
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(Vector{0, 0}, 32, Vector{10, 0}, 32) {
		t.Fatalf("expected overlap at distance 10")
	}
	if CirclesOverlap(Vector{0, 0}, 32, Vector{64, 0}, 32) {
		t.Fatalf("touching circles must not overlap")
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 300, Y: 400, W: 200, H: 50}
	cases := []struct {
		p    Vector
		want bool
	}{
		{Vector{300, 400}, true},
		{Vector{500, 450}, true},
		{Vector{400, 425}, true},
		{Vector{299.9, 425}, false},
		{Vector{400, 450.1}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
	if r.Center() != (Vector{400, 425}) {
		t.Fatalf("Center = %+v", r.Center())
	}
}
