package draw

import "math"

// Sprite outlines in texture space: a unit square centered on the origin with
// the sprite's "up" pointing toward -Y.
var (
	shipShape = []Point{
		{0, -0.5},
		{0.4, 0.5},
		{0, 0.25},
		{-0.4, 0.5},
	}
	bulletShape = []Point{
		{0, -0.5},
		{0.35, 0},
		{0, 0.5},
		{-0.35, 0},
	}
	asteroidShape = ringShape([]float64{0.5, 0.42, 0.47, 0.38, 0.5, 0.44, 0.36, 0.48, 0.41, 0.46})
)

// ringShape builds a closed outline from per-vertex radii spaced evenly around the center.
func ringShape(radii []float64) []Point {
	pts := make([]Point, len(radii))
	for i, r := range radii {
		a := float64(i) * 2 * math.Pi / float64(len(radii))
		pts[i] = Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
	}
	return pts
}

// DrawSprite draws shape scaled to w x h, rotated by angle and centered at (x, y).
func (c *Canvas) DrawSprite(shape []Point, filled bool, x, y, w, h, angle float64) {
	sin, cos := math.Sincos(angle)
	points := c.BorrowPoints(len(shape))
	for i, p := range shape {
		lx := p.X * w
		ly := p.Y * h
		points[i] = Point{
			X: x + lx*cos - ly*sin,
			Y: y + lx*sin + ly*cos,
		}
	}
	c.DrawPolygon(points, filled)
}
