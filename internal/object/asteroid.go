package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Asteroid drifts in a straight line and wraps around the screen edges.
type Asteroid struct {
	body
	Velocity physics.Vector
}

// NewAsteroid creates an asteroid at position moving along direction.
func NewAsteroid(position, direction physics.Vector, speed, size float64) *Asteroid {
	return &Asteroid{
		body:     body{Position: position, Size: size},
		Velocity: direction.Scale(speed),
	}
}

// RandomDirection returns a unit vector with a uniformly distributed heading.
func RandomDirection(rng *rand.Rand) physics.Vector {
	return physics.FromAngle(rng.Float64() * 2 * math.Pi)
}

// RandomPosition returns a uniformly distributed point on screen.
func RandomPosition(rng *rand.Rand, screen Screen) physics.Vector {
	return physics.Vector{X: rng.Float64() * screen.Width, Y: rng.Float64() * screen.Height}
}

// Update moves the asteroid and wraps it around the screen.
func (a *Asteroid) Update(ctx UpdateContext) (bool, error) {
	a.Position = a.Position.Add(a.Velocity)
	a.WrapAround(ctx.Screen)
	return false, nil
}

// WrapAround teleports an asteroid that fully left the screen to the
// opposite edge, keeping any overshoot. Positions stay within
// [-Size/2, Width+Size/2) on each axis. Velocity is preserved.
func (a *Asteroid) WrapAround(screen Screen) {
	a.Position.X = wrap(a.Position.X, screen.Width, a.Size/2)
	a.Position.Y = wrap(a.Position.Y, screen.Height, a.Size/2)
}

func wrap(v, extent, half float64) float64 {
	if v >= -half && v < extent+half {
		return v
	}
	span := extent + 2*half
	r := math.Mod(v+half, span)
	if r < 0 {
		r += span
	}
	return r - half
}

// Draw renders the asteroid. Asteroids are not rotated.
func (a *Asteroid) Draw(ctx DrawContext) error {
	ctx.Surface.DrawImage(draw.TextureAsteroid, a.Position.X, a.Position.Y, a.Size, a.Size, 0)
	return nil
}
