// Package object defines the game entities: the ship, its bullets and the asteroids.
package object

import (
	"math"

	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Screen is the visible world area, in logical pixels.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the screen.
func (s Screen) Center() physics.Vector {
	return physics.Vector{X: s.Width / 2, Y: s.Height / 2}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Pointer physics.Vector // Pointer position in world coordinates
	Screen  Screen
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
}

// Collider is anything with a bounding circle.
type Collider interface {
	GetPosition() physics.Vector
	GetRadius() float64
}

// Object is a drawable and updatable game entity.
type Object interface {
	Collider

	// Update advances the object by one frame. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error

	// CollidesWith reports whether the bounding circles of the object and other overlap.
	CollidesWith(other Collider) bool
}

var (
	_ Object = (*Ship)(nil)
	_ Object = (*Bullet)(nil)
	_ Object = (*Asteroid)(nil)
)

// Collides reports whether the bounding circles of a and b overlap. It is symmetric.
func Collides(a, b Collider) bool {
	return physics.CirclesOverlap(a.GetPosition(), a.GetRadius(), b.GetPosition(), b.GetRadius())
}

// spriteAngle is the rotation that turns a texture's "up" toward direction.
func spriteAngle(direction physics.Vector) float64 {
	return direction.Heading() + math.Pi/2
}

// body is the square sprite footprint shared by every entity.
type body struct {
	Position physics.Vector
	Size     float64 // Sprite width and height; the bounding circle has radius Size/2
}

// GetPosition returns the center of the entity.
func (b *body) GetPosition() physics.Vector {
	return b.Position
}

// GetRadius returns the bounding circle radius.
func (b *body) GetRadius() float64 {
	return b.Size / 2
}

// CollidesWith reports whether b overlaps other.
func (b *body) CollidesWith(other Collider) bool {
	return Collides(b, other)
}
