package object

import (
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Ship is the player's turret: it never moves, it only turns toward the pointer.
type Ship struct {
	body
	Direction physics.Vector // Unit vector the ship faces
}

// NewShip creates a ship at position facing up.
func NewShip(position physics.Vector, size float64) *Ship {
	return &Ship{
		body:      body{Position: position, Size: size},
		Direction: physics.Vector{X: 0, Y: -1},
	}
}

// Update turns the ship toward the pointer.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	s.Direction = physics.FromAngle(ctx.Pointer.Sub(s.Position).Heading())
	return false, nil
}

// Draw renders the ship rotated so its nose points along Direction.
func (s *Ship) Draw(ctx DrawContext) error {
	ctx.Surface.DrawImage(draw.TextureShip, s.Position.X, s.Position.Y, s.Size, s.Size, spriteAngle(s.Direction))
	return nil
}
