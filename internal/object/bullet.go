package object

import (
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Bullet is a short-lived projectile travelling in a straight line.
type Bullet struct {
	body
	Direction physics.Vector
	Velocity  physics.Vector
	Life      int // Frames remaining before removal
}

// NewBullet creates a bullet at position travelling along direction.
// Both vectors are copied, so later changes to the shooter do not affect it.
func NewBullet(position, direction physics.Vector, speed float64, life int, size float64) *Bullet {
	return &Bullet{
		body:      body{Position: position, Size: size},
		Direction: direction,
		Velocity:  direction.Scale(speed),
		Life:      life,
	}
}

// Update moves the bullet one frame and spends one frame of lifetime.
// It asks for removal once expired or off screen.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	b.Position = b.Position.Add(b.Velocity)
	b.Life--
	return b.Expired() || b.IsOffscreen(ctx.Screen), nil
}

// Expired reports whether the bullet has no lifetime left.
func (b *Bullet) Expired() bool {
	return b.Life <= 0
}

// IsOffscreen reports whether the bullet center left the screen on any axis.
func (b *Bullet) IsOffscreen(screen Screen) bool {
	p := b.Position
	return p.X < 0 || p.X > screen.Width || p.Y < 0 || p.Y > screen.Height
}

// Draw renders the bullet pointing along its direction.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Surface.DrawImage(draw.TextureBullet, b.Position.X, b.Position.Y, b.Size, b.Size, spriteAngle(b.Direction))
	return nil
}
