package draw

import (
	"image/color"

	"github.com/tomz197/emacsteroids/internal/physics"
)

// Texture names one of the game's four images.
type Texture int

const (
	TextureBackground Texture = iota
	TextureShip
	TextureAsteroid
	TextureBullet
)

func (t Texture) String() string {
	switch t {
	case TextureBackground:
		return "background"
	case TextureShip:
		return "ship"
	case TextureAsteroid:
		return "asteroid"
	case TextureBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Textures lists every texture a frontend must provide before the first frame.
var Textures = []Texture{TextureBackground, TextureShip, TextureAsteroid, TextureBullet}

// Align is the horizontal anchor of a text run. Left-aligned text is anchored
// at its top-left corner, centered text at its middle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how a text run is placed and sized (in logical pixels).
type TextStyle struct {
	Align Align
	Size  float64
}

// Surface is the 2D drawing target the game renders into. Coordinates are
// world (logical) coordinates.
type Surface interface {
	// DrawBackground clears the frame to the background texture.
	DrawBackground()
	// DrawImage draws tex centered at (x, y), scaled to w x h and rotated by
	// angle radians (clockwise on screen).
	DrawImage(tex Texture, x, y, w, h, angle float64)
	// DrawRect fills r with c.
	DrawRect(r physics.Rect, c color.RGBA)
	// DrawText draws a single line of text.
	DrawText(text string, x, y float64, style TextStyle)
}
