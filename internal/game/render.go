package game

import (
	"fmt"
	"image/color"

	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/object"
)

// ShareLabel is the text on the share button.
const ShareLabel = "Share Your Score"

var shareButtonColor = color.RGBA{R: 29, G: 161, B: 242, A: 255}

var (
	hudStyle      = draw.TextStyle{Align: draw.AlignLeft, Size: 40}
	titleStyle    = draw.TextStyle{Align: draw.AlignCenter, Size: 48}
	subtitleStyle = draw.TextStyle{Align: draw.AlignCenter, Size: 24}
)

// Draw renders the current frame onto surface.
func Draw(s *State, surface draw.Surface) {
	surface.DrawBackground()

	if s.Phase == PhaseGameOver {
		drawGameOver(s, surface)
		return
	}

	ctx := object.DrawContext{Surface: surface}
	for _, obj := range s.Objects() {
		obj.Draw(ctx)
	}

	surface.DrawText(fmt.Sprintf("Score: %d", s.Score), 10, 10, hudStyle)
	surface.DrawText(fmt.Sprintf("Lives: %d", s.Lives), 10, 50, hudStyle)
}

func drawGameOver(s *State, surface draw.Surface) {
	center := s.Screen.Center()

	surface.DrawText("GAME OVER", center.X, center.Y, titleStyle)
	surface.DrawText(fmt.Sprintf("Score: %d", s.Score), center.X, center.Y+40, subtitleStyle)
	if s.Tuning.Tagline != "" {
		surface.DrawText(s.Tuning.Tagline, center.X, center.Y+80, subtitleStyle)
	}

	button := ShareButton(s.Screen.Width, s.Screen.Height)
	surface.DrawRect(button, shareButtonColor)
	mid := button.Center()
	surface.DrawText(ShareLabel, mid.X, mid.Y, subtitleStyle)
}
