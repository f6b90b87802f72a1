package game

import "github.com/tomz197/emacsteroids/internal/physics"

// ClickResult tells the frontend what a click did.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickFired
	ClickShare // The frontend should open the share link
)

func (r ClickResult) String() string {
	switch r {
	case ClickFired:
		return "fired"
	case ClickShare:
		return "share"
	default:
		return "ignored"
	}
}

const (
	shareButtonWidth   = 200
	shareButtonHeight  = 50
	shareButtonOffsetY = 100
)

// ShareButton is the game-over share button, placed below the screen center.
func ShareButton(width, height float64) physics.Rect {
	return physics.Rect{
		X: width/2 - shareButtonWidth/2,
		Y: height/2 + shareButtonOffsetY,
		W: shareButtonWidth,
		H: shareButtonHeight,
	}
}

// Click handles the primary action at point. While playing every click fires
// a bullet from the ship; after the game ends only the share button reacts.
func Click(s *State, point physics.Vector) ClickResult {
	switch s.Phase {
	case PhasePlaying:
		s.fire()
		return ClickFired
	case PhaseGameOver:
		if ShareButton(s.Screen.Width, s.Screen.Height).Contains(point) {
			return ClickShare
		}
	}
	return ClickIgnored
}
