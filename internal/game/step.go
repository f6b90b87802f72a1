package game

import (
	"slices"

	"github.com/tomz197/emacsteroids/internal/object"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Input is what a frontend observed since the previous frame.
type Input struct {
	Pointer physics.Vector // Pointer position in world coordinates
}

// Events summarizes what happened during one Step.
type Events struct {
	Destroyed int  // Asteroids shot down
	ShipHits  int  // Asteroids that struck the ship
	GameOver  bool // The game ended during this frame
}

// Step advances a playing game by one frame. It is a no-op once the game is over.
func Step(s *State, in Input) Events {
	var ev Events
	if s.Phase != PhasePlaying {
		return ev
	}
	s.Frame++

	ctx := object.UpdateContext{Pointer: in.Pointer, Screen: s.Screen}

	for _, a := range s.Asteroids {
		a.Update(ctx)
	}

	s.Ship.Update(ctx)

	for i := len(s.Bullets) - 1; i >= 0; i-- {
		if remove, _ := s.Bullets[i].Update(ctx); remove {
			s.Bullets = slices.Delete(s.Bullets, i, i+1)
		}
	}

	ev.Destroyed = resolveBulletHits(s)
	if resolveShipHit(s) {
		ev.ShipHits = 1
	}

	if s.Lives <= 0 {
		s.Lives = 0
		s.Phase = PhaseGameOver
		ev.GameOver = true
		return ev
	}

	if len(s.Asteroids) < s.Tuning.AsteroidCap {
		s.spawnAsteroid()
	}

	return ev
}
