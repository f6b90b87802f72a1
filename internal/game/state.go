// Package game holds the rules of the shooter: a single-owner State advanced
// one frame at a time by Step, pointer clicks routed through Click and
// rendering through Draw.
package game

import (
	"math/rand/v2"

	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/object"
)

// Phase is the top-level state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is everything one game owns. It is not safe for concurrent use; each
// frontend keeps it on a single goroutine.
type State struct {
	Phase Phase
	Score int
	Lives int
	Frame uint64

	Ship      *object.Ship
	Bullets   []*object.Bullet
	Asteroids []*object.Asteroid

	Screen object.Screen
	Tuning config.Tuning

	rng *rand.Rand
}

// New starts a game with a full life pool, the ship at the center facing up
// and the initial asteroids at random positions.
func New(tuning config.Tuning, rng *rand.Rand) *State {
	screen := object.Screen{Width: tuning.Width, Height: tuning.Height}
	s := &State{
		Phase:     PhasePlaying,
		Lives:     tuning.InitialLives,
		Ship:      object.NewShip(screen.Center(), tuning.ShipSize),
		Bullets:   make([]*object.Bullet, 0, 16),
		Asteroids: make([]*object.Asteroid, 0, tuning.AsteroidCap+1),
		Screen:    screen,
		Tuning:    tuning,
		rng:       rng,
	}
	for range tuning.InitialAsteroids {
		s.spawnAsteroid()
	}
	return s
}

// NewRand returns a random source seeded from the runtime's entropy.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Over reports whether the game has ended.
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}

// Objects returns every live entity in draw order: asteroids, then the
// ship, then bullets.
func (s *State) Objects() []object.Object {
	objs := make([]object.Object, 0, len(s.Asteroids)+1+len(s.Bullets))
	for _, a := range s.Asteroids {
		objs = append(objs, a)
	}
	objs = append(objs, s.Ship)
	for _, b := range s.Bullets {
		objs = append(objs, b)
	}
	return objs
}

func (s *State) spawnAsteroid() {
	t := s.Tuning
	s.Asteroids = append(s.Asteroids, object.NewAsteroid(
		object.RandomPosition(s.rng, s.Screen),
		object.RandomDirection(s.rng),
		t.AsteroidSpeed,
		t.AsteroidSize,
	))
}

func (s *State) fire() {
	t := s.Tuning
	s.Bullets = append(s.Bullets, object.NewBullet(
		s.Ship.Position,
		s.Ship.Direction,
		t.BulletSpeed,
		t.BulletLife,
		t.BulletSize,
	))
}
