package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. World coordinates are in logical
// pixels; speeds are per frame and lifetimes are in frames.
type Tuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	InitialLives     int `yaml:"initial_lives"`
	ScorePerAsteroid int `yaml:"score_per_asteroid"`

	InitialAsteroids int     `yaml:"initial_asteroids"`
	AsteroidCap      int     `yaml:"asteroid_cap"`
	AsteroidSpeed    float64 `yaml:"asteroid_speed"`
	AsteroidSize     float64 `yaml:"asteroid_size"`

	BulletSpeed float64 `yaml:"bullet_speed"`
	BulletLife  int     `yaml:"bullet_life"`
	BulletSize  float64 `yaml:"bullet_size"`

	ShipSize float64 `yaml:"ship_size"`

	Tagline string `yaml:"tagline"`
}

// DefaultTuning returns the stock game.
func DefaultTuning() Tuning {
	return Tuning{
		Width:            800,
		Height:           600,
		InitialLives:     3,
		ScorePerAsteroid: 10,
		InitialAsteroids: 5,
		AsteroidCap:      10,
		AsteroidSpeed:    10,
		AsteroidSize:     64,
		BulletSpeed:      42,
		BulletLife:       60,
		BulletSize:       16,
		ShipSize:         64,
		Tagline:          "#teamEmacs for life",
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
// An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports the first out-of-range field.
func (t Tuning) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: world size %.0fx%.0f", ErrInvalidTuning, t.Width, t.Height)
	case t.InitialLives < 1:
		return fmt.Errorf("%w: initial_lives %d", ErrInvalidTuning, t.InitialLives)
	case t.ScorePerAsteroid < 0:
		return fmt.Errorf("%w: score_per_asteroid %d", ErrInvalidTuning, t.ScorePerAsteroid)
	case t.InitialAsteroids < 0 || t.AsteroidCap < 0:
		return fmt.Errorf("%w: asteroid counts %d/%d", ErrInvalidTuning, t.InitialAsteroids, t.AsteroidCap)
	case t.InitialAsteroids > t.AsteroidCap:
		return fmt.Errorf("%w: initial_asteroids %d above asteroid_cap %d", ErrInvalidTuning, t.InitialAsteroids, t.AsteroidCap)
	case t.AsteroidSpeed < 0 || t.AsteroidSpeed >= min(t.Width, t.Height):
		return fmt.Errorf("%w: asteroid_speed %.1f", ErrInvalidTuning, t.AsteroidSpeed)
	case t.BulletSpeed < 0:
		return fmt.Errorf("%w: bullet_speed %.1f", ErrInvalidTuning, t.BulletSpeed)
	case t.AsteroidSize <= 0 || t.BulletSize <= 0 || t.ShipSize <= 0:
		return fmt.Errorf("%w: sprite sizes must be positive", ErrInvalidTuning)
	case t.BulletLife < 1:
		return fmt.Errorf("%w: bullet_life %d", ErrInvalidTuning, t.BulletLife)
	}
	return nil
}
