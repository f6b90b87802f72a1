package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadTuningEmptyPathReturnsDefaults(t *testing.T) {
	got, err := LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got != DefaultTuning() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "asteroid_cap: 4\nbullet_life: 30\ntagline: hello\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.AsteroidCap != 4 || got.BulletLife != 30 || got.Tagline != "hello" {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.ShipSize != 64 || got.InitialLives != 3 {
		t.Fatalf("defaults lost: %+v", got)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("bullet_life: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTuning(path)
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Tuning)
	}{
		{"initial above cap", func(tu *Tuning) { tu.InitialAsteroids = 20 }},
		{"negative cap", func(tu *Tuning) { tu.AsteroidCap = -1 }},
		{"asteroid speed past screen", func(tu *Tuning) { tu.AsteroidSpeed = 2000 }},
		{"negative asteroid speed", func(tu *Tuning) { tu.AsteroidSpeed = -1 }},
		{"negative bullet speed", func(tu *Tuning) { tu.BulletSpeed = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.modify(&tu)
			if err := tu.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate = %v, want ErrInvalidTuning", err)
			}
		})
	}

	tu := DefaultTuning()
	tu.InitialAsteroids = tu.AsteroidCap
	if err := tu.Validate(); err != nil {
		t.Fatalf("initial equal to cap: %v", err)
	}
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EMACSTEROIDS_TEST_KEY", "value")
	if got := GetEnv("EMACSTEROIDS_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q", got)
	}
	if got := GetEnv("EMACSTEROIDS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("EMACSTEROIDS_IDLE", "90s")
	if got := GetEnvDuration("EMACSTEROIDS_IDLE", time.Second); got != 90*time.Second {
		t.Fatalf("duration = %v", got)
	}
	t.Setenv("EMACSTEROIDS_IDLE", "30")
	if got := GetEnvDuration("EMACSTEROIDS_IDLE", time.Second); got != 30*time.Second {
		t.Fatalf("seconds = %v", got)
	}
	t.Setenv("EMACSTEROIDS_IDLE", "soon")
	if got := GetEnvDuration("EMACSTEROIDS_IDLE", time.Second); got != time.Second {
		t.Fatalf("fallback = %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("EMACSTEROIDS_FROM_DOTENV=yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EMACSTEROIDS_FROM_DOTENV", "")
	os.Unsetenv("EMACSTEROIDS_FROM_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("EMACSTEROIDS_FROM_DOTENV"); got != "yes" {
		t.Fatalf("variable not loaded, got %q", got)
	}
}
