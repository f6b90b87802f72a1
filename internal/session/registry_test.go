package session

import (
	"errors"
	"testing"
	"time"
)

func register(t *testing.T, r *Registry, name string) *Handle {
	t.Helper()
	h, err := r.Register(name)
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return h
}

func TestRegisterUnregister(t *testing.T) {
	r := NewRegistry(5)
	a := register(t, r, "ada")
	b := register(t, r, "bob")

	if a.ID == b.ID {
		t.Fatal("sessions share an id")
	}
	if got := r.Count(); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}

	r.Unregister(a)
	r.Unregister(a)
	if got := r.Count(); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
	if _, ok := <-a.Events; ok {
		t.Fatal("events channel still open after unregister")
	}
}

func TestLeaderboard(t *testing.T) {
	r := NewRegistry(3)
	a := register(t, r, "ada")
	b := register(t, r, "bob")

	ranks := []struct {
		h     *Handle
		score int
		want  int
	}{
		{a, 50, 1},
		{b, 30, 2},
		{b, 50, 2}, // ties stay behind the earlier score
		{a, 10, 0}, // board is full
		{a, 90, 1},
	}
	for _, tt := range ranks {
		if got := r.ReportScore(tt.h, tt.score); got != tt.want {
			t.Fatalf("score %d for %s ranked %d, want %d", tt.score, tt.h.Username, got, tt.want)
		}
	}

	top := r.TopScores()
	want := []Score{{Username: "ada", Score: 90}, {Username: "ada", Score: 50}, {Username: "bob", Score: 50}}
	if len(top) != len(want) {
		t.Fatalf("got %d entries, want %d", len(top), len(want))
	}
	for i := range want {
		if top[i].Username != want[i].Username || top[i].Score != want[i].Score {
			t.Fatalf("entry %d = %+v, want %+v", i, top[i], want[i])
		}
	}

	top[0].Score = 0
	if r.TopScores()[0].Score != 90 {
		t.Fatal("TopScores exposes internal state")
	}
}

func TestHighScoreIsAnnounced(t *testing.T) {
	r := NewRegistry(5)
	a := register(t, r, "ada")
	b := register(t, r, "bob")

	r.ReportScore(a, 40)

	select {
	case ev := <-b.Events:
		if ev.Type != EventHighScore || ev.Username != "ada" || ev.Score != 40 {
			t.Fatalf("got %+v", ev)
		}
	default:
		t.Fatal("other session was not told about the high score")
	}
	select {
	case ev := <-a.Events:
		t.Fatalf("scorer received its own announcement %+v", ev)
	default:
	}
}

func TestShutdownWaitsForSessions(t *testing.T) {
	r := NewRegistry(5)
	a := register(t, r, "ada")

	go func() {
		ev := <-a.Events
		if ev.Type == EventShutdown {
			r.Unregister(a)
		}
	}()

	if remaining := r.Shutdown(5 * time.Second); remaining != 0 {
		t.Fatalf("%d sessions left after shutdown", remaining)
	}
	if _, err := r.Register("late"); !errors.Is(err, ErrShuttingDown) {
		t.Fatalf("register after shutdown: err = %v", err)
	}
}

func TestShutdownTimesOut(t *testing.T) {
	r := NewRegistry(5)
	register(t, r, "stubborn")

	start := time.Now()
	if remaining := r.Shutdown(50 * time.Millisecond); remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("shutdown ignored its timeout")
	}
}
