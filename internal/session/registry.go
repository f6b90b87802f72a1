// Package session tracks the games running over SSH: who is connected, the
// best final scores and the shutdown handshake with every client.
package session

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrShuttingDown is returned by Register once Shutdown has started.
var ErrShuttingDown = errors.New("server is shutting down")

// EventType identifies the type of session event.
type EventType int

const (
	EventShutdown  EventType = iota // The server is going away
	EventHighScore                  // Another player took first place
)

// Event is sent from the registry to a session.
type Event struct {
	Type     EventType
	Username string // For high score events
	Score    int    // For high score events
}

// Handle represents one connected session.
type Handle struct {
	ID       uuid.UUID
	Username string
	Joined   time.Time
	Events   chan Event // Closed by Unregister
}

// Score is a leaderboard entry.
type Score struct {
	Username string
	Score    int
	At       time.Time
}

// Registry is shared by all sessions and safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Handle
	scores   []Score // Best first, at most limit entries
	limit    int
	closing  bool
	now      func() time.Time
}

// NewRegistry creates a registry keeping the best limit scores.
func NewRegistry(limit int) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Handle),
		limit:    max(limit, 1),
		now:      time.Now,
	}
}

// Register adds a session for username and returns its handle.
func (r *Registry) Register(username string) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closing {
		return nil, ErrShuttingDown
	}

	h := &Handle{
		ID:       uuid.New(),
		Username: username,
		Joined:   r.now(),
		Events:   make(chan Event, 16),
	}
	r.sessions[h.ID] = h
	return h, nil
}

// Unregister removes the session and closes its event channel. It is safe to
// call more than once.
func (r *Registry) Unregister(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[h.ID]; !ok {
		return
	}
	delete(r.sessions, h.ID)
	close(h.Events)
}

// Count returns the number of connected sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// ReportScore records a final score. It returns the 1-based leaderboard rank,
// or 0 if the score did not make the board. Taking first place is announced
// to every other session.
func (r *Registry) ReportScore(h *Handle, score int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Equal scores keep their earlier holder ahead.
	i, _ := slices.BinarySearchFunc(r.scores, score, func(s Score, target int) int {
		if s.Score >= target {
			return -1
		}
		return 1
	})
	if i >= r.limit {
		return 0
	}

	r.scores = slices.Insert(r.scores, i, Score{Username: h.Username, Score: score, At: r.now()})
	if len(r.scores) > r.limit {
		r.scores = r.scores[:r.limit]
	}

	if i == 0 {
		for id, other := range r.sessions {
			if id == h.ID {
				continue
			}
			select {
			case other.Events <- Event{Type: EventHighScore, Username: h.Username, Score: score}:
			default:
			}
		}
	}
	return i + 1
}

// TopScores returns a copy of the leaderboard, best first.
func (r *Registry) TopScores() []Score {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.scores)
}

// Shutdown notifies every session that the server is going away, refuses new
// sessions, and waits for the sessions to disconnect (up to the given
// timeout). It returns the number of sessions still connected.
func (r *Registry) Shutdown(timeout time.Duration) int {
	r.mu.Lock()
	r.closing = true
	for _, h := range r.sessions {
		select {
		case h.Events <- Event{Type: EventShutdown}:
		default:
		}
	}
	r.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := r.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			return r.Count()
		case <-ticker.C:
		}
	}
}
