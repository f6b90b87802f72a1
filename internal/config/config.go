package config

import "time"

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownWait           = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Leaderboard
const (
	TopScoresShown = 5
)

// Share action defaults. The page URL is filled in by the frontend.
const (
	DefaultShareBaseURL = "https://twitter.com/intent/tweet"
	DefaultShareText    = "I just scored %d points shooting asteroids! Can you beat my score and help #teamEmacs?\nPlay: "
	DefaultPlayURL      = "https://github.com/tomz197/emacsteroids"
)
