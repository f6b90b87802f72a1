package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/game"
)

var (
	titleStyle = draw.TextStyle{Align: draw.AlignCenter, Size: 48}
	lineStyle  = draw.TextStyle{Align: draw.AlignCenter, Size: 24}
	smallStyle = draw.TextStyle{Align: draw.AlignLeft, Size: 24}
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	s := c.surface

	switch {
	case c.shuttingDown:
		s.DrawBackground()
		c.drawShutdownScreen()
	case c.isInactive:
		s.DrawBackground()
		c.drawInactivityScreen()
	default:
		game.Draw(c.state, s)
		if c.state.Over() {
			c.drawGameOverExtras()
		} else {
			c.drawPlayingHUD()
		}
	}

	s.Flush()
	return c.chunkWriter.Flush()
}

func (c *Client) center() (float64, float64) {
	center := c.state.Screen.Center()
	return center.X, center.Y
}

// drawPlayingHUD adds the terminal-only hints to the in-game HUD.
func (c *Client) drawPlayingHUD() {
	h := c.state.Screen.Height
	c.surface.DrawText("Click/SPACE shoot  Q quit", 10, h-30, smallStyle)

	if c.registry != nil {
		players := fmt.Sprintf("Players: %d", c.registry.Count())
		c.surface.DrawText(players, c.state.Screen.Width-160, 10, smallStyle)
	}
}

// drawGameOverExtras draws the leaderboard, the share result and the restart prompt.
func (c *Client) drawGameOverExtras() {
	cx, cy := c.center()
	s := c.surface

	if c.registry != nil {
		c.drawLeaderboard(cx, 20)
	}

	y := cy + 180
	if c.shareURL != "" {
		s.DrawLink("Link copied, click here to open it", c.shareURL, cx, y, lineStyle)
	} else {
		s.DrawText("Click the button or press S to share", cx, y, lineStyle)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		s.DrawText(">>  Press R to Play Again  <<", cx, y+40, lineStyle)
	}
}

func (c *Client) drawLeaderboard(cx, top float64) {
	s := c.surface

	title := "TOP SCORES"
	if c.rank > 0 {
		title = fmt.Sprintf("TOP SCORES  (you placed #%d)", c.rank)
	}
	s.DrawText(title, cx, top, lineStyle)

	scores := c.registry.TopScores()
	for i, entry := range scores[:min(len(scores), config.TopScoresShown)] {
		line := fmt.Sprintf("%d. %-12s %6d", i+1, entry.Username, entry.Score)
		s.DrawText(line, cx, top+30*float64(i+1), lineStyle)
	}

	if c.highScore != nil && c.highScore.Username != c.opts.Username {
		msg := fmt.Sprintf("%s just took first place with %d", c.highScore.Username, c.highScore.Score)
		s.DrawText(msg, cx, top+30*float64(config.TopScoresShown+1), lineStyle)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen() {
	cx, cy := c.center()
	s := c.surface

	s.DrawText("INACTIVITY WARNING", cx, cy-60, titleStyle)
	msg := fmt.Sprintf(
		"You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	s.DrawText(msg, cx, cy, lineStyle)
	s.DrawText("Move the mouse or press any key to continue", cx, cy+40, lineStyle)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen() {
	cx, cy := c.center()
	s := c.surface

	s.DrawText("SERVER SHUTTING DOWN", cx, cy-90, titleStyle)
	s.DrawText("The server is restarting for maintenance.", cx, cy-30, lineStyle)
	s.DrawText("Please reconnect in a moment.", cx, cy, lineStyle)

	remaining := int(c.shutdownTimer) + 1
	s.DrawText(fmt.Sprintf("Disconnecting in %d seconds...", remaining), cx, cy+60, lineStyle)
	s.DrawText("Press Q to disconnect now", cx, cy+120, lineStyle)
}
