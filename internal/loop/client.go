// Package loop runs one terminal game: it reads keys and mouse reports,
// advances the game at a fixed frame rate and renders it as half-block
// graphics. The same client serves the local terminal and every SSH session.
package loop

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/game"
	"github.com/tomz197/emacsteroids/internal/input"
	"github.com/tomz197/emacsteroids/internal/physics"
	"github.com/tomz197/emacsteroids/internal/session"
	"github.com/tomz197/emacsteroids/internal/share"
)

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Renderer     *lipgloss.Renderer // Nil uses lipgloss' default renderer
	Logger       *log.Logger        // Nil discards logs
	Term         string             // Client TERM, used to wrap clipboard sequences
	Username     string
	Tuning       config.Tuning
	Link         share.Link
	Registry     *session.Registry // Nil for a local, single-player game
}

// Client runs one game for one terminal.
type Client struct {
	opts   Options
	logger *log.Logger

	state   *game.State
	pointer physics.Vector
	running bool

	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	surface      *draw.TerminalSurface
	writer       io.Writer
	termSizeFunc draw.TermSizeFunc
	readInput    func() input.Input

	registry *session.Registry
	handle   *session.Handle

	lastInput     time.Time
	isInactive    bool
	shuttingDown  bool
	shutdownTimer float64 // Seconds left before auto-disconnect
	delta         time.Duration

	rank      int    // Leaderboard rank of the last finished game, 0 if none
	shareURL  string // Set once the share link has been produced
	highScore *session.Event
}

// NewClient creates a client reading input from r and drawing to w. With a
// registry set the client registers itself and fails once the registry is
// shutting down.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var handle *session.Handle
	if opts.Registry != nil {
		h, err := opts.Registry.Register(opts.Username)
		if err != nil {
			return nil, fmt.Errorf("register session: %w", err)
		}
		handle = h
	}

	tuning := opts.Tuning
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, tuning.Width, tuning.Height)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	stream := input.StartStream(r)
	c := &Client{
		opts:         opts,
		logger:       logger,
		running:      true,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		surface:      draw.NewTerminalSurface(canvas, chunkWriter, opts.Renderer),
		writer:       w,
		termSizeFunc: termSizeFunc,
		readInput:    func() input.Input { return input.ReadInput(stream) },
		registry:     opts.Registry,
		handle:       handle,
		lastInput:    time.Now(),
	}
	c.newGame()
	return c, nil
}

// Run starts the client loop. Blocks until the player quits, the session
// idles out, the shutdown countdown ends or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.EnterGameMode(c.writer)
	defer draw.LeaveGameMode(c.writer)
	defer c.unregister()

	lastTime := time.Now()

	for c.running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()
		c.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.frame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	return nil
}

// frame runs one iteration of the loop: input, session events, resize,
// game step and drawing.
func (c *Client) frame() error {
	c.processInput()
	c.processSessionEvents()
	c.updateScreen()

	switch {
	case c.shuttingDown:
		c.updateShutdownState()
	case c.isInactive:
		// The warning hides the playfield, so the world holds still.
	default:
		if ev := game.Step(c.state, game.Input{Pointer: c.pointer}); ev.GameOver {
			c.finishGame()
		}
	}

	return c.drawFrame()
}

func (c *Client) newGame() {
	c.state = game.New(c.opts.Tuning, game.NewRand())
	c.pointer = c.state.Ship.Position.Add(physics.Vector{Y: -1})
	c.rank = 0
	c.shareURL = ""
}

// processInput applies this frame's keys and mouse reports.
func (c *Client) processInput() {
	in := c.readInput()

	if in.Pointer != nil || len(in.Clicks) > 0 || len(in.Pressed) > 0 {
		c.lastInput = time.Now()
		c.isInactive = false
	} else if c.registry != nil {
		idle := time.Since(c.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("Disconnecting idle session", "user", c.opts.Username)
			c.running = false
		} else if idle > config.InactivityWarnUser {
			c.isInactive = true
		}
	}

	if in.Quit {
		c.running = false
		return
	}
	if c.shuttingDown {
		return
	}

	if in.Pointer != nil {
		c.pointer = c.toWorld(*in.Pointer)
	}
	for _, cell := range in.Clicks {
		c.click(c.toWorld(cell))
	}
	if in.Fire && !c.state.Over() {
		c.click(c.pointer)
	}

	if c.state.Over() {
		if in.Reload {
			c.newGame()
		} else if bytes.ContainsAny(in.Pressed, "sS") {
			c.share()
		}
	}
}

func (c *Client) toWorld(cell input.Cell) physics.Vector {
	x, y := c.canvas.ScreenToLogical(cell.Col, cell.Row)
	return physics.Vector{X: x, Y: y}
}

func (c *Client) click(p physics.Vector) {
	if game.Click(c.state, p) == game.ClickShare {
		c.share()
	}
}

// share copies the share link to the terminal clipboard and shows it as a link.
func (c *Client) share() {
	c.shareURL = c.opts.Link.For(c.state.Score)
	if err := share.Copy(c.chunkWriter, c.shareURL, c.opts.Term); err != nil {
		c.logger.Debug("Share link delivery failed", "err", err)
	}
}

// finishGame records a finished game on the leaderboard.
func (c *Client) finishGame() {
	c.logger.Info("Game over", "user", c.opts.Username, "score", c.state.Score, "frames", c.state.Frame)
	if c.registry != nil {
		c.rank = c.registry.ReportScore(c.handle, c.state.Score)
	}
}

// processSessionEvents handles events from the registry.
func (c *Client) processSessionEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.Events:
			if !ok {
				c.running = false
				return
			}
			switch event.Type {
			case session.EventShutdown:
				c.shuttingDown = true
				c.shutdownTimer = config.ShutdownDisplaySeconds
			case session.EventHighScore:
				c.highScore = &event
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.chunkWriter)
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.shutdownTimer -= c.delta.Seconds()
	if c.shutdownTimer <= 0 {
		c.running = false
	}
}

func (c *Client) unregister() {
	if c.registry != nil && c.handle != nil {
		c.registry.Unregister(c.handle)
	}
}
