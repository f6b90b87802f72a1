// Package webgame is the ebiten frontend: it runs the game in a browser
// (compiled to WebAssembly) or a desktop window.
package webgame

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/game"
	"github.com/tomz197/emacsteroids/internal/physics"
	"github.com/tomz197/emacsteroids/internal/share"
)

// Game implements ebiten.Game.
type Game struct {
	tuning  config.Tuning
	state   *game.State
	surface *Surface
	link    share.Link
	logger  *log.Logger
	pointer physics.Vector
	open    func(url string) error

	cursorX, cursorY int
	touchIDs         []ebiten.TouchID
}

var _ ebiten.Game = (*Game)(nil)

// tickInput is everything the player did during one tick, in world pixels.
type tickInput struct {
	Pointer *physics.Vector // Set when the pointer moved
	Clicks  []physics.Vector
	Fire    bool // Space
	Restart bool // R
}

// New creates a game drawing with textures. An empty link page URL is
// replaced by the address of the hosting page.
func New(tuning config.Tuning, textures map[draw.Texture]*ebiten.Image, link share.Link, logger *log.Logger) *Game {
	if link.PageURL == "" {
		link.PageURL = pageURL()
	}
	g := &Game{
		tuning:  tuning,
		surface: NewSurface(textures),
		link:    link,
		logger:  logger,
		open:    openURL,
	}
	g.restart()
	return g
}

func (g *Game) restart() {
	g.state = game.New(g.tuning, game.NewRand())
	g.pointer = g.state.Ship.Position.Add(physics.Vector{Y: -1})
}

// Update reads this tick's pointer, clicks and keys, then advances the game.
func (g *Game) Update() error {
	var in tickInput

	// Touch screens leave the cursor alone, so only a moving cursor steers.
	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		in.Pointer = &physics.Vector{X: float64(x), Y: float64(y)}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Clicks = append(in.Clicks, physics.Vector{X: float64(g.cursorX), Y: float64(g.cursorY)})
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p := physics.Vector{X: float64(tx), Y: float64(ty)}
		in.Pointer = &p
		in.Clicks = append(in.Clicks, p)
	}
	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)

	g.tick(in)
	return nil
}

// tick applies in and steps the game once. Clicks are handled before the
// step, so a bullet fired this tick also moves this tick.
func (g *Game) tick(in tickInput) {
	if in.Pointer != nil {
		g.pointer = *in.Pointer
	}
	for _, p := range in.Clicks {
		g.click(p)
	}

	if g.state.Over() {
		if in.Restart {
			g.restart()
		}
	} else if in.Fire {
		g.click(g.pointer)
	}

	if ev := game.Step(g.state, game.Input{Pointer: g.pointer}); ev.GameOver {
		g.logger.Info("Game over", "score", g.state.Score, "frames", g.state.Frame)
	}
}

func (g *Game) click(p physics.Vector) {
	if game.Click(g.state, p) != game.ClickShare {
		return
	}
	url := g.link.For(g.state.Score)
	if err := g.open(url); err != nil {
		g.logger.Debug("Opening share link failed", "err", err)
	}
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Dst = screen
	game.Draw(g.state, g.surface)
}

// Layout keeps the world size fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.tuning.Width), int(g.tuning.Height)
}
