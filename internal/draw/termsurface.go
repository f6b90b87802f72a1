package draw

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/emacsteroids/internal/physics"
)

const starCount = 48

// TerminalSurface renders the game onto a half-block Canvas. Shapes go to the
// canvas immediately; rectangles and text are queued and written on top of
// the canvas by Flush.
type TerminalSurface struct {
	canvas   *Canvas
	out      *ChunkWriter
	renderer *lipgloss.Renderer
	stars    []Point
	panels   []panel
	texts    []textRun
}

type panel struct {
	rect  physics.Rect
	color color.RGBA
}

type textRun struct {
	text  string
	url   string // Optional OSC 8 target
	x, y  float64
	style TextStyle
}

var _ Surface = (*TerminalSurface)(nil)

// NewTerminalSurface creates a surface drawing into canvas and writing to out.
// A nil renderer uses lipgloss' default renderer.
func NewTerminalSurface(canvas *Canvas, out *ChunkWriter, renderer *lipgloss.Renderer) *TerminalSurface {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	rng := rand.New(rand.NewPCG(0x5eed, 0x57a2))
	stars := make([]Point, starCount)
	for i := range stars {
		stars[i] = Point{
			X: rng.Float64() * canvas.LogicalWidth(),
			Y: rng.Float64() * canvas.LogicalHeight(),
		}
	}
	return &TerminalSurface{
		canvas:   canvas,
		out:      out,
		renderer: renderer,
		stars:    stars,
	}
}

// DrawBackground clears the canvas to a fixed star field and drops queued overlays.
func (s *TerminalSurface) DrawBackground() {
	s.canvas.Clear()
	s.panels = s.panels[:0]
	s.texts = s.texts[:0]
	for _, p := range s.stars {
		s.canvas.SetFloat(p.X, p.Y)
	}
}

// DrawImage draws the vector outline standing in for tex.
func (s *TerminalSurface) DrawImage(tex Texture, x, y, w, h, angle float64) {
	switch tex {
	case TextureBackground:
		s.DrawBackground()
	case TextureShip:
		s.canvas.DrawSprite(shipShape, true, x, y, w, h, angle)
	case TextureAsteroid:
		s.canvas.DrawSprite(asteroidShape, false, x, y, w, h, angle)
	case TextureBullet:
		s.canvas.DrawSprite(bulletShape, true, x, y, w, h, angle)
	}
}

// DrawRect queues a filled panel.
func (s *TerminalSurface) DrawRect(r physics.Rect, c color.RGBA) {
	s.panels = append(s.panels, panel{rect: r, color: c})
}

// DrawText queues a line of text.
func (s *TerminalSurface) DrawText(text string, x, y float64, style TextStyle) {
	s.texts = append(s.texts, textRun{text: text, x: x, y: y, style: style})
}

// DrawLink queues a line of text that terminals supporting OSC 8 turn into a
// clickable link to url.
func (s *TerminalSurface) DrawLink(text, url string, x, y float64, style TextStyle) {
	s.texts = append(s.texts, textRun{text: text, url: url, x: x, y: y, style: style})
}

// Flush renders the canvas, then panels, then text into the chunk writer.
// The caller flushes the chunk writer itself.
func (s *TerminalSurface) Flush() {
	s.canvas.Render(s.out)
	s.canvas.RenderBorder(s.out)

	for _, p := range s.panels {
		s.writePanel(p)
	}
	for _, t := range s.texts {
		s.writeText(t)
	}
}

func (s *TerminalSurface) writePanel(p panel) {
	col0, row0 := s.canvas.LogicalToTerminal(p.rect.X, p.rect.Y)
	col1, row1 := s.canvas.LogicalToTerminal(p.rect.X+p.rect.W, p.rect.Y+p.rect.H)
	col0, col1 = max(col0, 1), min(col1, s.canvas.TerminalWidth())
	row0, row1 = max(row0, 1), min(row1, s.canvas.TerminalHeight())
	if col1 < col0 || row1 < row0 {
		return
	}

	style := s.renderer.NewStyle().Background(hexColor(p.color))
	fill := style.Render(strings.Repeat(" ", col1-col0+1))
	for row := row0; row <= row1; row++ {
		s.out.WriteAt(col0, row, fill)
	}
}

func (s *TerminalSurface) writeText(t textRun) {
	col, row := s.canvas.LogicalToTerminal(t.x, t.y)
	width := utf8.RuneCountInString(t.text)
	if t.style.Align == AlignCenter {
		col -= width / 2
	}
	if row < 1 || row > s.canvas.TerminalHeight() {
		return
	}
	col = max(col, 1)

	style := s.renderer.NewStyle()
	if t.style.Size >= 40 {
		style = style.Bold(true)
	}
	center := physics.Vector{X: t.x, Y: t.y}
	for _, p := range s.panels {
		if p.rect.Contains(center) {
			style = style.Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(hexColor(p.color))
			break
		}
	}
	text := style.Render(t.text)
	if t.url != "" {
		text = Hyperlink(t.url, text)
	}
	s.out.WriteAt(col, row, text)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
