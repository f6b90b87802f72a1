package webgame

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

// Size of one glyph of ebitenutil's debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Surface draws onto an ebiten image. Dst is replaced every frame.
type Surface struct {
	Dst      *ebiten.Image
	textures map[draw.Texture]*ebiten.Image
	labels   map[string]*ebiten.Image
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface creates a surface using textures, which must hold every texture in draw.Textures.
func NewSurface(textures map[draw.Texture]*ebiten.Image) *Surface {
	return &Surface{
		textures: textures,
		labels:   make(map[string]*ebiten.Image),
	}
}

// DrawBackground stretches the background texture over the whole frame.
func (s *Surface) DrawBackground() {
	bg := s.textures[draw.TextureBackground]
	b := s.Dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(b.Dx())/float64(bg.Bounds().Dx()),
		float64(b.Dy())/float64(bg.Bounds().Dy()),
	)
	s.Dst.DrawImage(bg, op)
}

// DrawImage draws tex centered at (x, y), scaled to w x h and rotated by angle.
func (s *Surface) DrawImage(tex draw.Texture, x, y, w, h, angle float64) {
	img := s.textures[tex]
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.Dst.DrawImage(img, op)
}

// DrawRect fills r with c.
func (s *Surface) DrawRect(r physics.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.Dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

// DrawText draws text with the debug font scaled to style.Size.
func (s *Surface) DrawText(text string, x, y float64, style draw.TextStyle) {
	label := s.label(text)
	scale := style.Size / glyphHeight
	lw, lh := float64(label.Bounds().Dx()), float64(label.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	ox, oy := labelOrigin(x, y, lw*scale, lh*scale, style.Align)
	op.GeoM.Translate(ox, oy)
	s.Dst.DrawImage(label, op)
}

// label returns a cached image of text rendered at the debug font's native size.
func (s *Surface) label(text string) *ebiten.Image {
	if img, ok := s.labels[text]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(text), 1)*glyphWidth, glyphHeight)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.labels[text] = img
	return img
}

// labelOrigin returns the top-left corner of a w x h label anchored at (x, y).
func labelOrigin(x, y, w, h float64, align draw.Align) (float64, float64) {
	if align == draw.AlignCenter {
		return x - w/2, y - h/2
	}
	return x, y
}
