package webgame

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/emacsteroids/internal/draw"

	_ "image/png"
)

const textureSize = 64

// AssetFile returns the file name a texture is loaded from.
func AssetFile(tex draw.Texture) string {
	return tex.String() + ".png"
}

// LoadTextures reads every texture from dir as PNG files. Any missing or
// broken file is an error.
func LoadTextures(dir string) (map[draw.Texture]*ebiten.Image, error) {
	textures := make(map[draw.Texture]*ebiten.Image, len(draw.Textures))
	for _, tex := range draw.Textures {
		path := filepath.Join(dir, AssetFile(tex))
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s texture: %w", tex, err)
		}
		textures[tex] = img
	}
	return textures, nil
}

// GenerateTextures draws a built-in set of textures.
func GenerateTextures() map[draw.Texture]*ebiten.Image {
	return map[draw.Texture]*ebiten.Image{
		draw.TextureBackground: generateBackground(800, 600),
		draw.TextureShip:       generateShip(),
		draw.TextureAsteroid:   generateAsteroid(),
		draw.TextureBullet:     generateBullet(),
	}
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func generateBackground(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{R: 5, G: 5, B: 20, A: 255})
	rng := rand.New(rand.NewPCG(0x5eed, 0x57a2))
	for range 120 {
		x, y := rng.Float32()*float32(w), rng.Float32()*float32(h)
		shade := uint8(120 + rng.IntN(136))
		vector.DrawFilledCircle(img, x, y, rng.Float32()*1.2+0.3, color.RGBA{R: shade, G: shade, B: shade, A: 255}, true)
	}
	return img
}

// generateShip draws an arrowhead pointing up.
func generateShip() *ebiten.Image {
	img := ebiten.NewImage(textureSize, textureSize)

	var path vector.Path
	path.MoveTo(32, 2)
	path.LineTo(58, 62)
	path.LineTo(32, 48)
	path.LineTo(6, 62)
	path.Close()

	fillPath(img, &path, color.RGBA{R: 200, G: 220, B: 255, A: 255})
	return img
}

func generateAsteroid() *ebiten.Image {
	img := ebiten.NewImage(textureSize, textureSize)
	radii := []float64{0.92, 0.78, 0.95, 0.83, 0.97, 0.74, 0.9, 0.86, 0.98, 0.8}

	var path vector.Path
	for i, r := range radii {
		angle := float64(i) / float64(len(radii)) * 2 * math.Pi
		x := float32(32 + math.Cos(angle)*r*30)
		y := float32(32 + math.Sin(angle)*r*30)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	fillPath(img, &path, color.RGBA{R: 110, G: 100, B: 90, A: 255})
	return img
}

func generateBullet() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	vector.DrawFilledCircle(img, 8, 8, 4, color.RGBA{R: 255, G: 230, B: 120, A: 255}, true)
	return img
}

func fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
