package game

import (
	"image/color"
	"testing"

	"github.com/tomz197/emacsteroids/internal/draw"
	"github.com/tomz197/emacsteroids/internal/physics"
)

type opKind int

const (
	opBackground opKind = iota
	opImage
	opRect
	opText
)

type op struct {
	kind  opKind
	name  string
	x, y  float64
	style draw.TextStyle
	rect  physics.Rect
	color color.RGBA
}

// recorder is a Surface that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) DrawBackground() {
	r.ops = append(r.ops, op{kind: opBackground})
}

func (r *recorder) DrawImage(tex draw.Texture, x, y, w, h, angle float64) {
	r.ops = append(r.ops, op{kind: opImage, name: tex.String(), x: x, y: y})
}

func (r *recorder) DrawRect(rect physics.Rect, c color.RGBA) {
	r.ops = append(r.ops, op{kind: opRect, rect: rect, color: c})
}

func (r *recorder) DrawText(text string, x, y float64, style draw.TextStyle) {
	r.ops = append(r.ops, op{kind: opText, name: text, x: x, y: y, style: style})
}

func (r *recorder) count(kind opKind, name string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind && o.name == name {
			n++
		}
	}
	return n
}

func (r *recorder) text(name string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == opText && o.name == name {
			return o, true
		}
	}
	return op{}, false
}

func TestDrawPlaying(t *testing.T) {
	s := emptyGame(t)
	s.Asteroids = append(s.Asteroids, still(100, 100), still(700, 500))
	s.fire()
	s.Score = 30

	rec := &recorder{}
	Draw(s, rec)

	if len(rec.ops) == 0 || rec.ops[0].kind != opBackground {
		t.Fatal("frame does not start with the background")
	}
	wantOrder := []string{"asteroid", "asteroid", "ship", "bullet"}
	var images []string
	for _, o := range rec.ops {
		if o.kind == opImage {
			images = append(images, o.name)
		}
	}
	if len(images) != len(wantOrder) {
		t.Fatalf("drew %v, want %v", images, wantOrder)
	}
	for i := range wantOrder {
		if images[i] != wantOrder[i] {
			t.Fatalf("drew %v, want %v", images, wantOrder)
		}
	}

	score, ok := rec.text("Score: 30")
	if !ok || score.x != 10 || score.y != 10 || score.style.Size != 40 || score.style.Align != draw.AlignLeft {
		t.Fatalf("score text = %+v", score)
	}
	if lives, ok := rec.text("Lives: 3"); !ok || lives.y != 50 {
		t.Fatalf("lives text = %+v", lives)
	}
	if n := rec.count(opRect, ""); n != 0 {
		t.Fatal("share button drawn while playing")
	}
}

func TestDrawGameOver(t *testing.T) {
	s := emptyGame(t)
	s.Asteroids = append(s.Asteroids, still(100, 100))
	s.Score = 120
	s.Phase = PhaseGameOver

	rec := &recorder{}
	Draw(s, rec)

	if n := rec.count(opImage, "asteroid") + rec.count(opImage, "ship"); n != 0 {
		t.Fatalf("drew %d entities on the game over screen", n)
	}
	if title, ok := rec.text("GAME OVER"); !ok || title.x != 400 || title.y != 300 || title.style.Size != 48 {
		t.Fatalf("title = %+v", title)
	}
	if score, ok := rec.text("Score: 120"); !ok || score.y != 340 || score.style.Align != draw.AlignCenter {
		t.Fatalf("score = %+v", score)
	}
	if tagline, ok := rec.text(s.Tuning.Tagline); !ok || tagline.y != 380 {
		t.Fatalf("tagline = %+v", tagline)
	}

	var button op
	for _, o := range rec.ops {
		if o.kind == opRect {
			button = o
		}
	}
	want := physics.Rect{X: 300, Y: 400, W: 200, H: 50}
	if button.rect != want || button.color != (color.RGBA{R: 29, G: 161, B: 242, A: 255}) {
		t.Fatalf("button = %+v %+v, want %+v", button.rect, button.color, want)
	}
	if label, ok := rec.text(ShareLabel); !ok || label.x != 400 || label.y != 425 {
		t.Fatalf("label = %+v", label)
	}
}
