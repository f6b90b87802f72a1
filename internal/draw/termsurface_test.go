package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/emacsteroids/internal/physics"
)

func TestTerminalSurfaceWritesTextAfterCanvas(t *testing.T) {
	var out bytes.Buffer
	canvas := NewScaledCanvas(80, 30, 800, 600)
	cw := NewChunkWriter(&out, 0, 0)
	s := NewTerminalSurface(canvas, cw, lipgloss.NewRenderer(&out))

	s.DrawBackground()
	s.DrawImage(TextureShip, 400, 300, 64, 64, 0)
	s.DrawText("Score: 10", 10, 10, TextStyle{Align: AlignLeft, Size: 40})
	s.Flush()
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	idxText := strings.Index(got, "Score: 10")
	idxBlock := strings.IndexRune(got, BlockFull)
	if idxText < 0 || idxBlock < 0 || idxText < idxBlock {
		t.Fatalf("text must follow canvas output: text=%d block=%d", idxText, idxBlock)
	}
}

func TestTerminalSurfaceBackgroundDropsQueuedOverlays(t *testing.T) {
	var out bytes.Buffer
	canvas := NewScaledCanvas(80, 30, 800, 600)
	cw := NewChunkWriter(&out, 0, 0)
	s := NewTerminalSurface(canvas, cw, nil)

	s.DrawRect(physics.Rect{X: 300, Y: 400, W: 200, H: 50}, color.RGBA{29, 161, 242, 255})
	s.DrawText("stale", 400, 425, TextStyle{Align: AlignCenter})
	s.DrawBackground()
	s.Flush()
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "stale") {
		t.Fatalf("text queued before DrawBackground was rendered")
	}
}

func TestTextureNames(t *testing.T) {
	if len(Textures) != 4 {
		t.Fatalf("expected four textures, got %d", len(Textures))
	}
	for _, tex := range Textures {
		if tex.String() == "unknown" {
			t.Fatalf("texture %d has no name", tex)
		}
	}
}

func TestTerminalSurfaceLink(t *testing.T) {
	var out bytes.Buffer
	canvas := NewScaledCanvas(80, 30, 800, 600)
	cw := NewChunkWriter(&out, 0, 0)
	s := NewTerminalSurface(canvas, cw, lipgloss.NewRenderer(&out))

	s.DrawBackground()
	s.DrawLink("open", "https://example.com/x", 400, 500, TextStyle{Align: AlignCenter, Size: 24})
	s.Flush()
	cw.Flush()

	if !strings.Contains(out.String(), "\033]8;;https://example.com/x\033\\open\033]8;;\033\\") {
		t.Fatalf("link not wrapped in OSC 8: %q", out.String())
	}
}
