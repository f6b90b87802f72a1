package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHonoursLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := New(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestOpenWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "info")

	logger, closeFn, err := Open("game")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("started")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "started") {
		t.Fatalf("log file = %q", data)
	}
}

func TestOpenWithoutFileDiscards(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	logger, closeFn, err := Open("game")
	if err != nil || logger == nil || closeFn == nil {
		t.Fatalf("Open = %v, closeFn nil %v, %v", logger, closeFn == nil, err)
	}
	logger.Info("nowhere")
}
