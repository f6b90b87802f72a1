package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res, string(body)
}

func TestLandingPage(t *testing.T) {
	h := newHandler("play.example.com", t.TempDir())

	res, body := get(t, h, "/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "ssh -t play@play.example.com -p 2222") {
		t.Fatal("landing page does not show the SSH host")
	}
	if strings.Contains(body, "{{.SSHHost}}") {
		t.Fatal("placeholder left in the landing page")
	}

	if res, _ := get(t, h, "/nope"); res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown path status = %d, want 404", res.StatusCode)
	}
}

func TestPlayServesStaticBuild(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "game.wasm"), []byte("\x00asm"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newHandler("host", dir)

	res, body := get(t, h, "/play/")
	if res.StatusCode != http.StatusOK || !strings.Contains(body, "game.wasm") {
		t.Fatalf("play page: status %d body %q", res.StatusCode, body)
	}

	res, body = get(t, h, "/play/game.wasm")
	if res.StatusCode != http.StatusOK || body != "\x00asm" {
		t.Fatalf("wasm: status %d body %q", res.StatusCode, body)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/wasm" {
		t.Fatalf("content type = %q, want application/wasm", ct)
	}
}
