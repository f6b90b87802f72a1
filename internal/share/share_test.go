package share

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc-_.!~*'()", "abc-_.!~*'()"},
		{"a b", "a%20b"},
		{"#teamEmacs?", "%23teamEmacs%3F"},
		{"line\nbreak", "line%0Abreak"},
		{"https://x.io/a?b=c&d", "https%3A%2F%2Fx.io%2Fa%3Fb%3Dc%26d"},
		{"made w ❤", "made%20w%20%E2%9D%A4"},
	}
	for _, tt := range tests {
		if got := EscapeComponent(tt.in); got != tt.want {
			t.Errorf("EscapeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinkFor(t *testing.T) {
	l := Link{
		Base:    "https://twitter.com/intent/tweet",
		Text:    "I scored %d points!\nPlay: ",
		PageURL: "https://example.com/play/",
	}

	got := l.For(120)
	want := "https://twitter.com/intent/tweet?text=I%20scored%20120%20points!%0APlay%3A%20" +
		"&url=https%3A%2F%2Fexample.com%2Fplay%2F"
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestLinkWithoutPlaceholder(t *testing.T) {
	l := Link{Base: "https://b", Text: "100%", PageURL: ""}
	if got := l.For(5); got != "https://b?text=100%25&url=" {
		t.Fatalf("got %s", got)
	}
}

func TestLinkPlaceholderBesidePercent(t *testing.T) {
	l := Link{Base: "https://b", Text: "%d points, 100% emacs", PageURL: ""}
	if got := l.For(30); got != "https://b?text=30%20points%2C%20100%25%20emacs&url=" {
		t.Fatalf("got %s", got)
	}
}

func TestCopy(t *testing.T) {
	url := "https://b?text=x"
	payload := base64.StdEncoding.EncodeToString([]byte(url))

	var buf bytes.Buffer
	if err := Copy(&buf, url, "xterm-256color"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b]52;") || !strings.Contains(buf.String(), payload) {
		t.Fatalf("unexpected sequence %q", buf.String())
	}

	buf.Reset()
	Copy(&buf, url, "tmux-256color")
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Fatalf("tmux sequence not wrapped: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestCopyError(t *testing.T) {
	if err := Copy(failingWriter{}, "u", ""); err == nil {
		t.Fatal("expected an error from a failing writer")
	}
}
