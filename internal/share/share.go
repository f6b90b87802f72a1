// Package share builds the "post your score" link shown after a game ends and
// hands it to terminals that cannot open a browser themselves.
package share

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Link describes where a score is shared and what the post says.
type Link struct {
	Base    string // Intent endpoint, e.g. https://twitter.com/intent/tweet
	Text    string // Message template; %d is replaced by the score
	PageURL string // Page the post links back to
}

// For returns the share URL for score.
func (l Link) For(score int) string {
	text := strings.Replace(l.Text, "%d", strconv.Itoa(score), 1)
	return l.Base + "?text=" + EscapeComponent(text) + "&url=" + EscapeComponent(l.PageURL)
}

// EscapeComponent percent-encodes s so it can be placed in a single query
// value. Only ASCII letters, digits and -_.!~*'() are kept as is, which is
// what browsers do for encodeURIComponent.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xf])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// Copy puts url on the terminal clipboard with an OSC 52 sequence. term is
// the client's TERM; multiplexers need the sequence wrapped.
func Copy(w io.Writer, url, term string) error {
	seq := osc52.New(url)
	switch {
	case strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("copy share link: %w", err)
	}
	return nil
}
