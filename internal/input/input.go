// Package input turns raw terminal bytes into per-frame game input: pointer
// motion and clicks from SGR mouse reports plus a handful of keys.
package input

import (
	"bufio"
)

// Cell is a 1-based terminal position as reported by the terminal.
type Cell struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool   // q, Q, Ctrl-C or the input stream ended
	Fire    bool   // Space
	Reload  bool   // r or R
	Pointer *Cell  // Last reported pointer position, nil if the pointer did not move
	Clicks  []Cell // Primary button presses, in arrival order
	Pressed []byte // Printable keys, in arrival order
}

// Stream delivers input bytes via a channel and decodes them once per frame.
type Stream struct {
	ch      chan byte
	decoder Decoder
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// decodes them. Incomplete escape sequences are kept for the next frame.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.decoder.Feed(buf)
	if s.closed {
		in.Quit = true
	}
	return in
}
