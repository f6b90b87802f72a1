package input

import (
	"bytes"
	"strconv"
)

const (
	esc    = '\x1b'
	ctrlC  = '\x03'
	sgrCSI = "\x1b[<"

	// Longest SGR mouse report we wait for before giving up on a sequence.
	maxPending = 32

	mouseMotion = 32
	mouseWheel  = 64
)

// Decoder parses keys and SGR (1006) mouse reports. It keeps an incomplete
// trailing escape sequence between calls to Feed.
type Decoder struct {
	pending []byte
}

// Feed decodes buf, prefixed by whatever was left over from the previous call.
func (d *Decoder) Feed(buf []byte) Input {
	var in Input

	if len(buf) == 0 {
		// A lone ESC that nothing followed was a bare Escape press.
		if len(d.pending) == 1 {
			d.pending = nil
		}
		return in
	}

	data := buf
	if len(d.pending) > 0 {
		data = append(d.pending, buf...)
		d.pending = nil
	}

	for i := 0; i < len(data); {
		b := data[i]
		if b != esc {
			applyKey(&in, b)
			i++
			continue
		}

		n, complete := d.escape(&in, data[i:])
		if !complete {
			if len(data)-i <= maxPending {
				d.pending = append([]byte(nil), data[i:]...)
			}
			break
		}
		i += n
	}

	return in
}

// escape handles a sequence starting with ESC. It returns how many bytes were
// consumed, or complete=false if the sequence might still be arriving.
func (d *Decoder) escape(in *Input, data []byte) (n int, complete bool) {
	if len(data) == 1 {
		return 0, false
	}
	if data[1] != '[' {
		// Alt+key or a bare Escape press.
		return 1, true
	}
	if len(data) < 3 {
		return 0, false
	}

	if bytes.HasPrefix(data, []byte(sgrCSI)) {
		end := bytes.IndexAny(data[len(sgrCSI):], "Mm")
		if end < 0 {
			return 0, false
		}
		end += len(sgrCSI)
		applyMouse(in, data[len(sgrCSI):end], data[end] == 'M')
		return end + 1, true
	}

	// Other CSI sequences (arrows, focus, ...) end with a byte in 0x40..0x7e.
	for j := 2; j < len(data); j++ {
		if data[j] >= 0x40 && data[j] <= 0x7e {
			return j + 1, true
		}
	}
	return 0, false
}

func applyKey(in *Input, b byte) {
	switch b {
	case 'q', 'Q', ctrlC:
		in.Quit = true
	case ' ':
		in.Fire = true
	case 'r', 'R':
		in.Reload = true
	}
	if b >= 0x20 && b < 0x7f {
		in.Pressed = append(in.Pressed, b)
	}
}

// applyMouse decodes the "b;x;y" body of an SGR mouse report.
func applyMouse(in *Input, body []byte, press bool) {
	fields := bytes.Split(body, []byte{';'})
	if len(fields) != 3 {
		return
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return
		}
		v[i] = n
	}

	button, cell := v[0], Cell{Col: v[1], Row: v[2]}
	in.Pointer = &cell

	if !press || button&(mouseMotion|mouseWheel) != 0 {
		return
	}
	if button&3 == 0 {
		in.Clicks = append(in.Clicks, cell)
	}
}
