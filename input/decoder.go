package input

import (
	"unicode/utf8"

	"github.com/lixenwraith/term-snake/core"
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	// maxCSILen caps how far a CSI sequence is scanned for its final byte
	maxCSILen = 16
)

// Decoder turns raw terminal bytes into commands
// Incomplete trailing sequences are held until the next Feed; Idle drops them
type Decoder struct {
	buf []byte
}

// NewDecoder creates a decoder with an empty pending buffer
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 32)}
}

// Feed appends data and returns every command that can be decoded so far
func (d *Decoder) Feed(data []byte) []Command {
	d.buf = append(d.buf, data...)

	var cmds []Command
	i := 0
	for i < len(d.buf) {
		n, cmd, complete := decodeOne(d.buf[i:])
		if !complete {
			break
		}
		if cmd.IsKey() {
			cmds = append(cmds, cmd)
		}
		i += n
	}

	// Compact buffer
	if i >= len(d.buf) {
		d.buf = d.buf[:0]
	} else if i > 0 {
		copy(d.buf, d.buf[i:])
		d.buf = d.buf[:len(d.buf)-i]
	}
	return cmds
}

// Idle is called when no more input arrived; a lone ESC becomes a keypress, other partials are dropped
func (d *Decoder) Idle() []Command {
	if len(d.buf) == 0 {
		return nil
	}
	lone := len(d.buf) == 1 && d.buf[0] == keyEscape
	d.buf = d.buf[:0]
	if lone {
		return []Command{Other}
	}
	return nil
}

// Pending reports how many bytes await completion
func (d *Decoder) Pending() int {
	return len(d.buf)
}

// decodeOne decodes the first key in data
// Returns bytes consumed, the command (None for swallowed input) and false when more bytes are needed
func decodeOne(data []byte) (int, Command, bool) {
	b := data[0]

	switch {
	case b == keyEscape:
		return decodeEscape(data)
	case b == keyCtrlC:
		return 1, Abort, true
	case b >= 0x20 && b < 0x7f:
		return 1, FromRune(rune(b)), true
	case b < 0x80:
		// Control characters and DEL
		return 1, Other, true
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return 0, None, false
	}
	_, size := utf8.DecodeRune(data)
	return size, Other, true
}

// decodeEscape handles ESC-prefixed input
// Arrow keys arrive as CSI (ESC [ A) or SS3 (ESC O A); anything else is swallowed
func decodeEscape(data []byte) (int, Command, bool) {
	if len(data) < 2 {
		return 0, None, false
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, None, false
		}
		if h, ok := arrowHeading(data[2]); ok {
			return 3, Steer(h), true
		}
		return 3, None, true
	case keyEscape:
		// ESC ESC: drop the first, let the second start a new sequence
		return 1, None, true
	}

	// Alt+key or garbage
	return 2, None, true
}

// decodeCSI scans ESC [ params final; only arrow finals produce a command
func decodeCSI(data []byte) (int, Command, bool) {
	end := 2
	for end < len(data) && end < maxCSILen {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			if h, ok := arrowHeading(b); ok {
				return end + 1, Steer(h), true
			}
			return end + 1, None, true
		}
		if b < 0x20 || b > 0x3f {
			// Not a parameter or intermediate byte, malformed
			return end, None, true
		}
		end++
	}
	if end >= maxCSILen {
		return end, None, true
	}
	return 0, None, false
}

func arrowHeading(b byte) (core.Heading, bool) {
	switch b {
	case 'A':
		return core.HeadingUp, true
	case 'B':
		return core.HeadingDown, true
	case 'C':
		return core.HeadingRight, true
	case 'D':
		return core.HeadingLeft, true
	}
	return core.Heading{}, false
}
