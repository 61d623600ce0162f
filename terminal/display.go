package terminal

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/term-snake/input"
)

var (
	// ErrNotTerminal is returned when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrUnknownBackend is returned by New for an unrecognized backend name
	ErrUnknownBackend = errors.New("unknown display backend")
)

// Display is the terminal collaborator of the game loop
type Display interface {
	// Init enters raw mode, alternate screen, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Poll returns the next buffered key without blocking; input.None when idle
	Poll() input.Command

	// Clear blanks the whole screen
	Clear()

	// WriteLine replaces row with text, clearing whatever followed it
	WriteLine(row int, text string)

	// Flush pushes pending output to the terminal
	Flush()

	// Bell rings the terminal bell
	Bell()
}

// Resizer is implemented by displays that observe terminal resizes
// Resized reports and clears the pending resize flag
type Resizer interface {
	Resized() bool
}

// Backend names accepted by New
const (
	BackendTcell  = "tcell"
	BackendANSI   = "ansi"
	BackendMemory = "memory"
)

// New returns an uninitialized display for the named backend
func New(backend string) (Display, error) {
	switch backend {
	case BackendTcell, "":
		return NewTcellDisplay(nil), nil
	case BackendANSI:
		return NewANSIDisplay(newBackend()), nil
	case BackendMemory:
		return NewRecorder(80, 40), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
