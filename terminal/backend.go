package terminal

// Backend abstracts the raw byte stream under ANSIDisplay
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved terminal mode
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read returns whatever input arrives within timeoutMs; nil on timeout
	// timeoutMs of 0 never blocks
	Read(timeoutMs int) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
