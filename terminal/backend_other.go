//go:build !unix

package terminal

// nullBackend stands in where raw stdin is unavailable; Init always fails
type nullBackend struct{}

func newBackend() Backend { return nullBackend{} }

func (nullBackend) Init() error                     { return ErrNotTerminal }
func (nullBackend) Fini()                           {}
func (nullBackend) Size() (int, int)                { return fallbackWidth, fallbackHeight }
func (nullBackend) Write([]byte) error              { return ErrNotTerminal }
func (nullBackend) Read(int) ([]byte, error)        { return nil, nil }
func (nullBackend) SetResizeHandler(func(int, int)) {}

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)
