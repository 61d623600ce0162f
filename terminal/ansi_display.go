package terminal

import (
	"bufio"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/term-snake/input"
)

// escapeWaitMs is how long Poll waits for the rest of a split escape sequence
const escapeWaitMs = 25

// ANSIDisplay drives the terminal with direct ANSI sequences over a raw Backend
type ANSIDisplay struct {
	backend Backend
	decoder *input.Decoder
	queue   []input.Command

	mu     sync.Mutex
	writer *bufio.Writer

	resized     atomic.Bool
	initialized bool
	finalized   bool
}

// NewANSIDisplay wraps a backend; nothing touches the terminal until Init
func NewANSIDisplay(b Backend) *ANSIDisplay {
	d := &ANSIDisplay{
		backend: b,
		decoder: input.NewDecoder(),
	}
	d.writer = bufio.NewWriterSize(backendWriter{b}, 8192)
	return d
}

// backendWriter adapts Backend.Write to io.Writer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *ANSIDisplay) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}
	if err := d.backend.Init(); err != nil {
		return err
	}
	d.backend.SetResizeHandler(func(int, int) {
		d.resized.Store(true)
	})

	d.writer.Write(csiAltScreenEnter)
	d.writer.Write(csiCursorHide)
	d.writer.Write(csiAutoWrapOff)
	d.writer.Write(csiClear)
	d.writer.Flush()

	d.initialized = true
	return nil
}

func (d *ANSIDisplay) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}

	d.writer.Write(csiCursorShow)
	d.writer.Write(csiAltScreenExit)
	// Wrap back on after leaving the alt screen so the main buffer keeps it
	d.writer.Write(csiAutoWrapOn)
	d.writer.Write(csiSGR0)
	d.writer.Flush()

	d.backend.Fini()
	d.finalized = true
}

func (d *ANSIDisplay) Size() (int, int) {
	return d.backend.Size()
}

// Poll drains available stdin bytes through the decoder and returns one command
func (d *ANSIDisplay) Poll() input.Command {
	if len(d.queue) == 0 {
		d.fill()
	}
	if len(d.queue) == 0 {
		return input.None
	}
	cmd := d.queue[0]
	d.queue = d.queue[1:]
	return cmd
}

func (d *ANSIDisplay) fill() {
	data, err := d.backend.Read(0)
	if err != nil {
		log.Printf("ansi: %v", err)
		return
	}
	if len(data) > 0 {
		d.queue = append(d.queue, d.decoder.Feed(data)...)
	}
	if len(d.queue) > 0 || d.decoder.Pending() == 0 {
		return
	}

	// Partial sequence: give the terminal a moment to deliver the tail
	data, err = d.backend.Read(escapeWaitMs)
	if err != nil {
		log.Printf("ansi: %v", err)
	}
	if len(data) > 0 {
		d.queue = append(d.queue, d.decoder.Feed(data)...)
	}
	if d.decoder.Pending() > 0 {
		d.queue = append(d.queue, d.decoder.Idle()...)
	}
}

func (d *ANSIDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writer.Write(csiClear)
}

func (d *ANSIDisplay) WriteLine(row int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	writeCursorPos(d.writer, 0, row)
	d.writer.WriteString(text)
	d.writer.Write(csiClearEOL)
}

func (d *ANSIDisplay) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writer.Flush(); err != nil {
		log.Printf("ansi: flush: %v", err)
	}
}

// Bell is written immediately; pending frame output is flushed with it
func (d *ANSIDisplay) Bell() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writer.Write(bell)
	d.writer.Flush()
}

func (d *ANSIDisplay) Resized() bool {
	return d.resized.Swap(false)
}
