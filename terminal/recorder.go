package terminal

import (
	"sync"

	"github.com/lixenwraith/term-snake/input"
)

// Recorder is an in-memory Display
// Keys are scripted with Push; written rows and flushed frames are kept for inspection
type Recorder struct {
	mu sync.Mutex

	width, height int
	rows          []string
	keys          []input.Command
	idle          func()
	stats         RecorderStats
}

// RecorderStats counts calls made on a Recorder
type RecorderStats struct {
	Writes  int // WriteLine calls
	Flushes int
	Clears  int
	Bells   int
	Inits   int
	Finis   int
}

// NewRecorder creates a recorder reporting the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		rows:   make([]string, height),
	}
}

// Push queues keys returned by subsequent Poll calls
func (r *Recorder) Push(cmds ...input.Command) {
	r.mu.Lock()
	r.keys = append(r.keys, cmds...)
	r.mu.Unlock()
}

// OnIdle registers a hook run when Poll finds the key queue empty
// Tests use it to script input against what is on screen
func (r *Recorder) OnIdle(fn func()) {
	r.mu.Lock()
	r.idle = fn
	r.mu.Unlock()
}

// Row returns the text last written to row
func (r *Recorder) Row(row int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row < 0 || row >= len(r.rows) {
		return ""
	}
	return r.rows[row]
}

// Rows returns a copy of every row
func (r *Recorder) Rows() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.rows))
	copy(out, r.rows)
	return out
}

// Stats returns a snapshot of the call counters
func (r *Recorder) Stats() RecorderStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Resize changes the reported size; existing rows are kept where they fit
func (r *Recorder) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	rows := make([]string, height)
	copy(rows, r.rows)
	r.rows = rows
}

func (r *Recorder) Init() error {
	r.mu.Lock()
	r.stats.Inits++
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Fini() {
	r.mu.Lock()
	r.stats.Finis++
	r.mu.Unlock()
}

func (r *Recorder) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *Recorder) Poll() input.Command {
	r.mu.Lock()
	if len(r.keys) == 0 {
		idle := r.idle
		r.mu.Unlock()
		if idle != nil {
			idle()
		}
		r.mu.Lock()
	}
	defer r.mu.Unlock()

	if len(r.keys) == 0 {
		return input.None
	}
	cmd := r.keys[0]
	r.keys = r.keys[1:]
	return cmd
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		r.rows[i] = ""
	}
	r.stats.Clears++
}

func (r *Recorder) WriteLine(row int, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Writes++
	if row < 0 || row >= len(r.rows) {
		return
	}
	r.rows[row] = text
}

func (r *Recorder) Flush() {
	r.mu.Lock()
	r.stats.Flushes++
	r.mu.Unlock()
}

func (r *Recorder) Bell() {
	r.mu.Lock()
	r.stats.Bells++
	r.mu.Unlock()
}
