package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
)

// keyQueueSize bounds buffered keys; extra keys are dropped while the loop is behind
const keyQueueSize = 64

// TcellDisplay draws through a tcell screen
type TcellDisplay struct {
	screen tcell.Screen
	keys   chan input.Command

	resized  atomic.Bool
	initOnce sync.Once
	finiOnce sync.Once
	initErr  error
}

// NewTcellDisplay wraps screen; a nil screen is created on Init
func NewTcellDisplay(screen tcell.Screen) *TcellDisplay {
	return &TcellDisplay{
		screen: screen,
		keys:   make(chan input.Command, keyQueueSize),
	}
}

func (d *TcellDisplay) Init() error {
	d.initOnce.Do(func() {
		if d.screen == nil {
			s, err := tcell.NewScreen()
			if err != nil {
				d.initErr = fmt.Errorf("tcell screen: %w", err)
				return
			}
			d.screen = s
		}
		if err := d.screen.Init(); err != nil {
			d.initErr = fmt.Errorf("tcell init: %w", err)
			return
		}
		d.screen.HideCursor()
		d.screen.Clear()

		screen := d.screen
		core.Go(func() { d.pump(screen) })
	})
	return d.initErr
}

// pump forwards key events until the screen is finalized
func (d *TcellDisplay) pump(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := input.FromTcell(ev)
			if !cmd.IsKey() {
				continue
			}
			select {
			case d.keys <- cmd:
			default:
			}
		case *tcell.EventResize:
			d.resized.Store(true)
		}
	}
}

func (d *TcellDisplay) Fini() {
	if d.screen == nil || d.initErr != nil {
		return
	}
	d.finiOnce.Do(d.screen.Fini)
}

func (d *TcellDisplay) Size() (int, int) {
	if d.screen == nil {
		return 0, 0
	}
	return d.screen.Size()
}

func (d *TcellDisplay) Poll() input.Command {
	select {
	case cmd := <-d.keys:
		return cmd
	default:
		return input.None
	}
}

func (d *TcellDisplay) Clear() {
	d.screen.Clear()
}

func (d *TcellDisplay) WriteLine(row int, text string) {
	width, _ := d.screen.Size()
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		d.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < width; x++ {
		d.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

func (d *TcellDisplay) Flush() {
	d.screen.Show()
}

func (d *TcellDisplay) Bell() {
	// Error means the terminal has no bell
	_ = d.screen.Beep()
}

func (d *TcellDisplay) Resized() bool {
	if d.resized.Swap(false) {
		d.screen.Sync()
		return true
	}
	return false
}
