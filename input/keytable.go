package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-snake/core"
)

// runeBindings maps printable keys to commands, both cases bound
var runeBindings = map[rune]Command{
	'w': Steer(core.HeadingUp),
	'W': Steer(core.HeadingUp),
	's': Steer(core.HeadingDown),
	'S': Steer(core.HeadingDown),
	'a': Steer(core.HeadingLeft),
	'A': Steer(core.HeadingLeft),
	'd': Steer(core.HeadingRight),
	'D': Steer(core.HeadingRight),
	'q': Quit,
	'Q': Quit,
	'r': Restart,
	'R': Restart,
}

// tcellKeys maps tcell special keys to commands
var tcellKeys = map[tcell.Key]Command{
	tcell.KeyUp:    Steer(core.HeadingUp),
	tcell.KeyDown:  Steer(core.HeadingDown),
	tcell.KeyLeft:  Steer(core.HeadingLeft),
	tcell.KeyRight: Steer(core.HeadingRight),
	tcell.KeyCtrlC: Abort,
}

// FromRune maps a printable key; unbound runes decode to Other
func FromRune(r rune) Command {
	if cmd, ok := runeBindings[r]; ok {
		return cmd
	}
	return Other
}

// FromTcell maps a tcell key event
func FromTcell(ev *tcell.EventKey) Command {
	if ev == nil {
		return None
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return Abort
		}
		return FromRune(ev.Rune())
	}
	if cmd, ok := tcellKeys[ev.Key()]; ok {
		return cmd
	}
	return Other
}
