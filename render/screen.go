package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

// Glyphs
const (
	GlyphEmpty    = ' '
	GlyphObstacle = '#'
	GlyphFood     = '*'
	GlyphHead     = 'O'
	GlyphBody     = 'o'
	GlyphCorner   = '+'
	GlyphHoriz    = '-'
	GlyphVert     = '|'
)

// ControlsLine is the fixed help line under the status lines
const ControlsLine = "Controls: W/A/S/D or Arrow Keys | Q to quit"

// LineWriter receives whole screen rows; terminal displays implement it
type LineWriter interface {
	Clear()
	WriteLine(row int, text string)
	Flush()
}

// Screen is a double-buffered text frame: border, grid rows, then status lines
// Compose rebuilds the current frame; Present emits only rows that differ from the last presented frame
type Screen struct {
	grid  core.Grid
	cells [][]byte // playfield rows without border
	lines []string
	prev  []string
}

// Row layout
const (
	statusScoreOffset   = 0
	statusEffectsOffset = 1
	statusControlOffset = 2
	statusLineCount     = 3
)

// NewScreen allocates a frame for grid with an empty playfield
func NewScreen(grid core.Grid) *Screen {
	s := &Screen{
		grid:  grid,
		cells: make([][]byte, grid.Height),
		lines: make([]string, grid.Height+2+statusLineCount),
	}
	for y := range s.cells {
		s.cells[y] = make([]byte, grid.Width)
	}

	border := string(GlyphCorner) + strings.Repeat(string(GlyphHoriz), grid.Width) + string(GlyphCorner)
	s.lines[0] = border
	s.lines[grid.Height+1] = border
	s.clearCells()
	s.syncRows()
	s.lines[s.statusRow(statusControlOffset)] = ControlsLine

	s.prev = make([]string, len(s.lines))
	copy(s.prev, s.lines)
	return s
}

// Compose redraws the frame from round state
// Draw order: obstacles, food, active power-ups, snake; later layers win a shared cell
func (s *Screen) Compose(r *engine.Round, highScore int) {
	s.clearCells()

	for _, p := range r.Obstacles().Positions() {
		s.set(p, GlyphObstacle)
	}
	for _, p := range r.Foods().Positions() {
		s.set(p, GlyphFood)
	}
	for _, pu := range r.PowerUps().Items() {
		if pu.Active {
			s.set(pu.Pos, byte(pu.Effect.Symbol()))
		}
	}
	for i, p := range r.Snake().Body() {
		if i == 0 {
			s.set(p, GlyphHead)
		} else {
			s.set(p, GlyphBody)
		}
	}
	s.syncRows()

	s.lines[s.statusRow(statusScoreOffset)] = fmt.Sprintf("Score: %d | High Score: %d", r.Score(), highScore)
	s.lines[s.statusRow(statusEffectsOffset)] = effectsLine(r)
}

// Diff returns the rows that differ from the last presented frame
func (s *Screen) Diff() []int {
	var rows []int
	for i := range s.lines {
		if s.lines[i] != s.prev[i] {
			rows = append(rows, i)
		}
	}
	return rows
}

// Present writes changed rows and records them as presented
// Returns the number of rows written
func (s *Screen) Present(w LineWriter) int {
	rows := s.Diff()
	for _, row := range rows {
		w.WriteLine(row, s.lines[row])
		s.prev[row] = s.lines[row]
	}
	if len(rows) > 0 {
		w.Flush()
	}
	return len(rows)
}

// PresentFull clears the terminal and writes every row
func (s *Screen) PresentFull(w LineWriter) {
	w.Clear()
	for row, line := range s.lines {
		w.WriteLine(row, line)
	}
	w.Flush()
	copy(s.prev, s.lines)
}

// Lines returns the current frame; callers must not modify it
func (s *Screen) Lines() []string {
	return s.lines
}

func (s *Screen) statusRow(offset int) int {
	return s.grid.Height + 2 + offset
}

func (s *Screen) set(p core.Point, glyph byte) {
	if !s.grid.Contains(p) {
		return
	}
	s.cells[p.Y][p.X] = glyph
}

func (s *Screen) clearCells() {
	for _, row := range s.cells {
		for x := range row {
			row[x] = GlyphEmpty
		}
	}
}

func (s *Screen) syncRows() {
	var sb strings.Builder
	for y, row := range s.cells {
		sb.Reset()
		sb.Grow(len(row) + 2)
		sb.WriteByte(GlyphVert)
		sb.Write(row)
		sb.WriteByte(GlyphVert)
		s.lines[y+1] = sb.String()
	}
}

func effectsLine(r *engine.Round) string {
	st := r.State()

	var sb strings.Builder
	sb.WriteString("Active Effects:")
	n := 0
	if st.Invincible() {
		fmt.Fprintf(&sb, " [INVINCIBLE:%d]", st.InvincibleTicksLeft)
		n++
	}
	if st.DoubleScore() {
		fmt.Fprintf(&sb, " [DOUBLE SCORE:%d]", st.DoubleScoreTicksLeft)
		n++
	}
	switch r.SpeedModifier() {
	case -1:
		sb.WriteString(" [SPEED BOOST]")
		n++
	case 1:
		sb.WriteString(" [SLOW MOTION]")
		n++
	}
	if n == 0 {
		sb.WriteString(" None")
	}
	return sb.String()
}
