package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
)

// lineLog records LineWriter calls
type lineLog struct {
	rows    []int
	clears  int
	flushes int
}

func (l *lineLog) Clear()                      { l.clears++ }
func (l *lineLog) WriteLine(row int, _ string) { l.rows = append(l.rows, row) }
func (l *lineLog) Flush()                      { l.flushes++ }

func newTestRound(grid core.Grid) *engine.Round {
	settings := engine.DefaultSettings(grid)
	settings.MaxFoods = 0
	settings.InitialPowerUps = 0
	return engine.NewRound(settings, engine.NewRand(3))
}

func TestNewScreenLayout(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 15}
	s := NewScreen(grid)
	lines := s.Lines()

	if len(lines) != grid.Height+2+3 {
		t.Fatalf("Expected %d lines, got %d", grid.Height+5, len(lines))
	}
	border := "+" + strings.Repeat("-", grid.Width) + "+"
	if lines[0] != border || lines[grid.Height+1] != border {
		t.Errorf("Borders wrong: %q / %q", lines[0], lines[grid.Height+1])
	}
	for y := 1; y <= grid.Height; y++ {
		if len(lines[y]) != grid.Width+2 || lines[y][0] != '|' || lines[y][grid.Width+1] != '|' {
			t.Errorf("Row %d malformed: %q", y, lines[y])
		}
	}
	if lines[len(lines)-1] != ControlsLine {
		t.Errorf("Expected controls line last, got %q", lines[len(lines)-1])
	}
	if len(s.Diff()) != 0 {
		t.Errorf("Fresh screen should have no diff")
	}
}

func TestComposeDrawsSnakeAndStatus(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 15}
	r := newTestRound(grid)
	s := NewScreen(grid)
	s.Compose(r, 7)
	lines := s.Lines()

	head := r.Snake().Head()
	if got := lines[head.Y+1][head.X+1]; got != GlyphHead {
		t.Errorf("Expected head glyph at %+v, got %q", head, got)
	}
	for _, p := range r.Snake().Body()[1:] {
		if got := lines[p.Y+1][p.X+1]; got != GlyphBody {
			t.Errorf("Expected body glyph at %+v, got %q", p, got)
		}
	}
	for _, p := range r.Obstacles().Positions() {
		if got := lines[p.Y+1][p.X+1]; got != GlyphObstacle {
			t.Errorf("Expected obstacle at %+v, got %q", p, got)
		}
	}

	if want := "Score: 0 | High Score: 7"; lines[grid.Height+2] != want {
		t.Errorf("Expected %q, got %q", want, lines[grid.Height+2])
	}
	if want := "Active Effects: None"; lines[grid.Height+3] != want {
		t.Errorf("Expected %q, got %q", want, lines[grid.Height+3])
	}
}

func TestComposeDrawsItems(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 15}
	settings := engine.DefaultSettings(grid)
	r := engine.NewRound(settings, engine.NewRand(9))
	s := NewScreen(grid)
	s.Compose(r, 0)
	lines := s.Lines()

	for _, p := range r.Foods().Positions() {
		if got := lines[p.Y+1][p.X+1]; got != GlyphFood {
			t.Errorf("Expected food at %+v, got %q", p, got)
		}
	}
	for _, pu := range r.PowerUps().Items() {
		if got := rune(lines[pu.Pos.Y+1][pu.Pos.X+1]); got != pu.Effect.Symbol() {
			t.Errorf("Expected %c at %+v, got %c", pu.Effect.Symbol(), pu.Pos, got)
		}
	}
}

func TestPresentWritesOnlyChangedRows(t *testing.T) {
	grid := core.Grid{Width: 20, Height: 15}
	r := newTestRound(grid)
	r.Start()
	s := NewScreen(grid)

	s.Compose(r, 0)
	var full lineLog
	s.PresentFull(&full)
	if full.clears != 1 || len(full.rows) != len(s.Lines()) {
		t.Fatalf("Full present should clear and write all rows, got %d clears %d rows", full.clears, len(full.rows))
	}

	// Nothing changed
	s.Compose(r, 0)
	var idle lineLog
	if n := s.Present(&idle); n != 0 || idle.flushes != 0 {
		t.Errorf("Expected no writes for identical frame, got %d rows %d flushes", n, idle.flushes)
	}

	// Moving right along one row touches exactly that grid row
	r.Tick(input.None)
	s.Compose(r, 0)
	var moved lineLog
	n := s.Present(&moved)
	headRow := r.Snake().Head().Y + 1
	if n != 1 || len(moved.rows) != 1 || moved.rows[0] != headRow {
		t.Errorf("Expected only row %d rewritten, got %v", headRow, moved.rows)
	}
	if moved.clears != 0 || moved.flushes != 1 {
		t.Errorf("Expected one flush and no clear, got %d/%d", moved.flushes, moved.clears)
	}

	if len(s.Diff()) != 0 {
		t.Errorf("Present should leave no pending diff")
	}
}

func TestInstructionLines(t *testing.T) {
	lines := InstructionLines(core.Grid{Width: 60, Height: 30}, 12)
	text := strings.Join(lines, "\n")

	for _, want := range []string{
		"S - Speed Boost",
		"L - Slow Motion",
		"D - Double Score",
		"I - Invincibility",
		"R - Shrink",
		"Play Area: 60x30",
		"Current High Score: 12",
		"Press any key to start...",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Instructions missing %q", want)
		}
	}
}

func TestGameOverLines(t *testing.T) {
	tests := []struct {
		name    string
		newHigh bool
	}{
		{"Regular", false},
		{"New high", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Join(GameOverLines(5, 9, tt.newHigh), "\n")
			if !strings.Contains(text, "Final Score: 5") || !strings.Contains(text, "High Score: 9") {
				t.Errorf("Missing scores in %q", text)
			}
			if got := strings.Contains(text, "NEW HIGH SCORE!"); got != tt.newHigh {
				t.Errorf("NEW HIGH SCORE shown=%v, want %v", got, tt.newHigh)
			}
			if !strings.Contains(text, "Press R to restart or Q to quit") {
				t.Errorf("Missing prompt")
			}
		})
	}
}
