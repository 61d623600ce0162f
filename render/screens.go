package render

import (
	"fmt"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

// InstructionLines is the start screen
func InstructionLines(grid core.Grid, highScore int) []string {
	lines := []string{
		"=== SNAKE GAME - ENHANCED EDITION ===",
		"Controls: W/A/S/D or Arrow Keys",
		"Goal: Eat food (*) and collect powerups!",
		"",
		"Powerups:",
	}
	for _, e := range engine.Effects() {
		lines = append(lines, fmt.Sprintf("  %c - %s (%s)", e.Symbol(), e.Name(), effectHint(e)))
	}
	lines = append(lines,
		"",
		"Avoid walls, obstacles (#), and yourself!",
		fmt.Sprintf("Play Area: %dx%d", grid.Width, grid.Height),
		fmt.Sprintf("Current High Score: %d", highScore),
		"",
		"Press any key to start...",
	)
	return lines
}

// GameOverLines is the end-of-round screen
func GameOverLines(score, highScore int, newHigh bool) []string {
	lines := []string{
		"=== GAME OVER ===",
		fmt.Sprintf("Final Score: %d", score),
		fmt.Sprintf("High Score: %d", highScore),
	}
	if newHigh {
		lines = append(lines, "*** NEW HIGH SCORE! ***")
	}
	return append(lines, "", "Press R to restart or Q to quit")
}

// FarewellLines is printed to the restored terminal on exit
func FarewellLines(highScore int) []string {
	return []string{
		"Thanks for playing!",
		fmt.Sprintf("Final High Score: %d", highScore),
	}
}

// WriteScreen clears the display and writes lines from the top
func WriteScreen(w LineWriter, lines []string) {
	w.Clear()
	for row, line := range lines {
		w.WriteLine(row, line)
	}
	w.Flush()
}

func effectHint(e engine.Effect) string {
	switch e.(type) {
	case engine.SpeedBoost:
		return "faster movement"
	case engine.SlowDown:
		return "easier control"
	case engine.ScoreDouble:
		return "2x points"
	case engine.Invincibility:
		return "can't die"
	case engine.Shrink:
		return "remove tail segment"
	}
	return ""
}
