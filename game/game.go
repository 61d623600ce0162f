// Package game runs the session: instructions, rounds, game over and restart
package game

import (
	"context"
	"log"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/persistence"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/terminal"
)

// Game owns the collaborators and drives one session
type Game struct {
	cfg     *config.Config
	display terminal.Display
	player  audio.Player
	scores  *persistence.HighScores
	clock   Clock
	rng     engine.Rand

	round  *engine.Round
	static []string // Instruction or game over screen while waiting for a key
	rounds int
}

// Option customizes a Game
type Option func(*Game)

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithRand replaces the seeded generator
func WithRand(r engine.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// New wires a session; the display must already be initialized
func New(cfg *config.Config, display terminal.Display, player audio.Player, scores *persistence.HighScores, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		display: display,
		player:  player,
		scores:  scores,
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = engine.NewRand(cfg.Game.Seed)
	}
	if g.player == nil {
		g.player = audio.Silent{}
	}
	return g
}

// Run plays until the player quits, aborts or ctx is cancelled
// Cancellation is a normal exit and returns nil
func (g *Game) Run(ctx context.Context) error {
	high := g.scores.Load(ctx)

	cols, rows := g.display.Size()
	g.showStatic(render.InstructionLines(g.cfg.FitGrid(cols, rows), high))
	if cmd, ok := g.waitKey(ctx, input.Command.IsKey); !ok || cmd.Abort {
		return nil
	}

	for {
		cols, rows := g.display.Size()
		grid := g.cfg.FitGrid(cols, rows)
		g.round = engine.NewRound(g.cfg.RoundSettings(grid), g.rng)
		g.rounds++
		log.Printf("game: round %d on %dx%d", g.rounds, grid.Width, grid.Height)

		if aborted := g.playRound(ctx, g.scores.High()); aborted {
			return nil
		}

		score := g.round.Score()
		newHigh := g.scores.Submit(ctx, score)
		g.showStatic(render.GameOverLines(score, g.scores.High(), newHigh))

		cmd, ok := g.waitKey(ctx, func(c input.Command) bool {
			return c.Kind == input.CommandRestart || c.Kind == input.CommandQuit
		})
		if !ok || cmd.Abort || cmd.Kind == input.CommandQuit {
			g.round.Terminate()
			return nil
		}
	}
}

// playRound ticks the current round until it ends
// Returns true when the session must stop without a game over screen
func (g *Game) playRound(ctx context.Context, high int) bool {
	r := g.round
	screen := render.NewScreen(r.Grid())
	screen.Compose(r, high)
	screen.PresentFull(g.display)
	g.static = nil

	r.Start()
	for r.Phase() == engine.PhaseRunning {
		if ctx.Err() != nil {
			return true
		}

		cmd := g.display.Poll()
		if cmd.Abort {
			return true
		}

		out := r.Tick(cmd)
		for _, cue := range out.Cues {
			g.player.Play(cue)
		}
		if out.Over {
			log.Printf("game: round over score=%d collision=%v quit=%v ticks=%d",
				r.Score(), out.Collision, out.Quit, r.State().Ticks)
			return false
		}

		screen.Compose(r, high)
		if g.resized() {
			screen.PresentFull(g.display)
		} else {
			screen.Present(g.display)
		}

		if err := g.clock.Sleep(ctx, r.Interval()); err != nil {
			return true
		}
	}
	return false
}

// waitKey blocks until accept matches, Abort arrives or ctx ends
// ok is false only on cancellation
func (g *Game) waitKey(ctx context.Context, accept func(input.Command) bool) (input.Command, bool) {
	for {
		cmd := g.display.Poll()
		if cmd.Abort || accept(cmd) {
			return cmd, true
		}
		if g.resized() && g.static != nil {
			render.WriteScreen(g.display, g.static)
		}
		if err := g.clock.Sleep(ctx, parameter.KeyWaitPoll); err != nil {
			return input.None, false
		}
	}
}

func (g *Game) showStatic(lines []string) {
	g.static = lines
	render.WriteScreen(g.display, lines)
}

func (g *Game) resized() bool {
	if rs, ok := g.display.(terminal.Resizer); ok {
		return rs.Resized()
	}
	return false
}

// HighScore returns the session high score
func (g *Game) HighScore() int {
	return g.scores.High()
}

// Rounds returns how many rounds were started
func (g *Game) Rounds() int {
	return g.rounds
}
