package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/parameter"
)

// Phase is the round lifecycle state
type Phase uint8

const (
	PhaseReady      Phase = iota // Waiting for the first key
	PhaseRunning                 // Ticking
	PhaseGameOver                // Lost or quit, waiting for restart/quit
	PhaseTerminated              // Player chose to leave
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

// Collision identifies what ended a round
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionObstacle
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionObstacle:
		return "obstacle"
	}
	return "none"
}

// Settings are the per-round tunables
type Settings struct {
	Grid                 core.Grid
	BaseInterval         time.Duration
	MaxFoods             int
	InitialPowerUps      int
	MaxPowerUps          int
	PowerUpSpawnInterval int
	EffectTicks          int
}

// DefaultSettings returns the stock tunables for a grid
func DefaultSettings(grid core.Grid) Settings {
	return Settings{
		Grid:                 grid,
		BaseInterval:         parameter.BaseTickInterval,
		MaxFoods:             parameter.DefaultMaxFoods,
		InitialPowerUps:      parameter.InitialPowerUps,
		MaxPowerUps:          parameter.MaxPowerUps,
		PowerUpSpawnInterval: parameter.PowerUpSpawnInterval,
		EffectTicks:          parameter.PowerUpEffectTicks,
	}
}

// RoundState is the mutable scalar state of one round
type RoundState struct {
	Phase                Phase
	Score                int
	Ticks                int
	BaseInterval         time.Duration
	Interval             time.Duration
	InvincibleTicksLeft  int
	DoubleScoreTicksLeft int
}

// Invincible reports whether collisions are currently ignored
func (s RoundState) Invincible() bool { return s.InvincibleTicksLeft > 0 }

// DoubleScore reports whether food is worth double
func (s RoundState) DoubleScore() bool { return s.DoubleScoreTicksLeft > 0 }

// Outcome reports what one tick did
type Outcome struct {
	Cues      []core.Cue
	Ate       bool
	Collected Effect
	Collision Collision
	Quit      bool
	Over      bool
}

// Round owns every piece of state for one game, from spawn to game over
type Round struct {
	settings Settings
	rng      Rand

	state     RoundState
	snake     *Snake
	obstacles *Obstacles
	foods     *FoodSet
	powerUps  *PowerUps
}

// NewRound lays out a fresh round in the Ready phase
// The snake spawns at the grid center; obstacles, food and the initial power-ups follow
func NewRound(settings Settings, rng Rand) *Round {
	start := settings.Grid.Center()

	r := &Round{
		settings: settings,
		rng:      rng,
		state: RoundState{
			Phase:        PhaseReady,
			BaseInterval: settings.BaseInterval,
			Interval:     settings.BaseInterval,
		},
		snake:    NewSnake(start),
		foods:    NewFoodSet(settings.MaxFoods),
		powerUps: NewPowerUps(settings.MaxPowerUps),
	}
	r.obstacles = GenerateObstacles(rng, settings.Grid, start)

	if err := r.foods.FillToCapacity(rng, settings.Grid, r.occupancy()); err != nil {
		log.Printf("round: food fill: %v", err)
	}
	for i := 0; i < settings.InitialPowerUps; i++ {
		if err := r.powerUps.SpawnOne(rng, settings.Grid, r.occupancy()); err != nil {
			log.Printf("round: initial power-up: %v", err)
			break
		}
	}
	return r
}

// Start moves a Ready round to Running
func (r *Round) Start() {
	if r.state.Phase == PhaseReady {
		r.state.Phase = PhaseRunning
	}
}

// Terminate marks a finished round as the last one
func (r *Round) Terminate() {
	if r.state.Phase == PhaseGameOver {
		r.state.Phase = PhaseTerminated
	}
}

// Tick advances a running round by one step
func (r *Round) Tick(cmd input.Command) Outcome {
	var out Outcome
	if r.state.Phase != PhaseRunning {
		return out
	}

	switch cmd.Kind {
	case input.CommandHeading:
		r.snake.SetHeading(cmd.Heading)
	case input.CommandQuit:
		r.state.Phase = PhaseGameOver
		out.Quit = true
		out.Over = true
		return out
	}

	r.snake.Advance()

	if c := r.checkCollision(); c != CollisionNone {
		r.state.Phase = PhaseGameOver
		out.Collision = c
		out.Over = true
		out.Cues = append(out.Cues, core.CueCollision, core.CueGameOver)
		return out
	}

	r.resolveFood(&out)
	r.resolvePowerUp(&out)
	r.decayTimers()

	r.state.Ticks++
	if r.settings.PowerUpSpawnInterval > 0 && r.state.Ticks%r.settings.PowerUpSpawnInterval == 0 {
		if err := r.powerUps.SpawnOne(r.rng, r.settings.Grid, r.occupancy()); err != nil {
			log.Printf("round: periodic power-up: %v", err)
		}
	}
	return out
}

// occupancy collects every cell a new item may not take
func (r *Round) occupancy() *Occupancy {
	occ := NewOccupancy(r.snake.Body()...)
	occ.Mark(r.obstacles.Positions()...)
	occ.Mark(r.foods.Positions()...)
	for _, pu := range r.powerUps.Items() {
		if pu.Active {
			occ.Mark(pu.Pos)
		}
	}
	return occ
}

func (r *Round) State() RoundState       { return r.state }
func (r *Round) Phase() Phase            { return r.state.Phase }
func (r *Round) Score() int              { return r.state.Score }
func (r *Round) Interval() time.Duration { return r.state.Interval }
func (r *Round) Grid() core.Grid         { return r.settings.Grid }
func (r *Round) Snake() *Snake           { return r.snake }
func (r *Round) Obstacles() *Obstacles   { return r.obstacles }
func (r *Round) Foods() *FoodSet         { return r.foods }
func (r *Round) PowerUps() *PowerUps     { return r.powerUps }

// SpeedModifier reports the current interval relative to base: <0 faster, >0 slower, 0 normal
func (r *Round) SpeedModifier() int {
	switch {
	case r.state.Interval < r.state.BaseInterval:
		return -1
	case r.state.Interval > r.state.BaseInterval:
		return 1
	}
	return 0
}
