package engine

import (
	"log"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// checkCollision tests wall, self and obstacle in that order; invincibility suppresses all three
func (r *Round) checkCollision() Collision {
	if r.state.Invincible() {
		return CollisionNone
	}
	head := r.snake.Head()
	switch {
	case !r.settings.Grid.Contains(head):
		return CollisionWall
	case r.snake.HasSelfCollision():
		return CollisionSelf
	case r.obstacles.Contains(head):
		return CollisionObstacle
	}
	return CollisionNone
}

func (r *Round) resolveFood(out *Outcome) {
	if !r.foods.ConsumeAt(r.snake.Head()) {
		return
	}
	r.snake.MarkGrowing()

	points := parameter.PointsPerFood
	if r.state.DoubleScore() {
		points *= parameter.DoubleScoreMultiplier
	}
	r.state.Score += points
	out.Ate = true
	out.Cues = append(out.Cues, core.CueEat)

	if err := r.foods.SpawnOne(r.rng, r.settings.Grid, r.occupancy()); err != nil {
		log.Printf("round: food replenish: %v", err)
	}
}

func (r *Round) resolvePowerUp(out *Outcome) {
	pu := r.powerUps.Collect(r.snake.Head())
	if pu == nil {
		return
	}
	pu.Effect.apply(r, pu)
	out.Collected = pu.Effect
	out.Cues = append(out.Cues, core.CuePowerUp)
}

func (r *Round) decayTimers() {
	if r.state.InvincibleTicksLeft > 0 {
		r.state.InvincibleTicksLeft--
	}
	if r.state.DoubleScoreTicksLeft > 0 {
		r.state.DoubleScoreTicksLeft--
	}

	r.powerUps.Tick()
	if !r.powerUps.AnyEffectRunning() {
		r.state.Interval = r.state.BaseInterval
	}
}
