package engine

// Effect is the closed set of power-up kinds
// Each variant carries its own rule change; the unexported method keeps the set sealed
type Effect interface {
	Symbol() rune
	Name() string
	apply(r *Round, pu *PowerUp)
}

// Effect variants
type (
	SpeedBoost    struct{} // Halves the tick interval while its timer runs
	SlowDown      struct{} // Doubles the tick interval while its timer runs
	ScoreDouble   struct{} // Food is worth double while the score timer runs
	Invincibility struct{} // Collisions are ignored while the invincible timer runs
	Shrink        struct{} // Drops one tail segment, floor respected
)

// effectKinds lists every variant; spawns choose uniformly from it
var effectKinds = [...]Effect{
	SpeedBoost{},
	SlowDown{},
	ScoreDouble{},
	Invincibility{},
	Shrink{},
}

// Effects returns all power-up kinds in spawn order
func Effects() []Effect {
	return effectKinds[:]
}

func (SpeedBoost) Symbol() rune { return 'S' }
func (SpeedBoost) Name() string { return "Speed Boost" }
func (SpeedBoost) apply(r *Round, pu *PowerUp) {
	r.state.Interval = r.state.BaseInterval / 2
	pu.RemainingTime = r.settings.EffectTicks
}

func (SlowDown) Symbol() rune { return 'L' }
func (SlowDown) Name() string { return "Slow Motion" }
func (SlowDown) apply(r *Round, pu *PowerUp) {
	r.state.Interval = r.state.BaseInterval * 2
	pu.RemainingTime = r.settings.EffectTicks
}

func (ScoreDouble) Symbol() rune { return 'D' }
func (ScoreDouble) Name() string { return "Double Score" }
func (ScoreDouble) apply(r *Round, _ *PowerUp) {
	r.state.DoubleScoreTicksLeft = r.settings.EffectTicks
}

func (Invincibility) Symbol() rune { return 'I' }
func (Invincibility) Name() string { return "Invincibility" }
func (Invincibility) apply(r *Round, _ *PowerUp) {
	r.state.InvincibleTicksLeft = r.settings.EffectTicks
}

func (Shrink) Symbol() rune { return 'R' }
func (Shrink) Name() string { return "Shrink" }
func (Shrink) apply(r *Round, _ *PowerUp) {
	r.snake.ShrinkTail()
}
