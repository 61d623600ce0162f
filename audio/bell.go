package audio

import (
	"sync"
	"time"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// Beller rings a terminal bell; terminal displays implement it
type Beller interface {
	Bell()
}

type bellPattern struct {
	count int
	gap   time.Duration
}

var bellPatterns = [core.CueCount]bellPattern{
	core.CueEat:       {parameter.BellEatCount, 0},
	core.CuePowerUp:   {parameter.BellPowerUpCount, parameter.BellPowerUpGap},
	core.CueGameOver:  {parameter.BellGameOverCount, parameter.BellGameOverGap},
	core.CueCollision: {parameter.BellCollisionCount, 0},
}

// BellPlayer plays cues as terminal bell patterns
// Patterns run on their own goroutine so gaps never stall the game loop
type BellPlayer struct {
	bell  Beller
	sleep func(time.Duration)
	wg    sync.WaitGroup
}

// NewBellPlayer creates a bell player ringing b
func NewBellPlayer(b Beller) *BellPlayer {
	return &BellPlayer{bell: b, sleep: time.Sleep}
}

func (p *BellPlayer) Play(cue core.Cue) {
	if cue >= core.CueCount || p.bell == nil {
		return
	}
	pat := bellPatterns[cue]

	p.wg.Add(1)
	core.Go(func() {
		defer p.wg.Done()
		for i := 0; i < pat.count; i++ {
			if i > 0 {
				p.sleep(pat.gap)
			}
			p.bell.Bell()
		}
	})
}

// Close waits for patterns still ringing
func (p *BellPlayer) Close() {
	p.wg.Wait()
}
