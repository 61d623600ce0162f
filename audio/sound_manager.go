package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// BeepPlayer synthesises cues through the system speaker
type BeepPlayer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool
}

// NewBeepPlayer creates a player; nothing is audible until Initialize succeeds
func NewBeepPlayer(cfg *AudioConfig) *BeepPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &BeepPlayer{
		cfg:   cfg,
		cache: newSoundCache(cfg),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	p.cache.preload()
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes the cue in; a no-op before Initialize
func (p *BeepPlayer) Play(cue core.Cue) {
	p.mu.Lock()
	ready := p.initialized
	p.mu.Unlock()
	if !ready {
		return
	}

	buf := p.cache.get(cue)
	if buf == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
