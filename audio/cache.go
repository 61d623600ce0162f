package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// soundCache stores pre-rendered cue buffers
// Buffers bake in the config volumes, so a cache belongs to one config
type soundCache struct {
	mu     sync.RWMutex
	cfg    *AudioConfig
	format beep.Format
	store  [core.CueCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: parameter.AudioChannels,
			Precision:   parameter.AudioPrecision,
		},
	}
}

// get returns the cached buffer or renders it on demand
func (c *soundCache) get(cue core.Cue) *beep.Buffer {
	if cue >= core.CueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[cue]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[cue] != nil {
		return c.store[cue]
	}

	s := GetSoundEffect(cue, c.cfg)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[cue] = buf
	return buf
}

// preload renders every cue so the first play has no synthesis delay
func (c *soundCache) preload() {
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		c.get(cue)
	}
}
