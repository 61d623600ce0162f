package audio

import (
	"log"

	"github.com/lixenwraith/term-snake/core"
)

// Player renders audio cues
type Player interface {
	Play(cue core.Cue)
	Close()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(core.Cue) {}
func (Silent) Close()        {}

// NewPlayer builds the player for cfg
// A speaker that fails to open degrades to the terminal bell
func NewPlayer(cfg *AudioConfig, bell Beller) Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}

	switch cfg.Mode {
	case ModeOff:
		return Silent{}
	case ModeBell:
		return NewBellPlayer(bell)
	}

	p := NewBeepPlayer(cfg)
	if err := p.Initialize(); err != nil {
		log.Printf("audio: speaker unavailable, using terminal bell: %v", err)
		return NewBellPlayer(bell)
	}
	return p
}
