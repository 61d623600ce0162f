package audio

import (
	"errors"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// Mode selects the audio backend
type Mode string

const (
	ModeBeep Mode = "beep" // Synthesised through the speaker
	ModeBell Mode = "bell" // Terminal bell patterns
	ModeOff  Mode = "off"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Mode          Mode
	MasterVolume  float64 // 0..1
	EffectVolumes map[core.Cue]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock settings: synthesised audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Mode:         ModeBeep,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[core.Cue]float64{
			core.CueEat:       0.8,
			core.CuePowerUp:   0.7,
			core.CueGameOver:  1.0,
			core.CueCollision: 0.6,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// ParseMode accepts a mode name or a boolean; true means beep
func ParseMode(s string) (Mode, error) {
	switch s {
	case string(ModeBeep), "true", "on", "1":
		return ModeBeep, nil
	case string(ModeBell):
		return ModeBell, nil
	case string(ModeOff), "false", "none", "0":
		return ModeOff, nil
	}
	return "", ErrUnknownMode
}

// Sentinel errors
var (
	ErrUnknownMode = errors.New("unknown audio mode")
)
