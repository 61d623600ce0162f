package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/term-snake/core"
)

// Environment variables read by ApplyEnv
const (
	EnvAudio        = "SNAKE_AUDIO"
	EnvMasterVolume = "SNAKE_MASTER_VOLUME"
	EnvSFXVolumes   = "SNAKE_SFX_VOLUMES"
	EnvSampleRate   = "SNAKE_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables over the defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg with any SNAKE_* audio variables; malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if mode := os.Getenv(EnvAudio); mode != "" {
		if m, err := ParseMode(strings.ToLower(mode)); err == nil {
			cfg.Mode = m
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Per-cue volumes as JSON keyed by cue name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for cue := core.Cue(0); cue < core.CueCount; cue++ {
				if v, ok := volumes[cue.String()]; ok {
					cfg.EffectVolumes[cue] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
