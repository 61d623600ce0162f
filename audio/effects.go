package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/parameter"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

func Sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }
func Saw(p float64) float64  { return 2*p - 1 }
func Noise(float64) float64  { return rand.Float64()*2 - 1 }

func Square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

// tone streams a fixed number of samples of one wave at one pitch
type tone struct {
	wave      Wave
	step      float64 // phase advance per sample
	phase     float64
	remaining int
}

// NewTone returns a mono wave duplicated on both channels, d long
func NewTone(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{wave: wave, step: freq / float64(rate), remaining: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	n := min(len(samples), t.remaining)
	for i := 0; i < n; i++ {
		v := t.wave(t.phase)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.remaining -= n
	return n, n > 0
}

func (t *tone) Err() error { return nil }

// ramp fades its source in over attack and out over release, then ends
type ramp struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewRamp limits src to d and applies linear attack and release
func NewRamp(src beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &ramp{
		src:     src,
		total:   total,
		attack:  min(rate.N(attack), total),
		release: min(rate.N(release), total),
	}
}

func (r *ramp) gain() float64 {
	g := 1.0
	if r.attack > 0 && r.pos < r.attack {
		g = float64(r.pos) / float64(r.attack)
	}
	if left := r.total - r.pos; r.release > 0 && left <= r.release {
		g = min(g, float64(left)/float64(r.release))
	}
	return g
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	left := r.total - r.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := r.src.Stream(samples)
	for i := range samples[:n] {
		g := r.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.src.Err() }

// note is a shaped tone
func note(wave Wave, freq float64, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewRamp(NewTone(wave, freq, d, rate), d, attack, release, rate)
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func cueGain(cfg *AudioConfig, cue core.Cue) float64 {
	return cfg.EffectVolumes[cue] * cfg.MasterVolume
}

// CreateEatSound generates a short sine blip
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	src, err := generators.SineTone(rate, parameter.EatSoundFreq)
	if err != nil {
		// Frequency above Nyquist for this rate
		src = NewTone(Sine, parameter.EatSoundFreq, parameter.EatSoundDuration, rate)
	}
	blip := NewRamp(src, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	return newVolume(blip, cueGain(cfg, core.CueEat))
}

// CreatePowerUpSound generates a rising two-note chime
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	chime := beep.Seq(
		note(Square, parameter.PowerUpNote1Freq, parameter.PowerUpNote1Duration, parameter.PowerUpSoundAttack, parameter.PowerUpNote1Release, rate),
		note(Square, parameter.PowerUpNote2Freq, parameter.PowerUpNote2Duration, parameter.PowerUpSoundAttack, parameter.PowerUpNote2Release, rate),
	)

	// Square is harsh at full scale
	return newVolume(chime, 0.5*cueGain(cfg, core.CuePowerUp))
}

// CreateGameOverSound generates a falling three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	phrase := make([]beep.Streamer, 0, len(parameter.GameOverNotes))
	for _, freq := range parameter.GameOverNotes {
		phrase = append(phrase, note(Saw, freq, parameter.GameOverNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate))
	}

	return newVolume(beep.Seq(phrase...), cueGain(cfg, core.CueGameOver))
}

// CreateCollisionSound generates a noise thud
func CreateCollisionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	thud := note(Noise, 0, parameter.CollisionSoundDuration, parameter.CollisionSoundAttack, parameter.CollisionSoundRelease, rate)
	return newVolume(thud, cueGain(cfg, core.CueCollision))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueEat:
		return CreateEatSound(cfg)
	case core.CuePowerUp:
		return CreatePowerUpSound(cfg)
	case core.CueGameOver:
		return CreateGameOverSound(cfg)
	case core.CueCollision:
		return CreateCollisionSound(cfg)
	default:
		return nil
	}
}
