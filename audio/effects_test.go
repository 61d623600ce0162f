package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/term-snake/core"
)

// drain streams s to exhaustion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewTone(Sine, 440.0, 100*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// Square only emits full-scale values
func TestToneSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewTone(Square, 220.0, 50*time.Millisecond, rate)

	for i, s := range drain(osc) {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	got := len(drain(NewTone(Noise, 300, d, rate)))
	if got != rate.N(d) {
		t.Errorf("Expected %d samples, got %d", rate.N(d), got)
	}
}

// Attack starts silent, release ends near silent
func TestRampShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	osc := NewTone(Square, 0, d, rate) // Phase stays 0: constant +1
	env := NewRamp(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate)

	out := drain(env)
	if len(out) != rate.N(d) {
		t.Fatalf("Expected %d samples, got %d", rate.N(d), len(out))
	}
	if out[0][0] != 0 {
		t.Errorf("Attack should start at zero, got %f", out[0][0])
	}
	if mid := out[len(out)/2][0]; mid != 1.0 {
		t.Errorf("Sustain should be full scale, got %f", mid)
	}
	if last := out[len(out)-1][0]; last > 0.01 {
		t.Errorf("Release should end near zero, got %f", last)
	}
}

// Zero gain must not become Log2(0) = -Inf
func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewTone(Square, 0, 10*time.Millisecond, rate), 0)
	for _, v := range drain(s) {
		if v[0] != 0 || math.IsNaN(v[0]) {
			t.Fatalf("Expected silence, got %f", v[0])
		}
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		t.Run(cue.String(), func(t *testing.T) {
			s := GetSoundEffect(cue, cfg)
			if s == nil {
				t.Fatal("Expected streamer")
			}
			out := drain(s)
			if len(out) == 0 {
				t.Fatal("Expected samples")
			}
			if len(out) > cfg.SampleRate {
				t.Errorf("Cue longer than a second: %d samples", len(out))
			}
			for i, v := range out {
				if math.Abs(v[0]) > 1.0 {
					t.Fatalf("Sample %d clips: %f", i, v[0])
				}
			}
		})
	}

	if GetSoundEffect(core.CueCount, cfg) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestSoundCache(t *testing.T) {
	c := newSoundCache(DefaultAudioConfig())
	c.preload()

	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		buf := c.get(cue)
		if buf == nil || buf.Len() == 0 {
			t.Fatalf("Expected rendered buffer for %v", cue)
		}
		if again := c.get(cue); again != buf {
			t.Errorf("Expected cached buffer for %v", cue)
		}
	}
	if c.get(core.CueCount) != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestRampTruncatesLongerSource(t *testing.T) {
	rate := beep.SampleRate(44100)
	src := NewTone(Sine, 440, time.Second, rate)
	d := 30 * time.Millisecond
	if got := len(drain(NewRamp(src, d, 0, 0, rate))); got != rate.N(d) {
		t.Errorf("Expected %d samples, got %d", rate.N(d), got)
	}
}
