package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
	AudioPrecision  = 2 // bytes per sample

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain, 0..1
	AudioMasterVolume = 0.5
)

// Terminal bell patterns: count and gap per cue
const (
	BellEatCount       = 1
	BellPowerUpCount   = 2
	BellPowerUpGap     = 50 * time.Millisecond
	BellGameOverCount  = 3
	BellGameOverGap    = 100 * time.Millisecond
	BellCollisionCount = 1
)

// Eat Sound
const (
	EatSoundFreq     = 880.0 // A5
	EatSoundDuration = 70 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 40 * time.Millisecond
)

// PowerUp Sound: two rising square notes
const (
	PowerUpNote1Freq     = 987.77  // B5
	PowerUpNote2Freq     = 1318.51 // E6
	PowerUpNote1Duration = 80 * time.Millisecond
	PowerUpNote2Duration = 220 * time.Millisecond
	PowerUpSoundAttack   = 5 * time.Millisecond
	PowerUpNote1Release  = 40 * time.Millisecond
	PowerUpNote2Release  = 160 * time.Millisecond
)

// GameOver Sound: three falling saw notes
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 120 * time.Millisecond
)

// GameOverNotes are the descending pitches of the game over phrase
var GameOverNotes = [...]float64{392.00, 329.63, 261.63} // G4 E4 C4

// Collision Sound: short noise burst
const (
	CollisionSoundDuration = 120 * time.Millisecond
	CollisionSoundAttack   = 2 * time.Millisecond
	CollisionSoundRelease  = 90 * time.Millisecond
)
