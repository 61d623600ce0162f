package core

// Cue names a feedback event the simulation asks the audio layer to play
type Cue uint8

const (
	CueEat       Cue = iota // Food eaten
	CuePowerUp              // Power-up collected
	CueGameOver             // Round lost
	CueCollision            // Wall, self or obstacle hit
	CueCount
)

var cueNames = [CueCount]string{
	CueEat:       "eat",
	CuePowerUp:   "powerup",
	CueGameOver:  "gameover",
	CueCollision: "collision",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}
