package parameter

import "time"

// Playfield sizing, derived from terminal size and clamped
const (
	// GridMaxWidth is the widest playfield regardless of terminal width
	GridMaxWidth = 60
	// GridMaxHeight is the tallest playfield regardless of terminal height
	GridMaxHeight = 30
	GridMinWidth  = 20
	GridMinHeight = 15

	// GridChromeColumns is the horizontal space reserved outside the playfield (borders, margin)
	GridChromeColumns = 4
	// GridChromeRows is the vertical space reserved for borders and status lines
	GridChromeRows = 10
)

// Snake
const (
	// SnakeMinLength is the floor enforced by shrink
	SnakeMinLength = 3
)

// Obstacles
const (
	// ObstacleCellsPerSample: one obstacle sample per this many grid cells
	ObstacleCellsPerSample = 50
	// ObstacleSpawnClearance is the per-axis distance an obstacle must keep from the snake start
	ObstacleSpawnClearance = 3
)

// Food
const (
	DefaultMaxFoods = 3
	PointsPerFood   = 1
	// DoubleScoreMultiplier applies while the double score timer runs
	DoubleScoreMultiplier = 2
)

// Power-ups
const (
	InitialPowerUps = 2
	// PowerUpSpawnInterval is the tick period between periodic spawns
	PowerUpSpawnInterval = 150
	// MaxPowerUps caps the living set, oldest evicted first
	MaxPowerUps = 3
	// PowerUpEffectTicks is the duration of every timed effect
	PowerUpEffectTicks = 100
)

// Placement
const (
	// MaxPlacementAttempts bounds rejection sampling before falling back to a scan
	MaxPlacementAttempts = 10000
)

// Timing
const (
	// BaseTickInterval is the unmodified delay between ticks
	BaseTickInterval = 120 * time.Millisecond
	// KeyWaitPoll is the polling delay while blocked on a menu screen
	KeyWaitPoll = 10 * time.Millisecond
)
