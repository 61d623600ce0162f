package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/persistence"
	"github.com/lixenwraith/term-snake/terminal"
)

// DefaultPath is the config file read when -config is not given
const DefaultPath = "snake.toml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the resolved runtime configuration
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Game    GameConfig    `toml:"game"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Storage StorageConfig `toml:"storage"`
	Debug   bool          `toml:"debug"`
}

// GridConfig bounds the play area derived from the terminal size
type GridConfig struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
	MinWidth  int `toml:"min_width"`
	MinHeight int `toml:"min_height"`
}

// GameConfig holds round tunables
type GameConfig struct {
	TickInterval         time.Duration `toml:"tick_interval"`
	MaxFoods             int           `toml:"max_foods"`
	InitialPowerUps      int           `toml:"initial_powerups"`
	MaxPowerUps          int           `toml:"max_powerups"`
	PowerUpSpawnInterval int           `toml:"powerup_spawn_interval"`
	EffectTicks          int           `toml:"effect_ticks"`
	Seed                 uint64        `toml:"seed"` // 0 seeds from the clock
}

type DisplayConfig struct {
	Backend string `toml:"backend"`
}

type AudioConfig struct {
	Mode   string `toml:"mode"`
	Volume int    `toml:"volume"` // 0-100
}

type StorageConfig struct {
	HighScoreFile string `toml:"highscore_file"`
	PostgresDSN   string `toml:"postgres_dsn"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			MaxWidth:  parameter.GridMaxWidth,
			MaxHeight: parameter.GridMaxHeight,
			MinWidth:  parameter.GridMinWidth,
			MinHeight: parameter.GridMinHeight,
		},
		Game: GameConfig{
			TickInterval:         parameter.BaseTickInterval,
			MaxFoods:             parameter.DefaultMaxFoods,
			InitialPowerUps:      parameter.InitialPowerUps,
			MaxPowerUps:          parameter.MaxPowerUps,
			PowerUpSpawnInterval: parameter.PowerUpSpawnInterval,
			EffectTicks:          parameter.PowerUpEffectTicks,
		},
		Display: DisplayConfig{Backend: terminal.BackendTcell},
		Audio: AudioConfig{
			Mode:   string(audio.ModeBeep),
			Volume: int(parameter.AudioMasterVolume * 100),
		},
		Storage: StorageConfig{HighScoreFile: persistence.DefaultFileName},
	}
}

// Validate reports the first out-of-range setting
func (c *Config) Validate() error {
	g := c.Grid
	switch {
	case g.MinWidth < 1 || g.MinHeight < 1:
		return fmt.Errorf("%w: grid minimum %dx%d must be positive", ErrInvalid, g.MinWidth, g.MinHeight)
	case g.MaxWidth < g.MinWidth || g.MaxHeight < g.MinHeight:
		return fmt.Errorf("%w: grid maximum %dx%d below minimum %dx%d", ErrInvalid, g.MaxWidth, g.MaxHeight, g.MinWidth, g.MinHeight)
	case g.MinWidth < parameter.SnakeMinLength+1:
		return fmt.Errorf("%w: grid width %d cannot hold the snake", ErrInvalid, g.MinWidth)
	}

	gm := c.Game
	switch {
	case gm.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v", ErrInvalid, gm.TickInterval)
	case gm.MaxFoods < 0, gm.InitialPowerUps < 0, gm.MaxPowerUps < 0, gm.PowerUpSpawnInterval < 0, gm.EffectTicks < 0:
		return fmt.Errorf("%w: negative game count in %+v", ErrInvalid, gm)
	}

	if _, err := audio.ParseMode(c.Audio.Mode); err != nil {
		return fmt.Errorf("%w: audio mode %q", ErrInvalid, c.Audio.Mode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: audio volume %d outside 0-100", ErrInvalid, c.Audio.Volume)
	}

	switch c.Display.Backend {
	case terminal.BackendTcell, terminal.BackendANSI, terminal.BackendMemory:
	default:
		return fmt.Errorf("%w: display backend %q", ErrInvalid, c.Display.Backend)
	}
	return nil
}

// FitGrid sizes the play area to a terminal, leaving room for border and status lines
func (c *Config) FitGrid(cols, rows int) core.Grid {
	w := min(c.Grid.MaxWidth, cols-parameter.GridChromeColumns)
	h := min(c.Grid.MaxHeight, rows-parameter.GridChromeRows)
	return core.Grid{
		Width:  max(w, c.Grid.MinWidth),
		Height: max(h, c.Grid.MinHeight),
	}
}

// RoundSettings returns engine tunables for a grid
func (c *Config) RoundSettings(grid core.Grid) engine.Settings {
	return engine.Settings{
		Grid:                 grid,
		BaseInterval:         c.Game.TickInterval,
		MaxFoods:             c.Game.MaxFoods,
		InitialPowerUps:      c.Game.InitialPowerUps,
		MaxPowerUps:          c.Game.MaxPowerUps,
		PowerUpSpawnInterval: c.Game.PowerUpSpawnInterval,
		EffectTicks:          c.Game.EffectTicks,
	}
}

// AudioSettings resolves the audio package config
// Mode and master volume come from c; per-cue volumes and sample rate from the environment
func (c *Config) AudioSettings() *audio.AudioConfig {
	a := audio.LoadAudioConfig()
	if m, err := audio.ParseMode(c.Audio.Mode); err == nil {
		a.Mode = m
	}
	a.MasterVolume = float64(c.Audio.Volume) / 100.0
	return a
}
