package config

import (
	"flag"
	"time"
)

// Flags are the command-line overrides, applied last
type Flags struct {
	Path      string
	Display   string
	Audio     string
	Volume    int
	Tick      time.Duration
	Seed      uint64
	HighScore string
	DSN       string
	Debug     bool
}

// RegisterFlags defines the override flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", DefaultPath, "TOML config file")
	fs.StringVar(&f.Display, "display", "", "Display backend: tcell, ansi")
	fs.StringVar(&f.Audio, "audio", "", "Audio: beep, bell, off")
	fs.IntVar(&f.Volume, "volume", 0, "Master volume 0-100")
	fs.DurationVar(&f.Tick, "tick", 0, "Base tick interval")
	fs.Uint64Var(&f.Seed, "seed", 0, "RNG seed, 0 for time-based")
	fs.StringVar(&f.HighScore, "highscore", "", "High score file")
	fs.StringVar(&f.DSN, "dsn", "", "PostgreSQL DSN for the high score")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to logs/")
	return f
}

// PathExplicit reports whether -config was given on the command line
func (f *Flags) PathExplicit(fs *flag.FlagSet) bool {
	explicit := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "config" {
			explicit = true
		}
	})
	return explicit
}

// Apply copies every flag set on the command line into c
func (f *Flags) Apply(fs *flag.FlagSet, c *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "display":
			c.Display.Backend = f.Display
		case "audio":
			c.Audio.Mode = f.Audio
		case "volume":
			c.Audio.Volume = f.Volume
		case "tick":
			c.Game.TickInterval = f.Tick
		case "seed":
			c.Game.Seed = f.Seed
		case "highscore":
			c.Storage.HighScoreFile = f.HighScore
		case "dsn":
			c.Storage.PostgresDSN = f.DSN
		case "debug":
			c.Debug = f.Debug
		}
	})
}
