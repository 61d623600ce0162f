package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/term-snake/audio"
)

// Environment variables read by ApplyEnv
const (
	EnvDisplay       = "SNAKE_DISPLAY"
	EnvTick          = "SNAKE_TICK"
	EnvMaxFoods      = "SNAKE_MAX_FOODS"
	EnvSeed          = "SNAKE_SEED"
	EnvHighScoreFile = "SNAKE_HIGHSCORE_FILE"
	EnvDatabaseURL   = "SNAKE_DATABASE_URL"
	EnvDebug         = "SNAKE_DEBUG"
)

// Load resolves defaults, then the TOML file at path, then SNAKE_* environment
// A missing file is an error only when required is set
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if err := cfg.decodeFile(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || required {
			return nil, err
		}
	}

	ApplyEnv(cfg)
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: %s: unknown key %q ignored", path, key.String())
	}
	return nil
}

// ApplyEnv overrides c with any SNAKE_* variables; malformed values are logged and ignored
func ApplyEnv(c *Config) {
	if v := os.Getenv(EnvDisplay); v != "" {
		c.Display.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTick); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Game.TickInterval = d
		} else {
			log.Printf("config: %s=%q: %v", EnvTick, v, err)
		}
	}
	envInt(EnvMaxFoods, &c.Game.MaxFoods)
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = n
		} else {
			log.Printf("config: %s=%q: %v", EnvSeed, v, err)
		}
	}

	if v := os.Getenv(audio.EnvAudio); v != "" {
		c.Audio.Mode = strings.ToLower(v)
	}
	envInt(audio.EnvMasterVolume, &c.Audio.Volume)

	if v := os.Getenv(EnvHighScoreFile); v != "" {
		c.Storage.HighScoreFile = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.Storage.PostgresDSN = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q: %v", name, v, err)
		return
	}
	*dst = n
}
