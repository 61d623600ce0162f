package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/persistence"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic recovery: terminal is restored through the registered hook
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	fs := flag.NewFlagSet("snake", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(flags.Path, flags.PathExplicit(fs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 2
	}
	flags.Apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := persistence.Open(ctx, cfg.Storage.HighScoreFile, cfg.Storage.PostgresDSN)
	if err != nil {
		log.Printf("main: high score store: %v, using %s", err, cfg.Storage.HighScoreFile)
		store = persistence.NewFileStore(cfg.Storage.HighScoreFile)
	}
	defer store.Close()
	scores := persistence.NewHighScores(store)

	display, err := terminal.New(cfg.Display.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create display: %v\n", err)
		return 1
	}
	if err := display.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.RegisterCrashRestore(display.Fini)
	defer core.RegisterCrashRestore(nil)

	player := audio.NewPlayer(cfg.AudioSettings(), display)

	g := game.New(cfg, display, player, scores)
	runErr := g.Run(ctx)

	player.Close()
	display.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", runErr)
		return 1
	}
	for _, line := range render.FarewellLines(g.HighScore()) {
		fmt.Println(line)
	}
	return 0
}
