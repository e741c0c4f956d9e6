package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sand-ca/internal/app"
	"sand-ca/internal/audio"
	"sand-ca/internal/logging"
	"sand-ca/internal/sand"
	"sand-ca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sand-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	// Anything written to stderr would tear the screen.
	if settings.LogFile == "" {
		settings.LogFile = "sand-tui.log"
	}
	closer, err := logging.Setup(logging.Options{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Fit the default world to the terminal unless a size was configured.
	if _, ok := settings.Params[sand.KeyWidth]; !ok {
		w, _ := screen.Size()
		settings.Params[sand.KeyWidth] = fmt.Sprint(w)
	}
	if _, ok := settings.Params[sand.KeyHeight]; !ok {
		_, h := screen.Size()
		settings.Params[sand.KeyHeight] = fmt.Sprint(max(2, (h-1)*2))
	}

	sim, err := app.Build(settings.Sim, settings.Params)
	if err != nil {
		return err
	}

	var sound app.Sound
	if settings.Sound {
		player := audio.NewPlayer(settings.Volume)
		if err := player.Start(); err != nil {
			logging.WithError(err).Warn("sound disabled")
		} else {
			defer player.Close()
			sound = player
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := term.NewView(screen, app.NewSession(sim, settings.Seed(), sound))
	logging.WithField("sim", sim.Name()).Info("starting")
	if err := term.Run(ctx, view, settings.TPS); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
