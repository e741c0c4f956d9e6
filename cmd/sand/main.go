//go:build ebiten

package main

import (
	"errors"
	"flag"

	"sand-ca/internal/app"
	"sand-ca/internal/audio"
	"sand-ca/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Resolve()
	if err != nil {
		logging.Fatalf("config: %v", err)
	}
	closer, err := logging.Setup(logging.Options{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		logging.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	sim, err := app.Build(settings.Sim, settings.Params)
	if err != nil {
		logging.Fatalf("%v", err)
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

	game := app.New(app.NewSession(sim, settings.Seed(), sound), settings.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sand-ca - " + sim.Name())
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(w, h)

	logging.WithField("sim", sim.Name()).Info("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logging.Fatalf("%v", err)
	}
}
