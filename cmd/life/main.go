//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"fade-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Pattern != "" {
		log.Printf("loaded %s as %q", cfg.Pattern, sim.Name())
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fade-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
