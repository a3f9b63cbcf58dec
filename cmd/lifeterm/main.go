package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"fade-life/internal/app"
	"fade-life/internal/sims/life"
	"fade-life/internal/term"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, sim, cfg.TPS, cfg.Seed, life.DisplayFadeMax)
	err = host.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
