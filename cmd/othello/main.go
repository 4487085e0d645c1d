package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kipppppp/othello/internal"
	"github.com/kipppppp/othello/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	useTUI := flag.Bool("tui", false, "use the full-screen interface")
	seed := flag.Int64("seed", 0, "seed for automated players, 0 is time based")
	hints := flag.Bool("hints", false, "mark legal moves on the board")
	flag.Parse()

	opts := internal.Options{
		ConfigPath: *configPath,
		Seed:       *seed,
		ShowHints:  *hints,
	}
	if *useTUI {
		opts.Interface = config.InterfaceTUI
	}

	app, err := internal.SetupApp(opts)
	if err != nil {
		slog.Error("Failed to set up", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Stdin, os.Stdout); err != nil {
		slog.Error("Game stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
