package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kipppppp/othello/internal/config"
	"github.com/kipppppp/othello/internal/console"
	"github.com/kipppppp/othello/internal/othello"
	"github.com/kipppppp/othello/internal/player"
	"github.com/kipppppp/othello/internal/tui"
)

const welcomeText = `Welcome to Othello!
This version supports 2 players, 1 player vs AI, or AI vs. AI.
Enter 0 as player name to assign AI. Enter exit to quit
X always moves first. Good luck!`

// Options override values from the config file and environment. Zero values keep the config.
type Options struct {
	ConfigPath string
	Interface  string
	Seed       int64
	ShowHints  bool
}

type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// SetupApp loads the configuration and sets up logging on stderr.
func SetupApp(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Interface != "" {
		cfg.Interface = opts.Interface
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.ShowHints {
		cfg.ShowHints = true
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return &App{cfg: cfg, logger: logger}, nil
}

// Run asks for the players and plays one match on the configured interface.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	term := console.NewTerminal(in, out, !a.cfg.NoClear)
	term.Println(welcomeText)

	dark, light, err := console.SetupPlayers(term, a.cfg.Players)
	if errors.Is(err, io.EOF) {
		term.Println()
		term.Println("Thanks for playing!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to set up players: %w", err)
	}

	term.ClearScreen()

	match := othello.NewMatch(dark, light)
	seed := a.cfg.SeedOrNow()
	picker := player.NewRandomPicker(seed)

	a.logger.Debug("match created",
		"match_id", match.ID().String(),
		"interface", a.cfg.Interface,
		"seed", seed,
	)

	switch a.cfg.Interface {
	case config.InterfaceTUI:
		controller := tui.NewController(match, picker, a.logger, tui.Options{
			ShowHints: a.cfg.ShowHints,
			AIDelay:   a.cfg.AIDelay,
		})
		return controller.Run(ctx)
	default:
		return console.NewSession(term, match, picker, a.logger, a.cfg.ShowHints).Run(ctx)
	}
}
