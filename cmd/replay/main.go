package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kipppppp/othello/internal/config"
	"github.com/kipppppp/othello/internal/console"
	"github.com/kipppppp/othello/internal/othello"
)

func main() {
	moves := flag.String("moves", "", "transcript to replay, e.g. \"d3 c5 f6\"; read from stdin when empty")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger, err := config.NewLogger(*logLevel, os.Stderr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if err = replay(*moves, os.Stdin, os.Stdout); err != nil {
		slog.Error("Failed to replay", "error", err)
		os.Exit(1)
	}
}

func replay(transcript string, in io.Reader, out io.Writer) error {
	if transcript == "" {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		transcript = strings.TrimSpace(string(raw))
	}

	squares, err := othello.ParseTranscript(transcript)
	if err != nil {
		return err
	}

	match, err := othello.Replay(othello.Player{Name: "Dark"}, othello.Player{Name: "Light"}, squares)
	if err != nil {
		return err
	}

	slog.Info("Replayed match", "moves", len(squares), "transcript", match.Transcript())

	if err = console.RenderBoard(out, match.Board(), nil); err != nil {
		return err
	}

	scores := match.Scores()
	fmt.Fprintf(out, "X: %d\nO: %d\n", scores.Dark, scores.Light)

	winner, err := match.Winner()
	switch {
	case errors.Is(err, othello.ErrGameNotOver):
		current := match.CurrentPlayer()
		fmt.Fprintf(out, "%s (%c) to move: %s\n",
			current.Name, current.Side.Symbol(), console.FormatMoves(match.CurrentLegalMoves()))
	case err != nil:
		return err
	case winner == othello.Tie:
		fmt.Fprintln(out, "Tie game!")
	default:
		p := match.Player(winner)
		fmt.Fprintf(out, "%s (%c) is the winner!\n", p.Name, p.Side.Symbol())
	}

	return nil
}
