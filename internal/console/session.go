package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kipppppp/othello/internal/othello"
	"github.com/kipppppp/othello/internal/player"
)

const movePrompt = "Enter move as row,column (? to see a list of moves): "

type turnOutcome int

const (
	outcomeMoved turnOutcome = iota
	outcomeUndone
	outcomeExit
)

// Session runs one match in a line based terminal until it ends or a player quits.
type Session struct {
	term   *Terminal
	match  *othello.Match
	picker player.Picker
	logger *slog.Logger
	hints  bool
}

// NewSession creates a Session. With hints set, legal moves are marked on the board.
func NewSession(term *Terminal, match *othello.Match, picker player.Picker, logger *slog.Logger, hints bool) *Session {
	return &Session{
		term:   term,
		match:  match,
		picker: picker,
		logger: logger.With("match_id", match.ID().String()),
		hints:  hints,
	}
}

// Run plays the match. It returns nil when the match ends or a player quits, and
// ctx.Err() when the context is cancelled between turns.
func (s *Session) Run(ctx context.Context) error {
	dark := s.match.Player(othello.Dark)
	light := s.match.Player(othello.Light)
	s.logger.Info("match started", "dark", dark.Name, "light", light.Name)

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("match cancelled", "transcript", s.match.Transcript())
			return err
		}

		if s.match.IsTerminal() {
			return s.finish()
		}

		current := s.match.CurrentPlayer()
		s.announce(current)

		if current.Automated {
			if err := s.playAutomated(current); err != nil {
				return err
			}
			continue
		}

		outcome, err := s.playHuman()
		if err != nil {
			return err
		}

		switch outcome {
		case outcomeExit:
			s.term.Println("Thanks for playing!")
			s.logger.Info("match abandoned", "transcript", s.match.Transcript())
			return nil
		case outcomeUndone:
			s.term.ClearScreen()
		case outcomeMoved:
		}
	}
}

func (s *Session) announce(current othello.Player) {
	s.term.Printf("%s (%c), it's your turn.\n", current.Name, current.Side.Symbol())
	s.printScores()

	var hints []othello.Square
	if s.hints {
		hints = s.match.CurrentLegalMoves()
	}
	s.render(hints)
}

func (s *Session) printScores() {
	scores := s.match.Scores()
	s.term.Printf("%c: %d\n", othello.Dark.Symbol(), scores.Dark)
	s.term.Printf("%c: %d\n", othello.Light.Symbol(), scores.Light)
}

func (s *Session) render(hints []othello.Square) {
	for _, line := range BoardLines(s.match.Board(), hints) {
		s.term.Println(line)
	}
}

func (s *Session) playAutomated(current othello.Player) error {
	sq, err := s.picker.Pick(s.match.CurrentLegalMoves())
	if err != nil {
		return fmt.Errorf("%s failed to pick a move: %w", current.Name, err)
	}

	result, err := s.match.PlayMove(sq)
	if err != nil {
		return fmt.Errorf("%s picked a move that cannot be played: %w", current.Name, err)
	}

	s.term.Printf("%s placed a token at: %s\n\n", current.Name, FormatSquare(sq))
	s.report(result)
	return nil
}

// playHuman prompts until the current player makes a legal move, undoes or quits.
func (s *Session) playHuman() (turnOutcome, error) {
	for {
		line, err := s.term.Prompt(movePrompt)
		if errors.Is(err, io.EOF) {
			s.term.Println()
			return outcomeExit, nil
		}
		if err != nil {
			return outcomeExit, err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			s.logger.Debug("rejected input", "error", err)
			s.term.Println("Invalid input format. Please enter a valid move.")
			continue
		}

		switch cmd.Kind {
		case CommandExit:
			return outcomeExit, nil
		case CommandList:
			s.term.Println(FormatMoves(s.match.CurrentLegalMoves()))
		case CommandUndo:
			if err = s.undo(); err != nil {
				s.term.Println("Nothing to undo.")
				continue
			}
			return outcomeUndone, nil
		case CommandMove:
			result, err := s.match.PlayMove(cmd.Square)
			if errors.Is(err, othello.ErrIllegalMove) {
				s.logger.Debug("rejected move", "error", err)
				s.term.Println("Invalid move. Please enter a valid move.")
				continue
			}
			if err != nil {
				return outcomeExit, err
			}

			s.term.ClearScreen()
			s.report(result)
			return outcomeMoved, nil
		}
	}
}

// undo takes back moves until a human player is to move again, so an automated
// opponent does not immediately replay its answer.
func (s *Session) undo() error {
	if err := s.match.Undo(); err != nil {
		return err
	}

	for s.match.CurrentPlayer().Automated {
		if err := s.match.Undo(); err != nil {
			break
		}
	}

	s.logger.Debug("move undone", "transcript", s.match.Transcript())
	return nil
}

func (s *Session) report(result othello.MoveResult) {
	s.logger.Debug("move played",
		"side", result.Move.Side.String(),
		"square", result.Move.Square.Field(),
		"flipped", len(result.Flipped),
	)

	if result.Passed != nil {
		s.term.Printf("%s had no valid moves. Their turn is forfeited.\n", result.Passed.Name)
		s.logger.Debug("turn forfeited", "side", result.Passed.Side.String())
	}
}

func (s *Session) finish() error {
	winner, err := s.match.Winner()
	if err != nil {
		return err
	}

	s.term.ClearScreen()
	s.term.Println("Game over! Total points below")
	s.render(nil)
	s.printScores()

	if winner == othello.Tie {
		s.term.Println("Tie game!")
	} else {
		p := s.match.Player(winner)
		s.term.Printf("%s (%c) is the winner!\n", p.Name, p.Side.Symbol())
	}

	s.term.Println()
	s.term.Println("Thanks for playing (:")

	scores := s.match.Scores()
	s.logger.Info("match finished",
		"winner", winner.String(),
		"dark", scores.Dark,
		"light", scores.Light,
		"transcript", s.match.Transcript(),
	)
	return nil
}
