package console

import (
	"fmt"
	"strings"

	"github.com/kipppppp/othello/internal/othello"
)

// CommandKind tells what a line typed by a player asks for.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandList
	CommandExit
	CommandUndo
)

// Command is a parsed line of player input. Square is only set for CommandMove.
type Command struct {
	Kind   CommandKind
	Square othello.Square
}

// InvalidInputFormatError is returned for lines that are not a move or a known command.
type InvalidInputFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidInputFormatError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// ParseCommand parses a line of input. Moves are "row,column" with digits 1 to 8, or a
// field such as "d3". "?" lists the legal moves, "undo" takes back a move and "exit" quits.
func ParseCommand(line string) (Command, error) {
	input := strings.TrimSpace(line)

	switch strings.ToLower(input) {
	case "?":
		return Command{Kind: CommandList}, nil
	case "exit":
		return Command{Kind: CommandExit}, nil
	case "undo":
		return Command{Kind: CommandUndo}, nil
	}

	switch len(input) {
	case 2:
		sq, err := othello.ParseField(input)
		if err != nil {
			return Command{}, &InvalidInputFormatError{Input: input, Reason: "expected a field from a1 to h8"}
		}
		return Command{Kind: CommandMove, Square: sq}, nil
	case 3:
		if input[1] != ',' {
			return Command{}, &InvalidInputFormatError{Input: input, Reason: "expected row,column"}
		}

		row, ok := parseCoordinate(input[0])
		if !ok {
			return Command{}, &InvalidInputFormatError{Input: input, Reason: "row must be a digit from 1 to 8"}
		}

		col, ok := parseCoordinate(input[2])
		if !ok {
			return Command{}, &InvalidInputFormatError{Input: input, Reason: "column must be a digit from 1 to 8"}
		}

		return Command{Kind: CommandMove, Square: othello.Square{Row: row, Col: col}}, nil
	default:
		return Command{}, &InvalidInputFormatError{Input: input, Reason: "expected row,column"}
	}
}

// parseCoordinate converts a digit from '1' to '8' to a 0-indexed coordinate.
func parseCoordinate(c byte) (int, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return int(c - '1'), true
}
