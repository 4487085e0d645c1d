package tui

import "github.com/kipppppp/othello/internal/othello"

// DrawArgs contains arguments for drawing the board.
type DrawArgs struct {
	// Board is the current board state
	Board othello.Board

	// Cursor is the square that Enter plays
	Cursor othello.Square

	// LastMove is the most recent placement, nil before the first one
	LastMove *othello.Square

	// Hints contains the legal moves of the side to move, empty when hints are off
	Hints map[othello.Square]bool
}
