package othello

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is already over")
	ErrGameNotOver   = errors.New("game is not over yet")
	ErrNothingToUndo = errors.New("no moves to undo")
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidBoard  = errors.New("invalid board")
)

// IllegalMoveError is returned when a side tries to play a square outside its legal move set.
// The board or match it was returned from is left unchanged.
type IllegalMoveError struct {
	Side   Cell
	Square Square
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s cannot play %s", e.Side, e.Square)
}

// Is makes errors.Is(err, ErrIllegalMove) hold for any *IllegalMoveError.
func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}
