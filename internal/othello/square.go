package othello

import (
	"fmt"
	"strings"
)

// Square identifies a cell on the board by 0-indexed row and column.
type Square struct {
	Row int
	Col int
}

// direction is a single step on the board.
type direction struct {
	dRow, dCol int
}

// directions lists the eight compass directions: N, NE, E, SE, S, SW, W, NW.
var directions = [8]direction{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Valid returns whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < MaxRow && s.Col >= 0 && s.Col < MaxCol
}

// step returns the neighbouring square in direction d. The result may be off the board.
func (s Square) step(d direction) Square {
	return Square{Row: s.Row + d.dRow, Col: s.Col + d.dCol}
}

// Field returns the field notation of the square, e.g. "d3" for row 2, column 3.
func (s Square) Field() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + s.Col), byte('1' + s.Row)})
}

func (s Square) String() string {
	return s.Field()
}

// ParseField converts a field notation (e.g. "a1", "h8") to a square.
func ParseField(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("%w: %q has length %d", ErrInvalidField, field, len(field))
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return Square{Row: int(field[1] - '1'), Col: int(field[0] - 'a')}, nil
}
