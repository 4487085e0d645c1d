package othello

import (
	"fmt"
	"strings"
	"unicode"
)

// Board is the 8x8 grid. It is a value type: assigning a Board copies the grid.
type Board struct {
	grid [MaxRow][MaxCol]Cell
}

// Scores holds the token count of both sides.
type Scores struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
}

// Of returns the score of side.
func (s Scores) Of(side Cell) int {
	switch side {
	case Dark:
		return s.Dark
	case Light:
		return s.Light
	default:
		return 0
	}
}

// NewBoardEmpty creates a board without any tokens.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardStart creates a board with the standard four token starting position.
func NewBoardStart() Board {
	b := NewBoardEmpty()
	b.grid[3][3] = Light
	b.grid[3][4] = Dark
	b.grid[4][3] = Dark
	b.grid[4][4] = Light
	return b
}

// NewBoardFromString parses 64 cell symbols in row-major order ('X' dark, 'O' light,
// '+' or '.' empty). Whitespace is ignored, so boards can be written one row per line.
func NewBoardFromString(s string) (Board, error) {
	symbols := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(symbols) != SquareCount {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, SquareCount, len(symbols))
	}

	var b Board
	for i := 0; i < SquareCount; i++ {
		cell, ok := cellFromSymbol(symbols[i])
		if !ok {
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at index %d", ErrInvalidBoard, symbols[i], i)
		}
		b.grid[i/MaxCol][i%MaxCol] = cell
	}

	return b, nil
}

// At returns the cell at sq. Squares off the board read as Empty.
func (b Board) At(sq Square) Cell {
	if !sq.Valid() {
		return Empty
	}
	return b.grid[sq.Row][sq.Col]
}

// TokenPositions returns every square holding a token of side, in row-major order.
func (b Board) TokenPositions(side Cell) []Square {
	positions := make([]Square, 0, SquareCount)
	for row := 0; row < MaxRow; row++ {
		for col := 0; col < MaxCol; col++ {
			if b.grid[row][col] == side {
				positions = append(positions, Square{Row: row, Col: col})
			}
		}
	}
	return positions
}

// Count returns the number of cells equal to c.
func (b Board) Count(c Cell) int {
	count := 0
	for row := 0; row < MaxRow; row++ {
		for col := 0; col < MaxCol; col++ {
			if b.grid[row][col] == c {
				count++
			}
		}
	}
	return count
}

// Scores returns the token count of both sides.
func (b Board) Scores() Scores {
	return Scores{
		Dark:  b.Count(Dark),
		Light: b.Count(Light),
	}
}

// LegalMoves returns the squares side can play, sorted by row, then column.
//
// Starting from each token of side, every direction is walked outward through contiguous
// opponent tokens. If such a walk crosses at least one opponent token and ends on an empty
// square, that square is a legal move. Walks leaving the board yield nothing.
func (b Board) LegalMoves(side Cell) []Square {
	if !side.IsSide() {
		return []Square{}
	}

	opponent := side.Opponent()
	var found [MaxRow][MaxCol]bool

	for _, token := range b.TokenPositions(side) {
		for _, d := range directions {
			sq := token.step(d)
			crossed := 0

			for sq.Valid() && b.grid[sq.Row][sq.Col] == opponent {
				sq = sq.step(d)
				crossed++
			}

			if crossed > 0 && sq.Valid() && b.grid[sq.Row][sq.Col] == Empty {
				found[sq.Row][sq.Col] = true
			}
		}
	}

	moves := make([]Square, 0, SquareCount)
	for row := 0; row < MaxRow; row++ {
		for col := 0; col < MaxCol; col++ {
			if found[row][col] {
				moves = append(moves, Square{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves returns whether side has at least one legal move.
func (b Board) HasMoves(side Cell) bool {
	return len(b.LegalMoves(side)) > 0
}

// Flipped returns the opponent tokens that would be flipped if side placed a token on sq.
// Each direction is evaluated on the unmodified board. An empty result means sq is not a
// legal move for side.
func (b Board) Flipped(side Cell, sq Square) []Square {
	if !side.IsSide() || !sq.Valid() || b.grid[sq.Row][sq.Col] != Empty {
		return nil
	}

	opponent := side.Opponent()
	var flipped []Square

	for _, d := range directions {
		var run []Square

		cur := sq.step(d)
		for cur.Valid() && b.grid[cur.Row][cur.Col] == opponent {
			run = append(run, cur)
			cur = cur.step(d)
		}

		if len(run) > 0 && cur.Valid() && b.grid[cur.Row][cur.Col] == side {
			flipped = append(flipped, run...)
		}
	}

	return flipped
}

// IsLegalMove returns whether side may place a token on sq.
func (b Board) IsLegalMove(side Cell, sq Square) bool {
	return len(b.Flipped(side, sq)) > 0
}

// apply places a token of side on sq and flips the captured tokens. It trusts the caller
// to only pass legal moves and returns the flipped squares.
func (b *Board) apply(side Cell, sq Square) []Square {
	flipped := b.Flipped(side, sq)

	b.grid[sq.Row][sq.Col] = side
	for _, f := range flipped {
		b.grid[f.Row][f.Col] = side
	}

	return flipped
}

// DoMove returns the board after side plays sq. The receiver is not modified.
func (b Board) DoMove(side Cell, sq Square) (Board, error) {
	if !b.IsLegalMove(side, sq) {
		return b, &IllegalMoveError{Side: side, Square: sq}
	}

	next := b
	next.apply(side, sq)
	return next, nil
}

// String returns the 64 cell symbols in row-major order. It is the inverse of NewBoardFromString.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(SquareCount)

	for row := 0; row < MaxRow; row++ {
		for col := 0; col < MaxCol; col++ {
			sb.WriteByte(b.grid[row][col].Symbol())
		}
	}

	return sb.String()
}
