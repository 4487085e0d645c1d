package othello

// Cell is the content of a square on the board. Dark and Light double as the two sides.
type Cell int8

const (
	Empty Cell = iota
	Dark
	Light

	// Tie is the winner of a match that ended with equal scores.
	Tie = Empty
)

const (
	MaxRow = 8
	MaxCol = 8

	// SquareCount is the number of squares on the board.
	SquareCount = MaxRow * MaxCol
)

// IsSide returns whether c is Dark or Light.
func (c Cell) IsSide() bool {
	return c == Dark || c == Light
}

// Opponent returns the other side. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return Empty
	}
}

// Symbol returns the single character used for the cell in board strings and the console.
func (c Cell) Symbol() byte {
	switch c {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	default:
		return '+'
	}
}

func (c Cell) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "empty"
	}
}

// cellFromSymbol is the inverse of Symbol. It also accepts '.' for an empty square.
func cellFromSymbol(symbol byte) (Cell, bool) {
	switch symbol {
	case 'X', 'x':
		return Dark, true
	case 'O', 'o':
		return Light, true
	case '+', '.':
		return Empty, true
	default:
		return Empty, false
	}
}
