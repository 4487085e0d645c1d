package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/kipppppp/othello/internal/othello"
)

const (
	boardHeader = "    1 2 3 4 5 6 7 8"
	boardBorder = "  - - - - - - - - - -"

	// hintSymbol marks a legal move when hints are shown.
	hintSymbol = '*'
)

// BoardLines returns the framed board, one string per line. Squares in hints are marked.
func BoardLines(board othello.Board, hints []othello.Square) []string {
	marked := make(map[othello.Square]bool, len(hints))
	for _, sq := range hints {
		marked[sq] = true
	}

	lines := make([]string, 0, othello.MaxRow+3)
	lines = append(lines, boardHeader, boardBorder)

	for row := 0; row < othello.MaxRow; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d |", row+1)

		for col := 0; col < othello.MaxCol; col++ {
			sq := othello.Square{Row: row, Col: col}

			symbol := board.At(sq).Symbol()
			if marked[sq] {
				symbol = hintSymbol
			}

			sb.WriteByte(' ')
			sb.WriteByte(symbol)
		}

		sb.WriteString(" |")
		lines = append(lines, sb.String())
	}

	return append(lines, boardBorder)
}

// RenderBoard writes the framed board to w.
func RenderBoard(w io.Writer, board othello.Board, hints []othello.Square) error {
	for _, line := range BoardLines(board, hints) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}
	}
	return nil
}

// FormatSquare returns the 1-indexed "row,column" form that players type.
func FormatSquare(sq othello.Square) string {
	return fmt.Sprintf("%d,%d", sq.Row+1, sq.Col+1)
}

// FormatMoves lists squares in the form players type, separated by spaces.
func FormatMoves(squares []othello.Square) string {
	if len(squares) == 0 {
		return "(no moves)"
	}

	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = FormatSquare(sq)
	}
	return strings.Join(parts, " ")
}
