package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kipppppp/othello/internal/othello"
)

const (
	// Each square is two characters wide so the board looks square.
	squareWidth = 2

	// Row labels take the first columns, column labels the first line.
	boardLeft = 3
	boardTop  = 1

	BoardWidth  = boardLeft + othello.MaxCol*squareWidth
	BoardHeight = boardTop + othello.MaxRow

	hintRune = '*'
)

var (
	styleDefault  = tcell.StyleDefault
	styleCursor   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleLastMove = tcell.StyleDefault.Background(tcell.ColorDarkCyan)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

type boardDrawer struct {
	controller *Controller
}

func newBoardDrawer(controller *Controller) *boardDrawer {
	return &boardDrawer{controller: controller}
}

// draw is the draw func of the board box.
func (d *boardDrawer) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < BoardWidth || height < BoardHeight {
		return x, y, width, height
	}

	args := d.controller.GetDrawArgs()

	d.drawCoordinates(screen, x, y)

	for row := 0; row < othello.MaxRow; row++ {
		for col := 0; col < othello.MaxCol; col++ {
			sq := othello.Square{Row: row, Col: col}
			d.drawSquare(screen, x, y, sq, args)
		}
	}

	return x, y, BoardWidth, BoardHeight
}

func (d *boardDrawer) drawSquare(screen tcell.Screen, x, y int, sq othello.Square, args *DrawArgs) {
	cell := args.Board.At(sq)

	r := rune(cell.Symbol())
	style := styleDefault

	if cell == othello.Empty && args.Hints[sq] {
		r = hintRune
		style = styleHint
	}

	if args.LastMove != nil && *args.LastMove == sq {
		style = styleLastMove
	}

	if args.Cursor == sq {
		style = styleCursor
	}

	left := x + boardLeft + sq.Col*squareWidth
	top := y + boardTop + sq.Row

	screen.SetContent(left, top, r, nil, style)
	screen.SetContent(left+1, top, ' ', nil, style)
}

func (d *boardDrawer) drawCoordinates(screen tcell.Screen, x, y int) {
	for col := 0; col < othello.MaxCol; col++ {
		screen.SetContent(x+boardLeft+col*squareWidth, y, rune('1'+col), nil, styleDefault)
	}

	for row := 0; row < othello.MaxRow; row++ {
		screen.SetContent(x, y+boardTop+row, rune('1'+row), nil, styleDefault)
		screen.SetContent(x+1, y+boardTop+row, '|', nil, styleDefault)
	}
}
