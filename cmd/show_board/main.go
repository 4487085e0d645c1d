package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kipppppp/othello/internal/console"
	"github.com/kipppppp/othello/internal/othello"
)

func main() {
	defaultBoard := othello.NewBoardStart().String()
	boardString := flag.String("board", defaultBoard, "the board to show, 64 symbols of X, O or +")
	light := flag.Bool("light", false, "show the moves of light instead of dark")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	side := othello.Dark
	if *light {
		side = othello.Light
	}

	moves := board.LegalMoves(side)
	if err = console.RenderBoard(os.Stdout, board, moves); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	scores := board.Scores()
	fmt.Printf("X: %d\nO: %d\n", scores.Dark, scores.Light)
	fmt.Printf("moves for %s: %s\n", side, console.FormatMoves(moves))
}
