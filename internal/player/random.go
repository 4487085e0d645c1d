package player

import (
	"errors"
	"math/rand"

	"github.com/kipppppp/othello/internal/othello"
)

var ErrNoMoves = errors.New("no moves to pick from")

// Picker chooses a move for an automated player out of the legal moves.
type Picker interface {
	Pick(moves []othello.Square) (othello.Square, error)
}

// RandomPicker picks uniformly at random. It is not safe for concurrent use.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a RandomPicker. The same seed always yields the same picks.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec
	}
}

// Pick returns one of moves.
func (p *RandomPicker) Pick(moves []othello.Square) (othello.Square, error) {
	if len(moves) == 0 {
		return othello.Square{}, ErrNoMoves
	}

	return moves[p.rng.Intn(len(moves))], nil
}
