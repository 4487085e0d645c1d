package othello

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is one participant of a match.
type Player struct {
	Name      string `json:"name"`
	Side      Cell   `json:"side"`
	Automated bool   `json:"automated"`

	// Score is the token count of Side. It is filled in from the board every time
	// a Player is read from a Match and is never stored.
	Score int `json:"score"`
}

// Move is a placement or a forced pass in the match history.
type Move struct {
	Side   Cell
	Square Square
	Pass   bool
}

func (m Move) String() string {
	if m.Pass {
		return PassField
	}
	return m.Square.Field()
}

// MoveResult describes what happened when a move was played.
type MoveResult struct {
	Move    Move
	Flipped []Square

	// Passed is the player that forfeited the turn right after Move, if any.
	Passed *Player

	// Terminal is set when neither side can move anymore.
	Terminal bool
}

// Match owns a board, the two players and turn sequencing. It is not safe for concurrent
// use; callers serving a match from multiple goroutines must serialize all calls.
type Match struct {
	id uuid.UUID

	// start and startTurn are the position before any move. Undo replays from here.
	start     Board
	startTurn Cell

	board Board
	turn  Cell

	// players is indexed by side: players[0] is dark, players[1] is light.
	players [2]Player

	// history contains placements and the forced passes that were applied automatically.
	history []Move
}

// NewMatch creates a match on the standard starting board with Dark to move.
func NewMatch(dark, light Player) *Match {
	m, err := NewMatchFromBoard(NewBoardStart(), Dark, dark, light)
	if err != nil {
		// The start position with Dark to move is always valid.
		panic(err)
	}
	return m
}

// NewMatchFromBoard creates a match from a custom position. If the side to move has no
// legal move but its opponent does, the pass is applied right away.
func NewMatchFromBoard(board Board, turn Cell, dark, light Player) (*Match, error) {
	if !turn.IsSide() {
		return nil, fmt.Errorf("invalid side to move: %s", turn)
	}

	dark.Side = Dark
	light.Side = Light

	m := &Match{
		id:        uuid.New(),
		start:     board,
		startTurn: turn,
		board:     board,
		turn:      turn,
		players:   [2]Player{dark, light},
		history:   make([]Move, 0, SquareCount),
	}

	m.settle()
	return m, nil
}

// ID returns the unique identifier of the match.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Board returns a copy of the current board.
func (m *Match) Board() Board {
	return m.board
}

// Turn returns the side to move.
func (m *Match) Turn() Cell {
	return m.turn
}

// Player returns the player of side with an up to date score.
func (m *Match) Player(side Cell) Player {
	if !side.IsSide() {
		return Player{}
	}

	p := m.players[side-Dark]
	p.Score = m.board.Count(side)
	return p
}

// CurrentPlayer returns the player to move.
func (m *Match) CurrentPlayer() Player {
	return m.Player(m.turn)
}

// Scores returns the token count of both sides.
func (m *Match) Scores() Scores {
	return m.board.Scores()
}

// LegalMoves returns the legal moves of side on the current board.
func (m *Match) LegalMoves(side Cell) []Square {
	return m.board.LegalMoves(side)
}

// CurrentLegalMoves returns the legal moves of the side to move.
func (m *Match) CurrentLegalMoves() []Square {
	return m.board.LegalMoves(m.turn)
}

// IsForcedPass returns whether side has no legal move while its opponent has one.
func (m *Match) IsForcedPass(side Cell) bool {
	return !m.board.HasMoves(side) && m.board.HasMoves(side.Opponent())
}

// IsTerminal returns whether neither side has a legal move.
func (m *Match) IsTerminal() bool {
	return !m.board.HasMoves(Dark) && !m.board.HasMoves(Light)
}

// Winner returns Dark, Light or Tie once the match is over.
func (m *Match) Winner() (Cell, error) {
	if !m.IsTerminal() {
		return Empty, ErrGameNotOver
	}

	scores := m.board.Scores()
	switch {
	case scores.Dark > scores.Light:
		return Dark, nil
	case scores.Light > scores.Dark:
		return Light, nil
	default:
		return Tie, nil
	}
}

// PlayMove plays sq for the side to move. On error the match is left unchanged.
func (m *Match) PlayMove(sq Square) (MoveResult, error) {
	if m.IsTerminal() {
		return MoveResult{}, ErrGameOver
	}

	side := m.turn
	if !m.board.IsLegalMove(side, sq) {
		return MoveResult{}, &IllegalMoveError{Side: side, Square: sq}
	}

	move := Move{Side: side, Square: sq}
	result := MoveResult{
		Move:    move,
		Flipped: m.board.apply(side, sq),
	}

	m.history = append(m.history, move)
	m.turn = side.Opponent()

	if m.settle() {
		passed := m.Player(side.Opponent())
		result.Passed = &passed
	}

	result.Terminal = m.IsTerminal()
	return result, nil
}

// settle applies a forced pass for the side to move, if needed. It returns whether it passed.
func (m *Match) settle() bool {
	if !m.IsForcedPass(m.turn) {
		return false
	}

	m.history = append(m.history, Move{Side: m.turn, Pass: true})
	m.turn = m.turn.Opponent()
	return true
}

// History returns a copy of all moves played so far, including forced passes.
func (m *Match) History() []Move {
	return append([]Move(nil), m.history...)
}

// Undo takes back the last placement and any pass that followed it.
func (m *Match) Undo() error {
	last := -1
	for i := len(m.history) - 1; i >= 0; i-- {
		if !m.history[i].Pass {
			last = i
			break
		}
	}

	if last == -1 {
		return ErrNothingToUndo
	}

	m.history = m.history[:last]

	// Rebuild from the start, so the board never depends on reversing flips.
	m.board = m.start
	m.turn = m.startTurn
	for _, move := range m.history {
		if !move.Pass {
			m.board.apply(move.Side, move.Square)
		}
		m.turn = move.Side.Opponent()
	}

	return nil
}
