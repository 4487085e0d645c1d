package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/kipppppp/othello/internal/othello"
	"github.com/kipppppp/othello/internal/player"
)

var (
	human = othello.Player{Name: "Kyle"}
	bot   = othello.Player{Name: "AI", Automated: true}
)

// queue collects scheduled automated moves so tests decide when they run.
type queue struct {
	pending []func()
	delays  []time.Duration
}

func (q *queue) schedule(delay time.Duration, f func()) {
	q.pending = append(q.pending, f)
	q.delays = append(q.delays, delay)
}

func (q *queue) runAll() {
	for len(q.pending) > 0 {
		f := q.pending[0]
		q.pending = q.pending[1:]
		f()
	}
}

func newTestController(t *testing.T, match *othello.Match, opts Options) (*Controller, *queue) {
	t.Helper()

	q := &queue{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := newController(match, player.NewRandomPicker(1), logger, opts, q.schedule)
	c.afterChange()

	return c, q
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestController_CursorStartsOnLegalMove(t *testing.T) {
	c, _ := newTestController(t, othello.NewMatch(human, human), Options{})
	require.Equal(t, othello.Square{Row: 2, Col: 3}, c.GetDrawArgs().Cursor)
}

func TestController_MoveCursor(t *testing.T) {
	c, _ := newTestController(t, othello.NewMatch(human, human), Options{})

	require.Nil(t, c.HandleKey(key(tcell.KeyDown)))
	require.Nil(t, c.HandleKey(runeKey('l')))
	require.Equal(t, othello.Square{Row: 3, Col: 4}, c.cursor)

	// The cursor stops at the edge.
	for i := 0; i < 10; i++ {
		c.HandleKey(runeKey('k'))
		c.HandleKey(key(tcell.KeyLeft))
	}
	require.Equal(t, othello.Square{Row: 0, Col: 0}, c.cursor)

	// Unknown keys are passed on.
	event := runeKey('x')
	require.Equal(t, event, c.HandleKey(event))
}

func TestController_PlayMove(t *testing.T) {
	match := othello.NewMatch(human, human)
	c, _ := newTestController(t, match, Options{})

	// Given: the cursor is on a1, which is illegal
	c.cursor = othello.Square{}
	c.HandleKey(key(tcell.KeyEnter))
	require.Contains(t, c.StatusText(), "Invalid move. Please enter a valid move.")
	require.Empty(t, match.History())

	// When: the cursor moves to d3 and Enter is pressed
	c.cursor = othello.Square{Row: 2, Col: 3}
	c.HandleKey(key(tcell.KeyEnter))

	// Then: the move is played
	require.Equal(t, "d3", match.Transcript())
	require.NotContains(t, c.StatusText(), "Invalid move")
	require.Contains(t, c.StatusText(), "X Kyle: 4\nO Kyle: 1\n")
	require.Equal(t, &othello.Square{Row: 2, Col: 3}, c.GetDrawArgs().LastMove)
}

func TestController_AutomatedOpponent(t *testing.T) {
	match := othello.NewMatch(human, bot)
	c, q := newTestController(t, match, Options{AIDelay: time.Second})
	require.Empty(t, q.pending)

	c.OnMove(othello.Square{Row: 2, Col: 3})
	require.Len(t, q.pending, 1)
	require.Equal(t, []time.Duration{time.Second}, q.delays)

	// Keys are ignored while the automated player is to move.
	c.OnMove(othello.Square{Row: 2, Col: 2})
	c.OnUndo()
	require.Len(t, match.History(), 1)

	q.runAll()
	require.Len(t, match.History(), 2)
	require.Equal(t, othello.Dark, match.Turn())
	require.Contains(t, c.StatusText(), "AI placed a token at: ")
	require.Contains(t, c.StatusText(), "Kyle (X), it's your turn.")

	// Undo takes back the answer and the human move.
	c.HandleKey(runeKey('u'))
	require.Empty(t, match.History())
	require.Empty(t, q.pending)

	c.HandleKey(runeKey('u'))
	require.Contains(t, c.StatusText(), "Nothing to undo.")
}

func TestController_AutomatedMatch(t *testing.T) {
	match := othello.NewMatch(bot, bot)
	c, q := newTestController(t, match, Options{})

	q.runAll()

	require.True(t, match.IsTerminal())
	require.Contains(t, c.StatusText(), "Game over!")

	winner, err := match.Winner()
	require.NoError(t, err)
	if winner == othello.Tie {
		require.Contains(t, c.StatusText(), "Tie game!")
	} else {
		require.Contains(t, c.StatusText(), "is the winner!")
	}
}

func TestController_ForcedPassMessage(t *testing.T) {
	board, err := othello.NewBoardFromString(`
		XO++++++
		O+++++++
		++++++++
		++++++++
		++++++++
		++++++++
		++++++++
		++++++++`)
	require.NoError(t, err)

	match, err := othello.NewMatchFromBoard(board, othello.Dark, human, bot)
	require.NoError(t, err)

	c, q := newTestController(t, match, Options{})

	c.OnMove(othello.Square{Row: 0, Col: 2})
	require.Empty(t, q.pending)
	require.Contains(t, c.StatusText(), "AI had no valid moves. Their turn is forfeited.")
	require.Contains(t, c.StatusText(), "Kyle (X), it's your turn.")
}

func TestController_ToggleHints(t *testing.T) {
	c, _ := newTestController(t, othello.NewMatch(human, human), Options{})
	require.Empty(t, c.GetDrawArgs().Hints)

	c.HandleKey(runeKey('?'))
	require.Equal(t, map[othello.Square]bool{
		{Row: 2, Col: 3}: true,
		{Row: 3, Col: 2}: true,
		{Row: 4, Col: 5}: true,
		{Row: 5, Col: 4}: true,
	}, c.GetDrawArgs().Hints)

	c.HandleKey(runeKey('?'))
	require.Empty(t, c.GetDrawArgs().Hints)
}
