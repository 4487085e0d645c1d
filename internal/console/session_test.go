package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kipppppp/othello/internal/othello"
	"github.com/kipppppp/othello/internal/player"
)

var (
	human = othello.Player{Name: "Kyle"}
	bot   = othello.Player{Name: "AI", Automated: true}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runSession plays match with the given input and returns everything written.
func runSession(t *testing.T, match *othello.Match, input string) string {
	t.Helper()

	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(input), &out, false)
	session := NewSession(term, match, player.NewRandomPicker(1), discardLogger(), false)

	require.NoError(t, session.Run(context.Background()))
	return out.String()
}

func TestSession_AutomatedMatch(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		match := othello.NewMatch(bot, bot)

		var out bytes.Buffer
		term := NewTerminal(strings.NewReader(""), &out, false)
		session := NewSession(term, match, player.NewRandomPicker(seed), discardLogger(), true)

		require.NoError(t, session.Run(context.Background()))
		require.True(t, match.IsTerminal())

		output := out.String()
		require.Contains(t, output, "Game over! Total points below")
		require.True(t, strings.HasSuffix(output, "\nThanks for playing (:\n"))

		placements := 0
		for _, move := range match.History() {
			if !move.Pass {
				placements++
			}
		}
		require.Equal(t, placements, strings.Count(output, "AI placed a token at: "))

		scores := match.Scores()
		require.Contains(t, output, fmt.Sprintf("X: %d\nO: %d\n", scores.Dark, scores.Light))

		winner, err := match.Winner()
		require.NoError(t, err)
		if winner == othello.Tie {
			require.Contains(t, output, "Tie game!")
		} else {
			require.Contains(t, output, fmt.Sprintf("AI (%c) is the winner!", winner.Symbol()))
		}
	}
}

func TestSession_HumanInput(t *testing.T) {
	match := othello.NewMatch(human, bot)

	output := runSession(t, match, "?\n9,9\nabc\n1,1\n3,4\nexit\n")

	require.Contains(t, output, "Kyle (X), it's your turn.\nX: 2\nO: 2\n")
	require.Contains(t, output, movePrompt+"3,4 4,3 5,6 6,5\n")
	require.Equal(t, 2, strings.Count(output, "Invalid input format. Please enter a valid move."))
	require.Equal(t, 1, strings.Count(output, "Invalid move. Please enter a valid move."))
	require.Contains(t, output, "AI (O), it's your turn.\nX: 4\nO: 1\n")
	require.Contains(t, output, "AI placed a token at: ")
	require.True(t, strings.HasSuffix(output, "Thanks for playing!\n"))

	history := match.History()
	require.Len(t, history, 2)
	require.Equal(t, othello.Move{Side: othello.Dark, Square: othello.Square{Row: 2, Col: 3}}, history[0])
}

func TestSession_EOFEndsMatch(t *testing.T) {
	match := othello.NewMatch(human, human)

	output := runSession(t, match, "")

	require.True(t, strings.HasSuffix(output, "Thanks for playing!\n"))
	require.Empty(t, match.History())
}

func TestSession_UndoAgainstAutomatedPlayer(t *testing.T) {
	match := othello.NewMatch(human, bot)

	output := runSession(t, match, "undo\nd3\nundo\nexit\n")

	require.Contains(t, output, "Nothing to undo.")

	// The answer of the automated player is taken back together with the human move.
	require.Empty(t, match.History())
	require.Equal(t, othello.NewBoardStart(), match.Board())
	require.Equal(t, othello.Dark, match.Turn())
}

func TestSession_ForcedPass(t *testing.T) {
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

	// Given: dark plays c1, light has no answer
	// When: dark captures the last light token on a3
	output := runSession(t, match, "1,3\n3,1\n")

	// Then: light forfeits once and dark wins
	require.Equal(t, 1, strings.Count(output, "AI had no valid moves. Their turn is forfeited."))
	require.Contains(t, output, "Game over! Total points below")
	require.Contains(t, output, "X: 5\nO: 0\n")
	require.Contains(t, output, "Kyle (X) is the winner!")
	require.Equal(t, "c1 -- a3", match.Transcript())
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	match := othello.NewMatch(bot, bot)
	term := NewTerminal(strings.NewReader(""), io.Discard, false)
	session := NewSession(term, match, player.NewRandomPicker(1), discardLogger(), false)

	require.ErrorIs(t, session.Run(ctx), context.Canceled)
	require.Empty(t, match.History())
}

func TestSession_LogsMatchID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	match := othello.NewMatch(human, human)
	term := NewTerminal(strings.NewReader("3,4\nexit\n"), io.Discard, true)
	session := NewSession(term, match, player.NewRandomPicker(1), logger, false)

	require.NoError(t, session.Run(context.Background()))

	matchID := "match_id=" + match.ID().String()
	require.Contains(t, logs.String(), "msg=\"match started\" "+matchID)
	require.Contains(t, logs.String(), "msg=\"move played\" "+matchID+" side=dark square=d3 flipped=1")
	require.Contains(t, logs.String(), "msg=\"match abandoned\" "+matchID)
}
