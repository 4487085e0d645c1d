package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTranscript(t *testing.T) {
	tests := []struct {
		name        string
		transcript  string
		expected    []Square
		expectError bool
	}{
		{
			name:       "empty",
			transcript: "",
			expected:   []Square{},
		},
		{
			name:       "fields",
			transcript: "d3 c5 F6",
			expected:   []Square{sq(2, 3), sq(4, 2), sq(5, 5)},
		},
		{
			name:       "move numbers and passes",
			transcript: "1. d3 c5 2. f6 -- 3. ps pa e6",
			expected:   []Square{sq(2, 3), sq(4, 2), sq(5, 5), sq(5, 4)},
		},
		{
			name:        "invalid field",
			transcript:  "d3 z9",
			expectError: true,
		},
		{
			name:        "too long",
			transcript:  "d33",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			squares, err := ParseTranscript(tt.transcript)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidField)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, squares)
		})
	}
}

func TestReplay_IllegalMove(t *testing.T) {
	_, err := Replay(testDark, testLight, []Square{sq(2, 3), sq(0, 0)})
	require.ErrorIs(t, err, ErrIllegalMove)
	require.EqualError(t, err, "failed to replay move 2: illegal move: light cannot play a1")
}

// TestReplay_RoundTrip replays recorded random games and expects the exact same outcome.
func TestReplay_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := NewMatch(testDark, testLight)

		for !m.IsTerminal() {
			moves := m.CurrentLegalMoves()
			_, err := m.PlayMove(moves[rng.Intn(len(moves))])
			require.NoError(t, err)
		}

		squares, err := ParseTranscript(m.Transcript())
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			replayed, err := Replay(testDark, testLight, squares)
			require.NoError(t, err)

			require.Equal(t, m.Board(), replayed.Board())
			require.Equal(t, m.Scores(), replayed.Scores())
			require.Equal(t, m.History(), replayed.History())
			require.True(t, replayed.IsTerminal())
		}
	}
}

func TestSquare_Field(t *testing.T) {
	require.Equal(t, "a1", sq(0, 0).Field())
	require.Equal(t, "h8", sq(7, 7).Field())
	require.Equal(t, "d3", sq(2, 3).String())
	require.Equal(t, "??", sq(8, 0).Field())

	for row := 0; row < MaxRow; row++ {
		for col := 0; col < MaxCol; col++ {
			parsed, err := ParseField(sq(row, col).Field())
			require.NoError(t, err)
			require.Equal(t, sq(row, col), parsed)
		}
	}

	parsed, err := ParseField("C4")
	require.NoError(t, err)
	require.Equal(t, sq(3, 2), parsed)

	for _, field := range []string{"", "a", "a9", "i1", "a0", "11", "abc"} {
		_, err = ParseField(field)
		require.ErrorIs(t, err, ErrInvalidField, field)
	}
}

func TestCell(t *testing.T) {
	require.Equal(t, Light, Dark.Opponent())
	require.Equal(t, Dark, Light.Opponent())
	require.Equal(t, Empty, Empty.Opponent())

	require.True(t, Dark.IsSide())
	require.True(t, Light.IsSide())
	require.False(t, Empty.IsSide())

	require.Equal(t, byte('X'), Dark.Symbol())
	require.Equal(t, byte('O'), Light.Symbol())
	require.Equal(t, byte('+'), Empty.Symbol())

	require.Equal(t, "dark", Dark.String())
	require.Equal(t, Empty, Tie)
}
