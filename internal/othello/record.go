package othello

import (
	"fmt"
	"strings"
)

// PassField is the transcript notation of a forced pass.
const PassField = "--"

// Transcript returns the match history in field notation, e.g. "d3 c5 f6 -- e6".
func (m *Match) Transcript() string {
	fields := make([]string, len(m.history))
	for i, move := range m.history {
		fields[i] = move.String()
	}
	return strings.Join(fields, " ")
}

// ParseTranscript parses a whitespace separated list of fields. Move numbers ("1.") and
// pass markers ("--", "ps", "pa") are skipped since passes follow from the position.
func ParseTranscript(transcript string) ([]Square, error) {
	squares := make([]Square, 0, SquareCount)

	for _, word := range strings.Fields(transcript) {
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}

		switch strings.ToLower(word) {
		case PassField, "ps", "pa":
			continue
		}

		sq, err := ParseField(word)
		if err != nil {
			return nil, fmt.Errorf("failed to parse move %s: %w", word, err)
		}
		squares = append(squares, sq)
	}

	return squares, nil
}

// Replay plays squares in order from the starting position.
func Replay(dark, light Player, squares []Square) (*Match, error) {
	m := NewMatch(dark, light)

	for i, sq := range squares {
		if _, err := m.PlayMove(sq); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", i+1, err)
		}
	}

	return m, nil
}
