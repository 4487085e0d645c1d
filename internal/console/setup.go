package console

import (
	"fmt"
	"strings"

	"github.com/kipppppp/othello/internal/config"
	"github.com/kipppppp/othello/internal/othello"
)

const (
	// automatedEntry is typed instead of a name to let the computer play a side.
	automatedEntry = "0"

	automatedName = "AI"
)

// SetupPlayers asks for the names of both players, dark first. Presets from the config
// that have a name or are automated are used without asking.
func SetupPlayers(term *Terminal, presets config.Players) (dark, light othello.Player, err error) {
	dark, err = setupPlayer(term, 1, othello.Dark, presets.Dark)
	if err != nil {
		return othello.Player{}, othello.Player{}, err
	}

	light, err = setupPlayer(term, 2, othello.Light, presets.Light)
	if err != nil {
		return othello.Player{}, othello.Player{}, err
	}

	return dark, light, nil
}

func setupPlayer(term *Terminal, number int, side othello.Cell, preset config.Player) (othello.Player, error) {
	if preset.Automated {
		name := preset.Name
		if name == "" {
			name = automatedName
		}
		return othello.Player{Name: name, Automated: true}, nil
	}

	if preset.Name != "" {
		return othello.Player{Name: preset.Name}, nil
	}

	for {
		name, err := term.Prompt(fmt.Sprintf("Player %d(%c), please enter your name: ", number, side.Symbol()))
		if err != nil {
			return othello.Player{}, err
		}

		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue
		case automatedEntry:
			return othello.Player{Name: automatedName, Automated: true}, nil
		default:
			return othello.Player{Name: name}, nil
		}
	}
}
