package console

import (
	"bufio"
	"fmt"
	"io"
)

// clearSequence moves the cursor home and clears the screen on ANSI terminals.
const clearSequence = "\033[H\033[2J"

// Terminal is the line based input and output shared by player setup and the turn loop.
type Terminal struct {
	in    *bufio.Scanner
	out   io.Writer
	clear bool
}

// NewTerminal creates a Terminal. When clear is false, ClearScreen does nothing.
func NewTerminal(in io.Reader, out io.Writer, clear bool) *Terminal {
	return &Terminal{
		in:    bufio.NewScanner(in),
		out:   out,
		clear: clear,
	}
}

// Prompt writes prompt and reads one line. It returns io.EOF once input is exhausted.
func (t *Terminal) Prompt(prompt string) (string, error) {
	t.Printf("%s", prompt)

	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return t.in.Text(), nil
}

func (t *Terminal) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...any) {
	_, _ = fmt.Fprintln(t.out, args...)
}

// ClearScreen clears the terminal, if enabled.
func (t *Terminal) ClearScreen() {
	if t.clear {
		t.Printf("%s", clearSequence)
	}
}
