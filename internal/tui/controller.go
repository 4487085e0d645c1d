// Package tui is a full-screen terminal interface for playing a match.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kipppppp/othello/internal/console"
	"github.com/kipppppp/othello/internal/othello"
	"github.com/kipppppp/othello/internal/player"
)

const controlsText = `
hjkl/←↓↑→ move   ⏎ play
u undo   ? hints   q quit`

// Options configures a Controller.
type Options struct {
	// ShowHints marks the legal moves of the side to move
	ShowHints bool

	// AIDelay is how long an automated player waits before moving
	AIDelay time.Duration
}

type Controller struct {
	app    *tview.Application
	board  *tview.Box
	status *tview.TextView

	// match is only touched on the tview event loop
	match  *othello.Match
	picker player.Picker
	logger *slog.Logger

	cursor    othello.Square
	lastMove  *othello.Square
	showHints bool
	aiDelay   time.Duration

	// message is shown in the status panel until the next move
	message string

	// pending is set while an automated move is scheduled
	pending bool

	// schedule runs f on the event loop after delay
	schedule func(delay time.Duration, f func())
	timer    *time.Timer
}

func NewController(match *othello.Match, picker player.Picker, logger *slog.Logger, opts Options) *Controller {
	return newController(match, picker, logger, opts, nil)
}

func newController(
	match *othello.Match,
	picker player.Picker,
	logger *slog.Logger,
	opts Options,
	schedule func(time.Duration, func()),
) *Controller {
	c := &Controller{
		app:       tview.NewApplication(),
		board:     tview.NewBox(),
		status:    tview.NewTextView(),
		match:     match,
		picker:    picker,
		logger:    logger.With("match_id", match.ID().String()),
		showHints: opts.ShowHints,
		aiDelay:   opts.AIDelay,
		schedule:  schedule,
	}

	if c.schedule == nil {
		c.schedule = c.scheduleOnEventLoop
	}

	c.cursor = othello.Square{Row: 3, Col: 3}
	if moves := match.CurrentLegalMoves(); len(moves) > 0 {
		c.cursor = moves[0]
	}

	drawer := newBoardDrawer(c)
	c.board.SetDrawFunc(drawer.draw)
	c.board.SetInputCapture(c.HandleKey)

	c.status.SetBorder(true)
	c.status.SetBorderPadding(0, 0, 1, 1)
	c.status.SetTitle(" Othello ")
	c.status.SetTitleAlign(tview.AlignLeft)

	layout := tview.NewFlex().
		AddItem(c.board, BoardWidth+2, 0, true).
		AddItem(c.status, 0, 1, false)

	c.app.SetRoot(layout, true).SetFocus(c.board)

	return c
}

// Run shows the match until the player quits or ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("match started",
		"dark", c.match.Player(othello.Dark).Name,
		"light", c.match.Player(othello.Light).Name,
	)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			c.app.Stop()
		case <-done:
		}
	}()

	c.afterChange()

	err := c.app.Run()

	if c.timer != nil {
		c.timer.Stop()
	}

	if err != nil {
		return fmt.Errorf("terminal interface failed: %w", err)
	}

	c.logger.Info("match closed", "transcript", c.match.Transcript())
	return ctx.Err()
}

func (c *Controller) scheduleOnEventLoop(delay time.Duration, f func()) {
	c.timer = time.AfterFunc(delay, func() {
		c.app.QueueUpdateDraw(f)
	})
}

// HandleKey is the input capture of the board.
func (c *Controller) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		c.MoveCursor(-1, 0)
	case tcell.KeyDown:
		c.MoveCursor(1, 0)
	case tcell.KeyLeft:
		c.MoveCursor(0, -1)
	case tcell.KeyRight:
		c.MoveCursor(0, 1)
	case tcell.KeyEnter:
		c.OnMove(c.cursor)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			c.MoveCursor(-1, 0)
		case 'j':
			c.MoveCursor(1, 0)
		case 'h':
			c.MoveCursor(0, -1)
		case 'l':
			c.MoveCursor(0, 1)
		case 'u':
			c.OnUndo()
		case '?':
			c.showHints = !c.showHints
		case 'q':
			c.app.Stop()
		default:
			return event
		}
	default:
		return event
	}

	return nil
}

// MoveCursor moves the cursor, stopping at the edge of the board.
func (c *Controller) MoveCursor(dRow, dCol int) {
	next := othello.Square{Row: c.cursor.Row + dRow, Col: c.cursor.Col + dCol}
	if next.Valid() {
		c.cursor = next
	}
}

// humanToMove reports if the side to move is controlled with the keyboard.
func (c *Controller) humanToMove() bool {
	return !c.match.IsTerminal() && !c.match.CurrentPlayer().Automated
}

func (c *Controller) OnMove(sq othello.Square) {
	if !c.humanToMove() {
		return
	}

	result, err := c.match.PlayMove(sq)
	if errors.Is(err, othello.ErrIllegalMove) {
		c.logger.Debug("rejected move", "error", err)
		c.message = "Invalid move. Please enter a valid move."
		c.refreshStatus()
		return
	}
	if err != nil {
		c.logger.Error("failed to play move", "error", err)
		return
	}

	c.message = ""
	c.onMoved(result)
}

// OnUndo takes back moves until a human player is to move again.
func (c *Controller) OnUndo() {
	if c.pending || (!c.match.IsTerminal() && c.match.CurrentPlayer().Automated) {
		return
	}

	if err := c.match.Undo(); err != nil {
		c.message = "Nothing to undo."
		c.refreshStatus()
		return
	}

	for c.match.CurrentPlayer().Automated {
		if err := c.match.Undo(); err != nil {
			break
		}
	}

	c.lastMove = nil
	c.message = ""
	c.logger.Debug("move undone", "transcript", c.match.Transcript())
	c.afterChange()
}

func (c *Controller) playAutomated() {
	c.pending = false

	if c.match.IsTerminal() || !c.match.CurrentPlayer().Automated {
		return
	}

	current := c.match.CurrentPlayer()

	sq, err := c.picker.Pick(c.match.CurrentLegalMoves())
	if err != nil {
		c.logger.Error("automated player failed to pick a move", "error", err)
		return
	}

	result, err := c.match.PlayMove(sq)
	if err != nil {
		c.logger.Error("automated player picked a move that cannot be played", "error", err)
		return
	}

	c.message = fmt.Sprintf("%s placed a token at: %s", current.Name, console.FormatSquare(sq))
	c.onMoved(result)
}

func (c *Controller) onMoved(result othello.MoveResult) {
	sq := result.Move.Square
	c.lastMove = &sq

	c.logger.Debug("move played",
		"side", result.Move.Side.String(),
		"square", sq.Field(),
		"flipped", len(result.Flipped),
	)

	if result.Passed != nil {
		forfeit := fmt.Sprintf("%s had no valid moves. Their turn is forfeited.", result.Passed.Name)
		if c.message == "" {
			c.message = forfeit
		} else {
			c.message += "\n" + forfeit
		}
	}

	if result.Terminal {
		scores := c.match.Scores()
		c.logger.Info("match finished",
			"dark", scores.Dark,
			"light", scores.Light,
			"transcript", c.match.Transcript(),
		)
	}

	c.afterChange()
}

// afterChange refreshes the status and hands the turn to an automated player if needed.
func (c *Controller) afterChange() {
	c.refreshStatus()

	if c.pending || c.match.IsTerminal() || !c.match.CurrentPlayer().Automated {
		return
	}

	c.pending = true
	c.schedule(c.aiDelay, c.playAutomated)
}

func (c *Controller) GetDrawArgs() *DrawArgs {
	args := &DrawArgs{
		Board:    c.match.Board(),
		Cursor:   c.cursor,
		LastMove: c.lastMove,
		Hints:    map[othello.Square]bool{},
	}

	if c.showHints && c.humanToMove() {
		for _, sq := range c.match.CurrentLegalMoves() {
			args.Hints[sq] = true
		}
	}

	return args
}

func (c *Controller) StatusText() string {
	var sb strings.Builder

	for _, side := range []othello.Cell{othello.Dark, othello.Light} {
		p := c.match.Player(side)
		fmt.Fprintf(&sb, "%c %s: %d\n", side.Symbol(), p.Name, p.Score)
	}
	sb.WriteString("\n")

	if c.match.IsTerminal() {
		sb.WriteString("Game over!\n")

		winner, _ := c.match.Winner()
		if winner == othello.Tie {
			sb.WriteString("Tie game!\n")
		} else {
			p := c.match.Player(winner)
			fmt.Fprintf(&sb, "%s (%c) is the winner!\n", p.Name, p.Side.Symbol())
		}
	} else {
		current := c.match.CurrentPlayer()
		fmt.Fprintf(&sb, "%s (%c), it's your turn.\n", current.Name, current.Side.Symbol())
	}

	if c.message != "" {
		sb.WriteString("\n" + c.message + "\n")
	}

	sb.WriteString(controlsText)
	return sb.String()
}

func (c *Controller) refreshStatus() {
	c.status.SetText(c.StatusText())
}
