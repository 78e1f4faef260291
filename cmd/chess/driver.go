package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/notation"
	"github.com/lgbarn/chess-go/internal/output"
)

const helpText = `Enter moves as two squares: e2e4, e2 e4 or e2-e4.
Add a piece letter to promote in one step: e7e8q or e7e8=Q.
Commands:
  board   show the board
  fen     show the position as FEN
  help    show this help
  quit    leave the game
`

// driver runs the interactive turn loop over a reader and a writer.
type driver struct {
	game      *engine.Game
	in        *bufio.Scanner
	out       io.Writer
	states    output.StateWriter
	logger    *log.Logger
	verbosity int
}

func newDriver(g *engine.Game, in io.Reader, out io.Writer, states output.StateWriter, logger *log.Logger, verbosity int) *driver {
	return &driver{
		game:      g,
		in:        bufio.NewScanner(in),
		out:       out,
		states:    states,
		logger:    logger,
		verbosity: verbosity,
	}
}

// run shows the board and reads moves until quit or end of input.
func (d *driver) run() error {
	if err := d.states.WriteState(d.game); err != nil {
		return err
	}

	for {
		if _, pending := d.game.PendingPromotion(); pending {
			ok, err := d.choosePromotion()
			if !ok || err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(d.out, "%s> ", d.game.Turn())
		if !d.in.Scan() {
			fmt.Fprintln(d.out)
			return d.in.Err()
		}

		line := strings.TrimSpace(d.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "board":
			if err := d.states.WriteState(d.game); err != nil {
				return err
			}
		case "fen":
			fmt.Fprintln(d.out, d.game.FEN())
		case "help", "?":
			fmt.Fprint(d.out, helpText)
		default:
			if err := d.move(line); err != nil {
				return err
			}
		}
	}
}

// move parses and plays one move. Bad input and rejected moves are
// reported and the player asked again; only output errors are returned.
func (d *driver) move(text string) error {
	in, err := notation.ParseMove(text)
	if err != nil {
		fmt.Fprintf(d.out, "Invalid input: %v\n", err)
		return nil
	}

	kind, err := d.game.MoveWithPromotion(in.From, in.To, in.Promotion)
	if err != nil {
		fmt.Fprintf(d.out, "Illegal move: %v\n", err)
		d.commentary("rejected %s: %v", in, err)
		return nil
	}
	d.commentary("ply %d: %s (%s)", d.game.Ply(), in, kind)

	if _, pending := d.game.PendingPromotion(); pending {
		return nil
	}
	return d.states.WriteState(d.game)
}

// choosePromotion asks for the piece a pawn on the last rank becomes,
// repeating until the answer is valid. It reports false at end of input.
func (d *driver) choosePromotion() (bool, error) {
	sq, _ := d.game.PendingPromotion()
	for {
		fmt.Fprintf(d.out, "Promote pawn on %s to (q, r, b, n): ", sq)
		if !d.in.Scan() {
			fmt.Fprintln(d.out)
			return false, d.in.Err()
		}

		choice, err := notation.ParsePromotion(d.in.Text())
		if err != nil {
			fmt.Fprintf(d.out, "Invalid choice: %v\n", err)
			continue
		}
		if err := d.game.Promote(choice); err != nil {
			return false, err
		}
		d.commentary("promoted on %s to %s", sq, choice)
		return true, d.states.WriteState(d.game)
	}
}

func (d *driver) commentary(format string, args ...interface{}) {
	if d.verbosity >= config.Commentary {
		d.logger.Printf(format, args...)
	}
}

// replay plays a fixed list of moves, writing the position after each one.
// It stops at the first move that cannot be played.
func replay(g *engine.Game, moves []string, states output.StateWriter) error {
	for i, text := range moves {
		in, err := notation.ParseMove(text)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		if _, err := g.MoveWithPromotion(in.From, in.To, in.Promotion); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, in, err)
		}
		if err := states.WriteState(g); err != nil {
			return err
		}
	}
	return states.Close()
}
