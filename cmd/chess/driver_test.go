package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/output"
	"github.com/lgbarn/chess-go/internal/testutil"
)

// runDriver plays input against a game and returns what the player saw.
func runDriver(t *testing.T, g *engine.Game, input string) string {
	t.Helper()
	var out bytes.Buffer
	states := output.NewTextWriter(&out, *config.NewRenderConfig())
	d := newDriver(g, strings.NewReader(input), &out, states, log.New(io.Discard, "", 0), config.Normal)
	if err := d.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out.String()
}

func TestDriverPlaysMoves(t *testing.T) {
	g := engine.NewGame()
	out := runDriver(t, g, "e2e4\ne7 e5\ng1-f3\nquit\n")

	testutil.AssertEqual(t, g.Ply(), 3)
	testutil.AssertContains(t, out, "White> ")
	testutil.AssertContains(t, out, "Black> ")
	testutil.AssertContains(t, out, "Black to move")
	testutil.AssertContains(t, out, "4 . . . . P . . .")
}

func TestDriverReportsRejections(t *testing.T) {
	g := engine.NewGame()
	out := runDriver(t, g, "e2e4\nb8b6\ne9e5\nhelp\nfen\n")

	testutil.AssertEqual(t, g.Ply(), 1, "rejected input does not change the game")
	testutil.AssertContains(t, out, "Illegal move: ply 2, Black Knight, b8-b6: illegal move pattern")
	testutil.AssertContains(t, out, "Invalid input: ")
	testutil.AssertContains(t, out, "Commands:")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n")
}

func TestDriverPromotionPrompt(t *testing.T) {
	g := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	out := runDriver(t, g, "a7a8\nking\nknight\nfen\nquit\n")

	testutil.AssertContains(t, out, "Promote pawn on a8 to (q, r, b, n): ")
	testutil.AssertContains(t, out, "Invalid choice: ")
	testutil.AssertContains(t, out, "N3k3/8/8/8/8/8/8/4K3 b - - 0 1\n")

	_, pending := g.PendingPromotion()
	testutil.AssertFalse(t, pending)
}

func TestDriverPromotionInMove(t *testing.T) {
	g := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	out := runDriver(t, g, "a7a8=R\n")

	testutil.AssertNotContains(t, out, "Promote pawn")
	testutil.AssertContains(t, out, "8 R . . . k . . .")
}

func TestDriverRejectsPromotionOnOrdinaryMove(t *testing.T) {
	g := engine.NewGame()
	out := runDriver(t, g, "e2e4q\nquit\n")

	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertContains(t, out, "Illegal move: ")
}

func TestDriverEndOfInputDuringPromotion(t *testing.T) {
	g := mustFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	runDriver(t, g, "a7a8\n")

	sq, pending := g.PendingPromotion()
	testutil.AssertTrue(t, pending)
	testutil.AssertEqual(t, sq.String(), "a8")
}

func TestDriverCommentary(t *testing.T) {
	var logs, out bytes.Buffer
	g := engine.NewGame()
	states := output.NewJSONWriterSingle(&out)
	d := newDriver(g, strings.NewReader("e2e4\ne2e4\n"), &out, states, log.New(&logs, "", 0), config.Commentary)
	testutil.AssertNoError(t, d.run())

	testutil.AssertContains(t, logs.String(), "ply 1: e2e4 (DoubleAdvance)")
	testutil.AssertContains(t, logs.String(), "rejected e2e4: ")
}

func TestReplay(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		var out bytes.Buffer
		g := engine.NewGame()
		err := replay(g, []string{"e2e4", "e7e5", "g1f3"}, output.NewJSONWriter(&out))
		testutil.AssertNoError(t, err)

		var states []output.GameState
		if err := json.Unmarshal(out.Bytes(), &states); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		testutil.AssertEqual(t, len(states), 3)
		testutil.AssertEqual(t, states[2].LastMove, "g1f3")
		testutil.AssertEqual(t, states[2].Turn, "black")
	})

	t.Run("stops at illegal move", func(t *testing.T) {
		var out bytes.Buffer
		g := engine.NewGame()
		err := replay(g, []string{"e2e4", "e2e4"}, output.NewTextWriter(&out, *config.NewRenderConfig()))
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSource)
		testutil.AssertContains(t, err.Error(), "move 2 (e2e4)")
		testutil.AssertEqual(t, g.Ply(), 1)
	})

	t.Run("bad text", func(t *testing.T) {
		err := replay(engine.NewGame(), []string{"e2"}, output.NewJSONWriter(io.Discard))
		testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
	})
}

func mustFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}
