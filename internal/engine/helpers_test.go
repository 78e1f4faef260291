package engine

import (
	"testing"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// play makes each move, given as four-character coordinates such as
// "e2e4", and fails the test if any is rejected.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := try(t, g, m); err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
}

func try(t *testing.T, g *Game, move string) (MoveKind, error) {
	t.Helper()
	if len(move) != 4 {
		t.Fatalf("bad move %q in test", move)
	}
	return g.Move(testutil.Sq(t, move[:2]), testutil.Sq(t, move[2:]))
}

// state is everything a rejected move must leave untouched.
type state struct {
	board   chess.Board
	white   chess.Player
	black   chess.Player
	turn    chess.Colour
	ply     int
	clock   int
	fen     string
	pending bool
}

func capture(g *Game) state {
	_, pending := g.PendingPromotion()
	return state{
		board:   g.Board(),
		white:   g.Player(chess.White),
		black:   g.Player(chess.Black),
		turn:    g.Turn(),
		ply:     g.Ply(),
		clock:   g.HalfmoveClock(),
		fen:     g.FEN(),
		pending: pending,
	}
}

func assertUnchanged(t *testing.T, g *Game, before state) {
	t.Helper()
	after := capture(g)
	testutil.AssertBoardEqual(t, after.board, before.board, "board")
	if after != before {
		t.Errorf("game state changed by rejected move:\nbefore %+v\nafter  %+v", before, after)
	}
}
