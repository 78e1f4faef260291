package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-go/internal/chess"
)

// Sq parses an algebraic square name, failing the test on bad input.
func Sq(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q in test: %v", name, err)
	}
	return sq
}

// Diagram builds a snapshot from eight rows of FEN letters, eighth rank
// first, with '.' for empty squares. Spaces are ignored.
func Diagram(t *testing.T, rows ...string) chess.Snapshot {
	t.Helper()
	var s chess.Snapshot
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	for rank, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram row %d is %q, want %d squares", rank, row, chess.BoardSize)
		}
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			pieceType := chess.PieceTypeFromLetter(c)
			if pieceType == chess.NoPiece {
				t.Fatalf("diagram row %d has bad piece %q", rank, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			s[rank][file] = chess.Cell{Occupied: true, Colour: colour, Type: pieceType}
		}
	}
	return s
}

// AssertSnapshot compares a board snapshot against a diagram, printing the
// differing cells on failure.
func AssertSnapshot(t *testing.T, got chess.Snapshot, rows ...string) {
	t.Helper()
	want := Diagram(t, rows...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

// AssertBoardEqual compares two boards including every piece flag.
func AssertBoardEqual(t *testing.T, got, want chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	AssertDiff(t, got, want, []cmp.Option{cmp.AllowUnexported(chess.Board{})}, msgAndArgs...)
}
