package chess

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Square is a board coordinate. Rank 0 is the eighth rank (the top row
// of a rendered board) and File 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Add returns the square one step away in the given direction.
func (s Square) Add(d Direction) Square {
	return Square{Rank: s.Rank + d.DRank, File: s.File + d.DFile}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + s.File), byte('0' + BoardSize - s.Rank)})
}

// ParseSquare converts algebraic text such as "e2" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Rank: BoardSize - int(rank-'0'), File: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed tables and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Direction is a unit step across the board.
type Direction struct {
	DRank int
	DFile int
}

// Direction tables used by ray scans and attack detection.
var (
	Orthogonals = [4]Direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	Diagonals   = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	KnightOffsets = [8]Direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	KingOffsets = [8]Direction{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// UnitStep normalises the displacement from one square to another into a
// single step. ok is false unless the squares differ and share a rank,
// file or diagonal.
func UnitStep(from, to Square) (d Direction, ok bool) {
	dr := to.Rank - from.Rank
	df := to.File - from.File
	if dr == 0 && df == 0 {
		return Direction{}, false
	}
	if dr != 0 && df != 0 && abs(dr) != abs(df) {
		return Direction{}, false
	}
	return Direction{DRank: sign(dr), DFile: sign(df)}, true
}

// Distance returns the king-move (Chebyshev) distance between two squares.
func Distance(a, b Square) int {
	dr := abs(a.Rank - b.Rank)
	df := abs(a.File - b.File)
	if dr > df {
		return dr
	}
	return df
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
