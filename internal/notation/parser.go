// Package notation parses the coordinate move text typed by players.
//
// A move is two squares, optionally separated by a space or a dash, and an
// optional promotion suffix:
//
//	e2e4   e2 e4   e2-e4   e7e8q   e7e8=Q   E7-E8=q
//
// Parsing is purely syntactic. Whether the move is legal is decided by the
// engine.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// Input is a move request parsed from text.
type Input struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType // chess.NoPiece when no suffix was given
}

// String returns the input in canonical "e7e8q" form.
func (in Input) String() string {
	s := in.From.String() + in.To.String()
	if in.Promotion != chess.NoPiece {
		s += strings.ToLower(string(in.Promotion.Letter()))
	}
	return s
}

// scanner walks move text one byte at a time, tracking the column for
// error messages.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) skipSpaces() {
	for !s.atEnd() && (s.peek() == ' ' || s.peek() == '\t') {
		s.pos++
	}
}

func (s *scanner) fail(err error, expected string) error {
	got := "end of input"
	if !s.atEnd() {
		got = fmt.Sprintf("%q", s.peek())
	}
	return &errors.ParseError{
		Err:      err,
		Input:    s.text,
		Column:   s.pos + 1,
		Expected: expected,
		Got:      got,
	}
}

// square reads a file letter followed by a rank digit.
func (s *scanner) square() (chess.Square, error) {
	start := s.pos
	if s.pos+2 > len(s.text) {
		return chess.Square{}, s.fail(errors.ErrParseFailure, "square")
	}
	sq, err := chess.ParseSquare(s.text[s.pos : s.pos+2])
	if err != nil {
		return chess.Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s.text,
			Column:   start + 1,
			Expected: "square a1-h8",
			Got:      fmt.Sprintf("%q", s.text[s.pos:s.pos+2]),
		}
	}
	s.pos += 2
	return sq, nil
}

// ParseMove parses move text such as "e2e4" or "e7-e8=Q".
func ParseMove(text string) (Input, error) {
	s := &scanner{text: strings.TrimSpace(text)}
	if s.atEnd() {
		return Input{}, s.fail(errors.ErrParseFailure, "move")
	}

	var in Input
	var err error
	if in.From, err = s.square(); err != nil {
		return Input{}, err
	}

	s.skipSpaces()
	if s.peek() == '-' {
		s.pos++
		s.skipSpaces()
	}

	if in.To, err = s.square(); err != nil {
		return Input{}, err
	}

	if s.peek() == '=' {
		s.pos++
		if s.atEnd() {
			return Input{}, s.fail(errors.ErrParseFailure, "promotion piece")
		}
	}
	if c := s.peek(); (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		in.Promotion = promotionLetter(c)
		if in.Promotion == chess.NoPiece {
			return Input{}, s.fail(errors.ErrInvalidPromotion, "one of n, b, r, q")
		}
		s.pos++
	}

	if !s.atEnd() {
		return Input{}, s.fail(errors.ErrParseFailure, "end of move")
	}
	return in, nil
}

// promotionLetter returns the promotable piece named by a letter in either
// case, or chess.NoPiece.
func promotionLetter(c byte) chess.PieceType {
	pt := chess.PieceTypeFromLetter(c)
	if !pt.Promotable() {
		return chess.NoPiece
	}
	return pt
}

var promotionNames = map[string]chess.PieceType{
	"knight": chess.Knight,
	"bishop": chess.Bishop,
	"rook":   chess.Rook,
	"queen":  chess.Queen,
}

// ParsePromotion parses a promotion choice: a single letter (n, b, r, q)
// or a full piece name, in any case.
func ParsePromotion(text string) (chess.PieceType, error) {
	word := strings.ToLower(strings.TrimSpace(text))
	if len(word) == 1 {
		if pt := promotionLetter(word[0]); pt != chess.NoPiece {
			return pt, nil
		}
	}
	if pt, ok := promotionNames[word]; ok {
		return pt, nil
	}
	return chess.NoPiece, &errors.ParseError{
		Err:      errors.ErrInvalidPromotion,
		Input:    text,
		Expected: "knight, bishop, rook or queen",
		Got:      fmt.Sprintf("%q", word),
	}
}
