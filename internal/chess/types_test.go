package chess

import (
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chess-go/internal/errors"
)

func TestColourGeometry(t *testing.T) {
	tests := []struct {
		colour        Colour
		forward       int
		backRank      int
		pawnRank      int
		promotionRank int
	}{
		{White, -1, 7, 6, 0},
		{Black, 1, 0, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Forward(); got != tt.forward {
				t.Errorf("Forward() = %d; want %d", got, tt.forward)
			}
			if got := tt.colour.BackRank(); got != tt.backRank {
				t.Errorf("BackRank() = %d; want %d", got, tt.backRank)
			}
			if got := tt.colour.PawnRank(); got != tt.pawnRank {
				t.Errorf("PawnRank() = %d; want %d", got, tt.pawnRank)
			}
			if got := tt.colour.PromotionRank(); got != tt.promotionRank {
				t.Errorf("PromotionRank() = %d; want %d", got, tt.promotionRank)
			}
		})
	}

	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
}

func TestPieceValues(t *testing.T) {
	tests := []struct {
		piece Piece
		value int
	}{
		{W(Pawn), 1},
		{B(Knight), 3},
		{W(Bishop), 3},
		{B(Rook), 5},
		{W(Queen), 9},
		{B(King), 0},
		{Piece{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Value(); got != tt.value {
				t.Errorf("Value() = %d; want %d", got, tt.value)
			}
		})
	}
}

func TestPieceLetter(t *testing.T) {
	if got := W(Knight).Letter(); got != 'N' {
		t.Errorf("W(Knight).Letter() = %c; want N", got)
	}
	if got := B(Queen).Letter(); got != 'q' {
		t.Errorf("B(Queen).Letter() = %c; want q", got)
	}
	if got := (Piece{}).Letter(); got != '.' {
		t.Errorf("empty Letter() = %c; want .", got)
	}
}

func TestNewPieceFlags(t *testing.T) {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Queen} {
		if NewPiece(White, pt).CastlingEligible {
			t.Errorf("%s should not be castling eligible", pt)
		}
	}
	for _, pt := range []PieceType{Rook, King} {
		if !NewPiece(Black, pt).CastlingEligible {
			t.Errorf("%s should start castling eligible", pt)
		}
	}
}

func TestPromotable(t *testing.T) {
	want := map[PieceType]bool{
		NoPiece: false, Pawn: false, Knight: true, Bishop: true,
		Rook: true, Queen: true, King: false,
	}
	for pt, ok := range want {
		if got := pt.Promotable(); got != ok {
			t.Errorf("%s.Promotable() = %v; want %v", pt, got, ok)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text    string
		want    Square
		wantErr bool
	}{
		{"a8", Sq(0, 0), false},
		{"h1", Sq(7, 7), false},
		{"e2", Sq(6, 4), false},
		{"E4", Sq(4, 4), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a0", Square{}, true},
		{"e", Square{}, true},
		{"e22", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("error %v should wrap ErrInvalidSquare", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
			if got.String() != strings.ToLower(tt.text) {
				t.Errorf("String() = %q; want %q", got.String(), tt.text)
			}
		})
	}
}

func TestUnitStep(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     Direction
		wantOK   bool
	}{
		{"up the file", "e2", "e7", Direction{-1, 0}, true},
		{"along the rank", "a1", "h1", Direction{0, 1}, true},
		{"diagonal", "c1", "h6", Direction{-1, 1}, true},
		{"back diagonal", "h8", "a1", Direction{1, -1}, true},
		{"knight jump", "g1", "f3", Direction{}, false},
		{"same square", "d4", "d4", Direction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UnitStep(MustParseSquare(tt.from), MustParseSquare(tt.to))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("UnitStep(%s, %s) = %+v, %v; want %+v, %v", tt.from, tt.to, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMoveZero(t *testing.T) {
	if !(Move{}).IsZero() {
		t.Error("zero Move should report IsZero")
	}
	m := Move{From: MustParseSquare("e2"), To: MustParseSquare("e4")}
	if m.IsZero() || m.String() != "e2-e4" {
		t.Errorf("Move = %q, zero=%v", m.String(), m.IsZero())
	}
}

func TestNewPlayer(t *testing.T) {
	if got := NewPlayer(White).KingSquare; got != MustParseSquare("e1") {
		t.Errorf("white king square = %s; want e1", got)
	}
	if got := NewPlayer(Black).KingSquare; got != MustParseSquare("e8") {
		t.Errorf("black king square = %s; want e8", got)
	}
}
