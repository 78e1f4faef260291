package chess

// Piece is a single piece on the board. The zero value is an empty cell.
//
// Type selects the variant. Only the flags that belong to a variant are
// meaningful for it: CastlingEligible for rooks and kings, MovedTwoSquares
// for pawns.
type Piece struct {
	Type   PieceType
	Colour Colour

	// CastlingEligible is true until a rook or king first moves.
	CastlingEligible bool

	// MovedTwoSquares is true only during the half-move that follows the
	// pawn's double advance.
	MovedTwoSquares bool
}

// NewPiece creates a piece of the given variant. Rooks and kings start
// out eligible for castling; Board.SetupInitialPosition and FEN loading
// adjust that for pieces away from their home squares.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	p := Piece{Type: pieceType, Colour: colour}
	switch pieceType {
	case Rook, King:
		p.CastlingEligible = true
	}
	return p
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether the value represents an empty cell.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether the piece has the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	switch p.Type {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King, NoPiece:
		return 0
	}
	return 0
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, and '.' for an empty cell.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}
