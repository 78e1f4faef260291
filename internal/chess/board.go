package chess

// Board is an 8x8 arena of cells. A cell holds the zero Piece when empty.
// Board is a plain value: copying it copies every piece and its flags.
type Board struct {
	cells [BoardSize * BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRow is the piece order along each back rank, a-file first.
var backRow = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.cells = [BoardSize * BoardSize]Piece{}
	for _, colour := range []Colour{White, Black} {
		for file := 0; file < BoardSize; file++ {
			b.Place(Sq(colour.BackRank(), file), NewPiece(colour, backRow[file]))
			b.Place(Sq(colour.PawnRank(), file), NewPiece(colour, Pawn))
		}
	}
}

func index(sq Square) int {
	return sq.Rank*BoardSize + sq.File
}

// PieceAt returns the piece on the square. ok is false for an empty or
// off-board square.
func (b *Board) PieceAt(sq Square) (p Piece, ok bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p = b.cells[index(sq)]
	return p, !p.IsEmpty()
}

// Get returns the cell contents, the zero Piece when empty or off-board.
func (b *Board) Get(sq Square) Piece {
	p, _ := b.PieceAt(sq)
	return p
}

// Place puts a piece on the square and returns the previous occupant.
// The caller owns the returned piece: dropping it captures it, placing
// it back restores it. Off-board squares are ignored.
func (b *Board) Place(sq Square, p Piece) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	prev := b.cells[index(sq)]
	b.cells[index(sq)] = p
	return prev
}

// Clear empties the square and returns what was on it.
func (b *Board) Clear(sq Square) Piece {
	return b.Place(sq, Piece{})
}

// Update applies fn to the piece on the square in place. It is a no-op on
// empty squares.
func (b *Board) Update(sq Square, fn func(p *Piece)) {
	if !sq.Valid() || b.cells[index(sq)].IsEmpty() {
		return
	}
	fn(&b.cells[index(sq)])
}

// RayScan steps from the square (exclusive) in the given direction and
// returns the first occupied square. ok is false when the ray reaches
// the edge of the board without meeting a piece.
func (b *Board) RayScan(from Square, dir Direction) (Square, bool) {
	if dir.DRank == 0 && dir.DFile == 0 {
		return Square{}, false
	}
	for sq := from.Add(dir); sq.Valid(); sq = sq.Add(dir) {
		if !b.cells[index(sq)].IsEmpty() {
			return sq, true
		}
	}
	return Square{}, false
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i, p := range b.cells {
		if p.Is(colour, King) {
			return Sq(i/BoardSize, i%BoardSize), true
		}
	}
	return Square{}, false
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for _, p := range b.cells {
		if !p.IsEmpty() && p.Colour == colour {
			n++
		}
	}
	return n
}

// Material returns the summed piece values of the given colour.
func (b *Board) Material(colour Colour) int {
	total := 0
	for _, p := range b.cells {
		if !p.IsEmpty() && p.Colour == colour {
			total += p.Value()
		}
	}
	return total
}

// Each calls fn for every occupied square, eighth rank first.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for i, p := range b.cells {
		if !p.IsEmpty() {
			fn(Sq(i/BoardSize, i%BoardSize), p)
		}
	}
}

// Cell is one square of a Snapshot.
type Cell struct {
	Occupied bool
	Colour   Colour
	Type     PieceType
}

// Snapshot is a read-only view of the board for display. Row 0 is the
// eighth rank.
type Snapshot [BoardSize][BoardSize]Cell

// Snapshot returns a display view of the board.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	b.Each(func(sq Square, p Piece) {
		s[sq.Rank][sq.File] = Cell{Occupied: true, Colour: p.Colour, Type: p.Type}
	})
	return s
}

// At returns the snapshot cell for a square.
func (s *Snapshot) At(sq Square) Cell {
	if !sq.Valid() {
		return Cell{}
	}
	return s[sq.Rank][sq.File]
}
