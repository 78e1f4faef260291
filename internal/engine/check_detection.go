package engine

import "github.com/lgbarn/chess-go/internal/chess"

// InCheck returns true if the given colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return g.IsSquareAttacked(colour.Opposite(), g.players[colour].KingSquare)
}

// IsSquareAttacked returns true if any piece of colour byColour attacks sq.
func (g *Game) IsSquareAttacked(byColour chess.Colour, sq chess.Square) bool {
	return isSquareAttacked(&g.board, sq, byColour)
}

// isSquareAttacked scans outward from the square for attackers.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one step forward from the
	// defender's point of view.
	forward := byColour.Opposite().Forward()
	for _, df := range []int{-1, 1} {
		if p, ok := board.PieceAt(chess.Sq(sq.Rank+forward, sq.File+df)); ok && p.Is(byColour, chess.Pawn) {
			return true
		}
	}

	for _, d := range chess.KnightOffsets {
		if p, ok := board.PieceAt(sq.Add(d)); ok && p.Is(byColour, chess.Knight) {
			return true
		}
	}

	for _, d := range chess.KingOffsets {
		if p, ok := board.PieceAt(sq.Add(d)); ok && p.Is(byColour, chess.King) {
			return true
		}
	}

	for _, d := range chess.Diagonals {
		if rayHits(board, sq, d, byColour, chess.Bishop) {
			return true
		}
	}

	for _, d := range chess.Orthogonals {
		if rayHits(board, sq, d, byColour, chess.Rook) {
			return true
		}
	}

	return false
}

// rayHits reports whether the first piece along the ray is a slider of
// the given colour that moves along it: the named slider or a queen.
func rayHits(board *chess.Board, sq chess.Square, d chess.Direction, byColour chess.Colour, slider chess.PieceType) bool {
	hit, ok := board.RayScan(sq, d)
	if !ok {
		return false
	}
	p := board.Get(hit)
	return p.Is(byColour, slider) || p.Is(byColour, chess.Queen)
}
