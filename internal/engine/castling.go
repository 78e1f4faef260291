package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// castlingRookSquares returns where the rook starts and finishes when the
// king on kingFrom castles in the given direction. The rook lands on the
// square the king crosses.
func castlingRookSquares(kingFrom chess.Square, kind MoveKind) (rookFrom, rookTo chess.Square) {
	if kind == CastleLeft {
		return chess.Sq(kingFrom.Rank, 0), chess.Sq(kingFrom.Rank, kingFrom.File-1)
	}
	return chess.Sq(kingFrom.Rank, chess.BoardSize-1), chess.Sq(kingFrom.Rank, kingFrom.File+1)
}

// checkCastling validates a castling slide of the king on from. The
// square the king lands on is checked afterwards like any other king move.
func (g *Game) checkCastling(king chess.Piece, from chess.Square, kind MoveKind) error {
	if !king.CastlingEligible {
		return fmt.Errorf("%s king has already moved: %w", king.Colour, errors.ErrIllegalPattern)
	}

	rookFrom, crossed := castlingRookSquares(from, kind)
	rook, ok := g.board.PieceAt(rookFrom)
	if !ok || !rook.Is(king.Colour, chess.Rook) || !rook.CastlingEligible {
		return fmt.Errorf("no unmoved rook on %s: %w", rookFrom, errors.ErrIllegalPattern)
	}
	if !g.isStraightClear(from, rookFrom) {
		return fmt.Errorf("pieces between king and rook on %s: %w", rookFrom, errors.ErrIllegalPattern)
	}

	opponent := king.Colour.Opposite()
	if g.IsSquareAttacked(opponent, from) {
		return fmt.Errorf("cannot castle out of check: %w", errors.ErrExposesKing)
	}
	if g.IsSquareAttacked(opponent, crossed) {
		return fmt.Errorf("cannot castle through attacked %s: %w", crossed, errors.ErrExposesKing)
	}
	return nil
}
