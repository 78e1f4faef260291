package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// pseudoLegal checks the piece's movement pattern and path from one
// square to another, ignoring whether the mover's king ends up attacked.
// The caller has already checked ownership of both squares.
func (g *Game) pseudoLegal(piece chess.Piece, from, to chess.Square) (MoveKind, error) {
	switch piece.Type {
	case chess.Pawn:
		return g.pawnMove(piece, from, to)
	case chess.Knight:
		return knightMove(from, to)
	case chess.Bishop:
		return g.bishopMove(from, to)
	case chess.Rook:
		return g.rookMove(from, to)
	case chess.Queen:
		return g.queenMove(from, to)
	case chess.King:
		return g.kingMove(piece, from, to)
	case chess.NoPiece:
	}
	return Normal, fmt.Errorf("no piece on %s: %w", from, errors.ErrInvalidSource)
}

func illegal(piece chess.PieceType, from, to chess.Square) error {
	return fmt.Errorf("%s cannot move %s-%s: %w", piece, from, to, errors.ErrIllegalPattern)
}

func knightMove(from, to chess.Square) (MoveKind, error) {
	dr := abs(to.Rank - from.Rank)
	df := abs(to.File - from.File)
	if (dr == 1 && df == 2) || (dr == 2 && df == 1) {
		return Normal, nil
	}
	return Normal, illegal(chess.Knight, from, to)
}

func (g *Game) bishopMove(from, to chess.Square) (MoveKind, error) {
	if !g.isDiagonalClear(from, to) {
		return Normal, illegal(chess.Bishop, from, to)
	}
	return Normal, nil
}

func (g *Game) rookMove(from, to chess.Square) (MoveKind, error) {
	if !g.isStraightClear(from, to) {
		return Normal, illegal(chess.Rook, from, to)
	}
	return RookMove, nil
}

func (g *Game) queenMove(from, to chess.Square) (MoveKind, error) {
	if g.isStraightClear(from, to) || g.isDiagonalClear(from, to) {
		return Normal, nil
	}
	return Normal, illegal(chess.Queen, from, to)
}

func (g *Game) kingMove(king chess.Piece, from, to chess.Square) (MoveKind, error) {
	dr := to.Rank - from.Rank
	df := to.File - from.File
	if abs(dr) <= 1 && abs(df) <= 1 {
		return KingMove, nil
	}
	if dr == 0 && abs(df) == 2 {
		kind := CastleRight
		if df < 0 {
			kind = CastleLeft
		}
		if err := g.checkCastling(king, from, kind); err != nil {
			return Normal, err
		}
		return kind, nil
	}
	return Normal, illegal(chess.King, from, to)
}

func (g *Game) pawnMove(pawn chess.Piece, from, to chess.Square) (MoveKind, error) {
	forward := pawn.Colour.Forward()
	dr := to.Rank - from.Rank
	df := to.File - from.File
	_, occupied := g.board.PieceAt(to)

	advanceKind := Normal
	if to.Rank == pawn.Colour.PromotionRank() {
		advanceKind = Promotion
	}

	switch {
	case df == 0 && dr == forward:
		if !occupied {
			return advanceKind, nil
		}

	case df == 0 && dr == 2*forward:
		between := chess.Sq(from.Rank+forward, from.File)
		if from.Rank == pawn.Colour.PawnRank() && !occupied && g.board.Get(between).IsEmpty() {
			return DoubleAdvance, nil
		}

	case abs(df) == 1 && dr == forward:
		// Own pieces on the target were rejected by the caller.
		if occupied {
			return advanceKind, nil
		}
		if g.isEnPassant(pawn.Colour, from, to) {
			return EnPassant, nil
		}
	}
	return Normal, illegal(chess.Pawn, from, to)
}

// isEnPassant reports whether a diagonal pawn move onto an empty square
// captures the opposing pawn that has just advanced two squares beside it.
func (g *Game) isEnPassant(colour chess.Colour, from, to chess.Square) bool {
	beside := chess.Sq(from.Rank, to.File)
	victim, ok := g.board.PieceAt(beside)
	if !ok || !victim.Is(colour.Opposite(), chess.Pawn) {
		return false
	}
	last := g.players[colour.Opposite()].LastMove
	origin := chess.Sq(to.Rank+colour.Forward(), to.File)
	return last.To == beside && last.From == origin
}
