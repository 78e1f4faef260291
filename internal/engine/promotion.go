package engine

import (
	"fmt"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// PendingPromotion returns the square of a pawn waiting to be promoted.
func (g *Game) PendingPromotion() (chess.Square, bool) {
	return g.promotionSquare, g.promotionPending
}

// Promote replaces the pawn waiting on the last rank with a piece of the
// chosen type.
func (g *Game) Promote(choice chess.PieceType) error {
	if !g.promotionPending {
		return errors.ErrNoPromotionPending
	}
	if !choice.Promotable() {
		return fmt.Errorf("%s: %w", choice, errors.ErrInvalidPromotion)
	}

	pawn := g.board.Get(g.promotionSquare)
	g.board.Place(g.promotionSquare, chess.Piece{Type: choice, Colour: pawn.Colour})
	g.promotionPending = false
	return nil
}

// MoveWithPromotion makes a move and, if it promotes a pawn, finalizes the
// promotion with the given choice in the same step. An invalid choice, or
// a choice given for a move that does not promote, undoes the whole move.
// A choice of chess.NoPiece leaves a promotion pending for a later Promote
// call.
func (g *Game) MoveWithPromotion(from, to chess.Square, choice chess.PieceType) (MoveKind, error) {
	saved := *g

	kind, err := g.Move(from, to)
	if err != nil || choice == chess.NoPiece {
		return kind, err
	}
	if kind != Promotion {
		*g = saved
		return Normal, fmt.Errorf("%s given for a %s move from %s to %s: %w",
			choice, kind, from, to, errors.ErrParseFailure)
	}
	if err := g.Promote(choice); err != nil {
		*g = saved
		return Normal, err
	}
	return kind, nil
}
