// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// MoveKind describes the special side effect a legal move carries. It is
// returned by the movement rules and decides what the commit step does.
type MoveKind int

const (
	Normal MoveKind = iota
	EnPassant
	RookMove
	KingMove
	CastleLeft
	CastleRight
	Promotion
	DoubleAdvance
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "EnPassant", "RookMove", "KingMove", "CastleLeft", "CastleRight", "Promotion", "DoubleAdvance"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// IsCastle reports whether the kind is either castling direction.
func (k MoveKind) IsCastle() bool {
	return k == CastleLeft || k == CastleRight
}

// Game is the engine for a single game: the board, one record per
// player and the side to move. A Game is not safe for concurrent use.
type Game struct {
	board   chess.Board
	players [2]chess.Player
	turn    chess.Colour

	ply           int
	halfmoveClock int
	fullmove      int

	promotionPending bool
	promotionSquare  chess.Square
}

// NewGame creates a game in the standard starting position.
func NewGame() *Game {
	g := &Game{
		turn:     chess.White,
		fullmove: 1,
	}
	g.board.SetupInitialPosition()
	g.players[chess.White] = chess.NewPlayer(chess.White)
	g.players[chess.Black] = chess.NewPlayer(chess.Black)
	return g
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Player returns a copy of the record for the given colour.
func (g *Game) Player(colour chess.Colour) chess.Player {
	return g.players[colour]
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on a square.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return g.board.PieceAt(sq)
}

// Snapshot returns a read-only view of the board for display.
func (g *Game) Snapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Ply returns the number of committed half-moves.
func (g *Game) Ply() int {
	return g.ply
}

// HalfmoveClock returns the half-moves since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the current move number, starting at 1.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// Material returns the material value on the board for the given colour.
func (g *Game) Material(colour chess.Colour) int {
	return g.board.Material(colour)
}

// AttemptMove tries to make a move for the side to move and reports
// whether it was legal. A rejected move changes nothing.
func (g *Game) AttemptMove(from, to chess.Square) bool {
	_, err := g.Move(from, to)
	return err == nil
}

// Move validates and makes a move for the side to move. On success it
// returns the kind of move made; if that is Promotion, the game waits
// for Promote before accepting another move. On failure the returned
// error is a *errors.MoveError wrapping one of ErrInvalidSource,
// ErrInvalidTarget, ErrIllegalPattern or ErrExposesKing (or
// ErrPromotionPending / ErrInvalidSquare), and the game is unchanged.
func (g *Game) Move(from, to chess.Square) (MoveKind, error) {
	if g.promotionPending {
		return Normal, g.reject(errors.ErrPromotionPending, from, to, chess.Piece{})
	}
	if !from.Valid() || !to.Valid() {
		return Normal, g.reject(errors.ErrInvalidSquare, from, to, chess.Piece{})
	}

	piece, ok := g.board.PieceAt(from)
	if !ok || piece.Colour != g.turn {
		return Normal, g.reject(errors.ErrInvalidSource, from, to, piece)
	}
	if target, ok := g.board.PieceAt(to); ok && target.Colour == g.turn {
		return Normal, g.reject(errors.ErrInvalidTarget, from, to, piece)
	}

	kind, err := g.pseudoLegal(piece, from, to)
	if err != nil {
		return Normal, g.reject(err, from, to, piece)
	}

	t := g.apply(from, to, kind)

	kingSquare := g.players[g.turn].KingSquare
	if piece.Type == chess.King {
		kingSquare = to
	}
	if g.IsSquareAttacked(g.turn.Opposite(), kingSquare) {
		g.rollback(t)
		return Normal, g.reject(errors.ErrExposesKing, from, to, piece)
	}

	g.commit(t)
	return kind, nil
}

func (g *Game) reject(err error, from, to chess.Square, piece chess.Piece) error {
	moveErr := &errors.MoveError{
		Err:  err,
		Ply:  g.ply + 1,
		From: from.String(),
		To:   to.String(),
	}
	if !piece.IsEmpty() {
		moveErr.Piece = piece.String()
	}
	return moveErr
}

// tentative records everything a tentatively applied move changed so it
// can be either committed or rolled back.
type tentative struct {
	from, to chess.Square
	kind     MoveKind
	moved    chess.Piece

	// captured is the previous occupant of to (zero if it was empty).
	captured chess.Piece

	epSquare   chess.Square
	epCaptured chess.Piece

	rookFrom, rookTo chess.Square
}

// apply makes the move on the board without touching flags or players.
func (g *Game) apply(from, to chess.Square, kind MoveKind) tentative {
	t := tentative{from: from, to: to, kind: kind}
	t.moved = g.board.Clear(from)
	t.captured = g.board.Place(to, t.moved)

	switch kind {
	case EnPassant:
		t.epSquare = chess.Sq(from.Rank, to.File)
		t.epCaptured = g.board.Clear(t.epSquare)
	case CastleLeft, CastleRight:
		t.rookFrom, t.rookTo = castlingRookSquares(from, kind)
		g.board.Place(t.rookTo, g.board.Clear(t.rookFrom))
	}
	return t
}

// rollback restores the board to its state before apply.
func (g *Game) rollback(t tentative) {
	switch t.kind {
	case EnPassant:
		g.board.Place(t.epSquare, t.epCaptured)
	case CastleLeft, CastleRight:
		g.board.Place(t.rookFrom, g.board.Clear(t.rookTo))
	}
	g.board.Place(t.to, t.captured)
	g.board.Place(t.from, t.moved)
}

// commit finalizes a tentatively applied move: flags, player records,
// counters and the turn.
func (g *Game) commit(t tentative) {
	mover := g.turn
	player := &g.players[mover]
	opponent := mover.Opposite()

	// The opponent's double advance could only be answered by this move.
	g.board.Update(g.players[opponent].LastMove.To, func(p *chess.Piece) {
		if p.Is(opponent, chess.Pawn) {
			p.MovedTwoSquares = false
		}
	})

	switch t.kind {
	case RookMove, KingMove:
		g.board.Update(t.to, func(p *chess.Piece) { p.CastlingEligible = false })
	case CastleLeft, CastleRight:
		g.board.Update(t.to, func(p *chess.Piece) { p.CastlingEligible = false })
		g.board.Update(t.rookTo, func(p *chess.Piece) { p.CastlingEligible = false })
	case DoubleAdvance:
		g.board.Update(t.to, func(p *chess.Piece) { p.MovedTwoSquares = true })
	case Promotion:
		g.promotionPending = true
		g.promotionSquare = t.to
	}

	if t.moved.Type == chess.King {
		player.KingSquare = t.to
	}
	player.LastMove = chess.Move{From: t.from, To: t.to}

	if t.moved.Type == chess.Pawn || !t.captured.IsEmpty() || !t.epCaptured.IsEmpty() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if mover == chess.Black {
		g.fullmove++
	}
	g.ply++
	g.turn = mover.Opposite()
}
