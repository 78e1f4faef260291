package chess

// Player is the per-colour record the engine keeps next to the board.
type Player struct {
	Colour Colour

	// KingSquare is kept in step with the board whenever the king moves.
	KingSquare Square

	// LastMove is this player's most recent committed move. It is what
	// en-passant eligibility is derived from.
	LastMove Move
}

// NewPlayer creates the record for one side of a standard game.
func NewPlayer(colour Colour) Player {
	return Player{
		Colour:     colour,
		KingSquare: Sq(colour.BackRank(), 4),
	}
}
