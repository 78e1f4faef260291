// Package hashing computes Zobrist hashes of chess positions.
package hashing

import (
	"github.com/lgbarn/chess-go/internal/chess"
)

const squares = chess.BoardSize * chess.BoardSize

// Zobrist keys. Castling eligibility and the en-passant flag are keyed
// per square, so positions that differ only in rights hash differently.
var (
	pieceKeys    [2][7][squares]uint64
	castlingKeys [squares]uint64
	twoStepKeys  [squares]uint64
	blackToMove  uint64
)

func init() {
	// splitmix64 with a fixed seed keeps hashes stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for sq := range pieceKeys[c][t] {
				pieceKeys[c][t][sq] = next()
			}
		}
	}
	for sq := 0; sq < squares; sq++ {
		castlingKeys[sq] = next()
		twoStepKeys[sq] = next()
	}
	blackToMove = next()
}

// GenerateZobristHash returns the Zobrist hash of a board with the given
// side to move.
func GenerateZobristHash(board *chess.Board, turn chess.Colour) uint64 {
	var hash uint64
	board.Each(func(sq chess.Square, p chess.Piece) {
		i := sq.Rank*chess.BoardSize + sq.File
		hash ^= pieceKeys[p.Colour][p.Type][i]
		if p.CastlingEligible {
			hash ^= castlingKeys[i]
		}
		if p.MovedTwoSquares {
			hash ^= twoStepKeys[i]
		}
	})
	if turn == chess.Black {
		hash ^= blackToMove
	}
	return hash
}
