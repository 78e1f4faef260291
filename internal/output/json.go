package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/engine"
	"github.com/lgbarn/chess-go/internal/hashing"
)

// GameState is the JSON document describing a game position.
type GameState struct {
	FEN           string         `json:"fen"`
	Hash          string         `json:"hash"`  // Zobrist hash of the position, hex
	Board         []string       `json:"board"` // eighth rank first, "." for empty
	Turn          string         `json:"turn"`  // "white" or "black"
	Ply           int            `json:"ply"`
	Fullmove      int            `json:"fullmove"`
	HalfmoveClock int            `json:"halfmoveClock"`
	InCheck       bool           `json:"inCheck"`
	Promotion     string         `json:"promotion,omitempty"` // square awaiting a promotion choice
	LastMove      string         `json:"lastMove,omitempty"`
	Material      map[string]int `json:"material"`
}

// NewGameState builds the state document for a game.
func NewGameState(g *engine.Game) *GameState {
	snap := g.Snapshot()
	rows := make([]string, chess.BoardSize)
	for rank := range snap {
		var sb strings.Builder
		for _, cell := range snap[rank] {
			sb.WriteString(CellText(cell, false))
		}
		rows[rank] = sb.String()
	}

	board := g.Board()
	state := &GameState{
		FEN:           g.FEN(),
		Hash:          PositionHash(&board, g.Turn()),
		Board:         rows,
		Turn:          strings.ToLower(g.Turn().String()),
		Ply:           g.Ply(),
		Fullmove:      g.FullmoveNumber(),
		HalfmoveClock: g.HalfmoveClock(),
		InCheck:       g.InCheck(g.Turn()),
		Material: map[string]int{
			"white": g.Material(chess.White),
			"black": g.Material(chess.Black),
		},
	}

	if sq, pending := g.PendingPromotion(); pending {
		state.Promotion = sq.String()
	}
	if last := g.Player(g.Turn().Opposite()).LastMove; !last.IsZero() {
		state.LastMove = last.From.String() + last.To.String()
	}
	return state
}

// PositionHash formats the Zobrist hash of a position as 16 hex digits.
func PositionHash(board *chess.Board, turn chess.Colour) string {
	return fmt.Sprintf("%016x", hashing.GenerateZobristHash(board, turn))
}

// WriteGameStateJSON writes the state of a game as one line of JSON.
func WriteGameStateJSON(w io.Writer, g *engine.Game) error {
	return json.NewEncoder(w).Encode(NewGameState(g))
}
