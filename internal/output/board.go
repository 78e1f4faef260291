// Package output renders games as text boards and JSON state documents.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/config"
)

// glyphs maps a piece type to its chess symbol, indexed by colour.
var glyphs = map[chess.PieceType][2]string{
	chess.Pawn:   {chess.Black: "♟", chess.White: "♙"},
	chess.Knight: {chess.Black: "♞", chess.White: "♘"},
	chess.Bishop: {chess.Black: "♝", chess.White: "♗"},
	chess.Rook:   {chess.Black: "♜", chess.White: "♖"},
	chess.Queen:  {chess.Black: "♛", chess.White: "♕"},
	chess.King:   {chess.Black: "♚", chess.White: "♔"},
}

// CellText returns the text for one board cell: a FEN letter, a glyph
// when unicode is set, or "." for an empty square.
func CellText(c chess.Cell, unicode bool) string {
	if !c.Occupied {
		return "."
	}
	if unicode {
		return glyphs[c.Type][c.Colour]
	}
	letter := c.Type.Letter()
	if c.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// RenderBoard writes the board as an 8x8 grid, eighth rank at the top
// unless cfg.Flip is set.
func RenderBoard(w io.Writer, snap chess.Snapshot, cfg config.RenderConfig) error {
	var sb strings.Builder

	for i := 0; i < chess.BoardSize; i++ {
		rank := i
		if cfg.Flip {
			rank = chess.BoardSize - 1 - i
		}
		if cfg.Coordinates {
			fmt.Fprintf(&sb, "%d ", chess.BoardSize-rank)
		}
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if cfg.Flip {
				file = chess.BoardSize - 1 - j
			}
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(CellText(snap[rank][file], cfg.Unicode))
		}
		sb.WriteByte('\n')
	}

	if cfg.Coordinates {
		sb.WriteString(" ")
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if cfg.Flip {
				file = chess.BoardSize - 1 - j
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte('a' + file))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// BoardString returns the rendered board as a string.
func BoardString(snap chess.Snapshot, cfg config.RenderConfig) string {
	var sb strings.Builder
	RenderBoard(&sb, snap, cfg) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}
