package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-go/internal/chess"
	"github.com/lgbarn/chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxPiecesPerColour is the most pieces one side can have on the board.
const maxPiecesPerColour = 16

// NewGameFromFEN creates a game from a FEN string. Fields after the piece
// placement are optional and default to White to move, no castling, no
// en passant, and clocks "0 1".
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Game{turn: chess.White, fullmove: 1}

	if err := parsePiecePositions(g, parts[0]); err != nil {
		return nil, err
	}
	if err := validatePosition(g); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}

	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Castling eligibility starts cleared; the castling field grants it.
func parsePiecePositions(g *Game, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if pieceType == chess.NoPiece {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				g.board.Place(chess.Sq(rank, file), chess.Piece{Type: pieceType, Colour: colour})
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// validatePosition enforces one king and at most sixteen pieces per side,
// then records where each king stands.
func validatePosition(g *Game) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		g.board.Each(func(_ chess.Square, p chess.Piece) {
			if p.Is(colour, chess.King) {
				kings++
			}
		})
		if kings != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, kings, errors.ErrInvalidFEN)
		}
		if n := g.board.Count(colour); n > maxPiecesPerColour {
			return fmt.Errorf("%s has %d pieces: %w", colour, n, errors.ErrInvalidFEN)
		}
		king, _ := g.board.FindKing(colour)
		g.players[colour] = chess.Player{Colour: colour, KingSquare: king}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.turn = chess.White
	case "b":
		g.turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// castlingCorners maps a castling letter to its side and rook corner file.
var castlingCorners = map[rune]struct {
	colour chess.Colour
	file   int
}{
	'K': {chess.White, chess.BoardSize - 1},
	'Q': {chess.White, 0},
	'k': {chess.Black, chess.BoardSize - 1},
	'q': {chess.Black, 0},
}

// parseCastlingRights turns the castling field into eligibility flags on
// the kings and rooks it names. A right whose king or rook is not on its
// home square is ignored.
func parseCastlingRights(g *Game, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		corner, ok := castlingCorners[c]
		if !ok {
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		kingSq := chess.NewPlayer(corner.colour).KingSquare
		rookSq := chess.Sq(corner.colour.BackRank(), corner.file)
		if !g.board.Get(kingSq).Is(corner.colour, chess.King) || !g.board.Get(rookSq).Is(corner.colour, chess.Rook) {
			continue
		}
		g.board.Update(kingSq, func(p *chess.Piece) { p.CastlingEligible = true })
		g.board.Update(rookSq, func(p *chess.Piece) { p.CastlingEligible = true })
	}
	return nil
}

// parseEnPassant turns the en passant target square into the last move of
// the side that just moved, which is what en passant captures check.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := g.turn.Opposite()
	landed := chess.Sq(target.Rank+mover.Forward(), target.File)
	origin := chess.Sq(target.Rank-mover.Forward(), target.File)
	if origin.Rank != mover.PawnRank() || !g.board.Get(landed).Is(mover, chess.Pawn) {
		return nil
	}
	g.players[mover].LastMove = chess.Move{From: origin, To: landed}
	g.board.Update(landed, func(p *chess.Piece) { p.MovedTwoSquares = true })
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		g.fullmove = n
	}
	return nil
}

// FEN returns the position as a FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g.turn)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &g.board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, g)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", g.halfmoveClock, g.fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Sq(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, c := range "KQkq" {
		corner := castlingCorners[c]
		king := board.Get(chess.NewPlayer(corner.colour).KingSquare)
		rook := board.Get(chess.Sq(corner.colour.BackRank(), corner.file))
		if king.Is(corner.colour, chess.King) && king.CastlingEligible &&
			rook.Is(corner.colour, chess.Rook) && rook.CastlingEligible {
			sb.WriteRune(c)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind a pawn that has just advanced
// two squares.
func writeEnPassant(sb *strings.Builder, g *Game) {
	mover := g.turn.Opposite()
	last := g.players[mover].LastMove
	pawn := g.board.Get(last.To)
	if !last.IsZero() && pawn.Is(mover, chess.Pawn) && pawn.MovedTwoSquares {
		sb.WriteString(chess.Sq(last.To.Rank-mover.Forward(), last.To.File).String())
		return
	}
	sb.WriteByte('-')
}
