package engine

import "github.com/lgbarn/chess-go/internal/chess"

// isDiagonalClear reports whether from and to share a diagonal with no
// piece strictly between them.
func (g *Game) isDiagonalClear(from, to chess.Square) bool {
	dir, ok := chess.UnitStep(from, to)
	if !ok || dir.DRank == 0 || dir.DFile == 0 {
		return false
	}
	return g.isLineClear(from, to, dir)
}

// isStraightClear reports whether from and to share a rank or file with
// no piece strictly between them.
func (g *Game) isStraightClear(from, to chess.Square) bool {
	dir, ok := chess.UnitStep(from, to)
	if !ok || (dir.DRank != 0 && dir.DFile != 0) {
		return false
	}
	return g.isLineClear(from, to, dir)
}

// isLineClear casts a ray from one square toward the other; the line is
// clear when the first piece hit is the destination itself or lies
// beyond it.
func (g *Game) isLineClear(from, to chess.Square, dir chess.Direction) bool {
	hit, ok := g.board.RayScan(from, dir)
	if !ok {
		return true
	}
	return chess.Distance(from, hit) >= chess.Distance(from, to)
}
