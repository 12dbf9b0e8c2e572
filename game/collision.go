package game

import (
	"github.com/rehoy/dvn/balls"
	"github.com/rehoy/dvn/cells"
)

// Resolve scans the grid row by row for the first cell that is not of kind
// and touches the ball. That cell is flipped and one velocity axis of the
// ball is reversed. At most one cell changes per call; hit is false when
// nothing did.
//
// The axis choice only looks at whether the ball's edge lies past the cell's
// near edge, which holds for almost any overlap, so in practice the x axis
// is nearly always the one reversed. Fast or grazing balls can end up back
// in the same cell on the next frame.
func Resolve(b *balls.Ball, kind cells.State, g *cells.Grid) (row, col int, hit bool) {
	n := g.Size()
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			if g.Get(row, col) == kind {
				continue
			}
			cell := g.CellToRect(row, col)
			if !cell.IntersectsCircle(b.Center.X, b.Center.Y, b.Radius) {
				continue
			}

			g.Flip(row, col)
			if b.Center.X+b.Radius >= cell.X || b.Center.X-b.Radius <= cell.X+cell.W {
				b.V.X = -b.V.X
			} else if b.Center.Y+b.Radius >= cell.Y || b.Center.Y-b.Radius <= cell.Y+cell.H {
				b.V.Y = -b.V.Y
			}
			return row, col, true
		}
	}
	return -1, -1, false
}
