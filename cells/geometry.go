package cells

// Rect is an axis-aligned box in window pixels.
type Rect struct {
	X, Y, W, H float32
}

// CellToRect returns the pixel box of the cell at (row, col).
func (g *Grid) CellToRect(row, col int) Rect {
	return Rect{
		X: float32(col) * g.cellSize,
		Y: float32(row) * g.cellSize,
		W: g.cellSize,
		H: g.cellSize,
	}
}

// IntersectsCircle reports whether the circle at (cx, cy) touches the box.
// Touching edges count, the same as raylib's CheckCollisionCircleRec.
func (r Rect) IntersectsCircle(cx, cy, radius float32) bool {
	halfW := r.W / 2
	halfH := r.H / 2
	dx := abs(cx - (r.X + halfW))
	dy := abs(cy - (r.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= radius*radius
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
