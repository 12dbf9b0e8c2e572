package cells

import (
	"image/color"

	"github.com/rehoy/dvn/render"
)

// State is the side a cell belongs to. The zero value is Night.
type State bool

const (
	Night State = false
	Day   State = true
)

func (s State) String() string {
	if s == Day {
		return "day"
	}
	return "night"
}

// Grid is a square board of size×size cells. Row and column arguments must
// be in [0, size); anything else panics with an index error.
type Grid struct {
	size     int
	cellSize float32
	cells    []State
}

func NewGrid(size int, cellSize float32) *Grid {
	return &Grid{
		size:     size,
		cellSize: cellSize,
		cells:    make([]State, size*size),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) CellSize() float32 {
	return g.cellSize
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		panic("cells: index out of range")
	}
	return row*g.size + col
}

func (g *Grid) Get(row, col int) State {
	return g.cells[g.index(row, col)]
}

func (g *Grid) Set(row, col int, s State) {
	g.cells[g.index(row, col)] = s
}

// Flip toggles the cell and returns its new state.
func (g *Grid) Flip(row, col int) State {
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
	return g.cells[i]
}

// Initialize turns the right half of the board (col >= size/2) to Day.
// The left half keeps its zero value, Night.
func (g *Grid) Initialize() {
	for row := 0; row < g.size; row++ {
		for col := g.size / 2; col < g.size; col++ {
			g.Set(row, col, Day)
		}
	}
}

func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Draw fills every cell, row by row, with the color of its state.
func (g *Grid) Draw(c render.Canvas, day, night color.RGBA) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			r := g.CellToRect(row, col)
			fill := night
			if g.Get(row, col) == Day {
				fill = day
			}
			c.FillRect(int32(r.X), int32(r.Y), int32(g.cellSize), int32(g.cellSize), fill)
		}
	}
}
