package core

import "rule-ca/pkg/automaton"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid. Negative dimensions are treated as 0.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// FromGrid copies an evolution into a ByteGrid, one grid row per automaton
// row. Rows shorter than the first are zero filled.
func FromGrid(g automaton.Grid) *ByteGrid {
	bg := NewByteGrid(g.Width(), g.Height())
	for y, row := range g {
		copy(bg.Row(y), row)
	}
	return bg
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at (x, y), or 0 outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Row returns row y as a slice aliasing the grid storage.
func (g *ByteGrid) Row(y int) []uint8 {
	start := y * g.W
	return g.data[start : start+g.W]
}

// ScrollUp discards row 0, moves every other row up by one and clears the
// bottom row.
func (g *ByteGrid) ScrollUp() {
	if g.H == 0 {
		return
	}
	copy(g.data, g.data[g.W:])
	clear(g.Row(g.H - 1))
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
