package automaton

// Grid stacks the rows of an evolution; Grid[0] is the initial row.
type Grid []Row

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the row length, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cells flattens the grid into a row-major buffer.
func (g Grid) Cells() []uint8 {
	w := g.Width()
	cells := make([]uint8, 0, w*len(g))
	for _, row := range g {
		cells = append(cells, row...)
	}
	return cells
}

// Step computes the row that follows row under t. Cells outside the row are
// treated as 0. The result is a new row of the same length.
func Step(row Row, t RuleTable) Row {
	next := make(Row, len(row))
	StepInto(next, row, t)
	return next
}

// StepInto writes the successor of src into dst, which must have the same
// length and must not alias src.
func StepInto(dst, src Row, t RuleTable) {
	n := len(src)
	for i := 0; i < n; i++ {
		var left, right Cell
		if i > 0 {
			left = src[i-1]
		}
		if i < n-1 {
			right = src[i+1]
		}
		dst[i] = t.Lookup(Neighborhood{Left: left, Center: src[i], Right: right})
	}
}

// Evolve returns rounds rows starting from initial, each derived from the
// previous one with Step. rounds <= 0 yields an empty grid. The grid holds a
// copy of initial.
func Evolve(initial Row, t RuleTable, rounds int) Grid {
	if rounds <= 0 {
		return Grid{}
	}
	grid := make(Grid, 0, rounds)
	grid = append(grid, initial.Clone())
	for len(grid) < rounds {
		grid = append(grid, Step(grid[len(grid)-1], t))
	}
	return grid
}
