// Package automaton implements one-dimensional binary cellular automata with
// a three-cell neighborhood and a fixed zero boundary.
package automaton

import (
	"fmt"
	"strings"
	"unicode"
)

// Cell is a single binary cell value, 0 or 1.
type Cell = uint8

// Row is the automaton state at one time step.
type Row []Cell

// ParseRow converts a string of '0' and '1' characters into a Row. Whitespace
// is ignored anywhere in the input.
func ParseRow(s string) (Row, error) {
	row := make(Row, 0, len(s))
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '0':
			row = append(row, 0)
		case r == '1':
			row = append(row, 1)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCell, r, i)
		}
	}
	return row, nil
}

// Ones returns a row of n live cells.
func Ones(n int) Row {
	if n < 0 {
		n = 0
	}
	row := make(Row, n)
	for i := range row {
		row[i] = 1
	}
	return row
}

// String renders the row as a sequence of '0' and '1' characters.
func (r Row) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, c := range r {
		if c != 0 {
			b.WriteByte('1')
			continue
		}
		b.WriteByte('0')
	}
	return b.String()
}

// Clone returns a copy of r that shares no storage with it.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	return append(Row(nil), r...)
}

// Density returns the fraction of live cells, 0 for an empty row.
func (r Row) Density() float64 {
	if len(r) == 0 {
		return 0
	}
	live := 0
	for _, c := range r {
		if c != 0 {
			live++
		}
	}
	return float64(live) / float64(len(r))
}
