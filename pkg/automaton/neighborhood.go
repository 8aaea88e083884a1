package automaton

import "fmt"

// PatternCount is the number of distinct three-cell neighborhoods.
const PatternCount = 8

// Neighborhood is the (left, center, right) window around a cell.
type Neighborhood struct {
	Left, Center, Right Cell
}

// NeighborhoodFromIndex decodes the 3-bit value idx (left is the high bit).
func NeighborhoodFromIndex(idx int) Neighborhood {
	return Neighborhood{
		Left:   Cell(idx>>2) & 1,
		Center: Cell(idx>>1) & 1,
		Right:  Cell(idx) & 1,
	}
}

// ParsePattern decodes a three-character binary pattern such as "011".
func ParsePattern(s string) (Neighborhood, error) {
	if len(s) != 3 {
		return Neighborhood{}, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}
	var bits [3]Cell
	for i := 0; i < 3; i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return Neighborhood{}, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
	}
	return Neighborhood{Left: bits[0], Center: bits[1], Right: bits[2]}, nil
}

// Index returns the 3-bit value of the neighborhood, or -1 when any cell is
// not binary.
func (n Neighborhood) Index() int {
	if n.Left > 1 || n.Center > 1 || n.Right > 1 {
		return -1
	}
	return int(n.Left)<<2 | int(n.Center)<<1 | int(n.Right)
}

// String returns the pattern as three characters, e.g. "010".
func (n Neighborhood) String() string {
	return string([]byte{'0' + n.Left, '0' + n.Center, '0' + n.Right})
}

// Patterns lists all neighborhoods in enumeration order 000 through 111.
func Patterns() []Neighborhood {
	out := make([]Neighborhood, PatternCount)
	for i := range out {
		out[i] = NeighborhoodFromIndex(i)
	}
	return out
}
