package core

import (
	"math/rand/v2"

	"rule-ca/pkg/automaton"
)

// RNG wraps math/rand/v2 with a deterministic PCG seed so that random initial
// rows can be reproduced from the seed alone.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Row returns a row of width cells, each live with probability density.
// Density is clamped to [0, 1].
func (r *RNG) Row(width int, density float64) automaton.Row {
	if width < 0 {
		width = 0
	}
	switch {
	case density < 0:
		density = 0
	case density > 1:
		density = 1
	}
	row := make(automaton.Row, width)
	for i := range row {
		if r.r.Float64() < density {
			row[i] = 1
		}
	}
	return row
}

// RandomRow is shorthand for NewRNG(seed).Row(width, density).
func RandomRow(seed int64, width int, density float64) automaton.Row {
	return NewRNG(seed).Row(width, density)
}
