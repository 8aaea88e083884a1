// Package core holds the contracts shared by the simulations, the renderer
// and the interactive viewer.
package core

// Size describes the dimensions of a simulation surface in cells.
type Size struct {
	W int
	H int
}

// Sim is a simulation that can be driven one generation at a time and drawn
// from its cell buffer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
