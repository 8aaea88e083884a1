//go:build !ebiten

package app

import (
	"errors"

	"rule-ca/internal/core"
	"rule-ca/internal/render"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the viewer requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/ca")

// Options configures the viewer window.
type Options struct {
	Scale     int
	Rate      int
	Panel     int
	Seed      int64
	GridLines bool
	Palette   render.Palette
}

// Run reports that the GUI is unavailable in headless builds.
func Run(core.Sim, Options, string, int) error {
	return ErrNoGUI
}
