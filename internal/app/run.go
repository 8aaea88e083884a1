//go:build ebiten

package app

import (
	"errors"

	"rule-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window titled title and blocks until it is closed.
func Run(sim core.Sim, opts Options, title string, tps int) error {
	game := New(sim, opts)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
