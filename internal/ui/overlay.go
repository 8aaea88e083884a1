//go:build ebiten

package ui

import (
	"rule-ca/internal/core"
	"rule-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws grid lines over the simulation view. G toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	palette render.Palette
	show    bool

	lines *ebiten.Image
}

// NewOverlay constructs an overlay; lines start visible when show is set.
func NewOverlay(sim core.Sim, scale int, palette render.Palette, show bool) *Overlay {
	return &Overlay{sim: sim, scale: scale, palette: palette, show: show}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw paints the cached line layer. Nothing is drawn when cells are too
// small for lines to leave them visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < render.MinGridLineScale {
		return
	}
	if o.lines == nil {
		o.lines = o.buildLines()
	}
	screen.DrawImage(o.lines, nil)
}

func (o *Overlay) buildLines() *ebiten.Image {
	size := o.sim.Size()
	w, h := size.W*o.scale, size.H*o.scale
	img := ebiten.NewImage(w, h)
	buf := make([]byte, 4*w*h)
	line := o.palette.Line
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x > 0 && x%o.scale == 0) || (y > 0 && y%o.scale == 0) {
				i := 4 * (y*w + x)
				buf[i+0], buf[i+1], buf[i+2], buf[i+3] = line.R, line.G, line.B, line.A
			}
		}
	}
	img.WritePixels(buf)
	return img
}
