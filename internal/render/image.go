// Package render turns automaton grids into raster images and terminal text.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"rule-ca/internal/core"
	"rule-ca/pkg/automaton"
)

var (
	// ErrEmptyGrid is returned when asked to encode a grid without cells.
	ErrEmptyGrid = errors.New("render: grid has no cells")
	// ErrTooLarge is returned when a raster would exceed MaxPixels.
	ErrTooLarge = errors.New("render: image exceeds pixel limit")
)

// MaxPixels bounds the size of a scaled raster. At four bytes per pixel the
// largest image takes 512 MiB.
const MaxPixels = 1 << 27

// MinGridLineScale is the smallest cell size at which grid lines are drawn;
// below it the lines would cover the cells.
const MinGridLineScale = 3

// Options control raster output.
type Options struct {
	Palette Palette
	// Scale is the edge length of one cell in pixels; values below 1 mean 1.
	Scale     int
	GridLines bool
}

// Image rasterises g with row 0 at the top. The result is Width*Scale by
// Height*Scale pixels.
func Image(g automaton.Grid, opts Options) *image.RGBA {
	bg := core.FromGrid(g)
	base := image.NewRGBA(image.Rect(0, 0, bg.W, bg.H))
	fillBinaryRGBA(base.Pix, bg.Cells(), opts.Palette.On, opts.Palette.Off)

	scale := opts.Scale
	if scale <= 1 {
		return base
	}
	dst := image.NewRGBA(image.Rect(0, 0, bg.W*scale, bg.H*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	if opts.GridLines && scale >= MinGridLineScale {
		drawGridLines(dst, scale, opts.Palette)
	}
	return dst
}

// CheckSize returns ErrTooLarge when a w by h grid rendered at scale would
// exceed MaxPixels.
func CheckSize(w, h, scale int) error {
	if scale < 1 {
		scale = 1
	}
	px := int64(w) * int64(h) * int64(scale) * int64(scale)
	if px > MaxPixels {
		return fmt.Errorf("%w: %dx%d cells at scale %d is %d pixels, limit %d", ErrTooLarge, w, h, scale, px, MaxPixels)
	}
	return nil
}

// drawGridLines paints one-pixel lines on the interior cell boundaries.
func drawGridLines(img *image.RGBA, scale int, p Palette) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if (x > 0 && x%scale == 0) || (y > 0 && y%scale == 0) {
				img.SetRGBA(x, y, p.Line)
			}
		}
	}
}

// WritePNG encodes g as a PNG image.
func WritePNG(w io.Writer, g automaton.Grid, opts Options) error {
	if g.Width() == 0 || g.Height() == 0 {
		return ErrEmptyGrid
	}
	if err := CheckSize(g.Width(), g.Height(), opts.Scale); err != nil {
		return err
	}
	if err := png.Encode(w, Image(g, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
