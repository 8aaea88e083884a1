package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the two cell colours and the colour of the grid lines.
type Palette struct {
	On   color.RGBA
	Off  color.RGBA
	Line color.RGBA
}

// Default colours: light gray background, blue live cells, gray lines.
const (
	DefaultOn   = "#306998"
	DefaultOff  = "#f0f0f0"
	DefaultLine = "#808080"
)

// DefaultPalette returns the palette built from DefaultOn, DefaultOff and
// DefaultLine.
func DefaultPalette() Palette {
	p, _ := ParsePalette(DefaultOn, DefaultOff, DefaultLine)
	return p
}

// ParsePalette builds a palette from hex colours such as "#306998".
func ParsePalette(on, off, line string) (Palette, error) {
	var p Palette
	var err error
	if p.On, err = ParseHex(on); err != nil {
		return Palette{}, err
	}
	if p.Off, err = ParseHex(off); err != nil {
		return Palette{}, err
	}
	if p.Line, err = ParseHex(line); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
