//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"rule-ca/internal/core"
	"rule-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the rule panel to the right of the simulation view. Int
// controls get -/+ buttons; bit controls show the pattern and toggle when
// clicked.
type HUD struct {
	sim        core.Sim
	width      int
	palette    render.Palette
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int, palette render.Palette) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, palette: palette}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = fmt.Sprintf("%s rule", sim.Name())
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height < minPanelHeight {
		height = minPanelHeight
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	if gen, ok := h.snapshot.Lookup("generation"); ok {
		text.Draw(h.panel, "gen "+gen.Value, basicfont.Face7x13, panelPadding, height-panelPadding, mutedText)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.value = param.Value
		parsed, err := strconv.Atoi(param.Value)
		state.hasValue = err == nil
		state.intValue = parsed
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch state.control.Type {
		case core.ParamTypeBit:
			if pointInRect(px, my, state.toggleRect) {
				h.setter.SetIntParameter(state.control.Key, 1-state.intValue)
				return
			}
		case core.ParamTypeInt:
			// An incomplete table has no rule number; stepping starts at 0.
			if pointInRect(px, my, state.minusRect) {
				h.step(state, -1)
				return
			}
			if pointInRect(px, my, state.plusRect) {
				h.step(state, 1)
				return
			}
		}
	}
}

func (h *HUD) step(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if !state.hasValue {
		target = state.control.Min
	}
	if target < state.control.Min || target > state.control.Max {
		return
	}
	h.setter.SetIntParameter(state.control.Key, target)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleText)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, mutedText)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelText)
		switch state.control.Type {
		case core.ParamTypeBit:
			h.drawPattern(state)
		default:
			valueColor := labelText
			if !state.hasValue {
				valueColor = mutedText
			}
			bounds := text.BoundString(face, state.value)
			valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
			text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
			h.drawButton(state.minusRect, "-", state.hasValue && state.intValue > state.control.Min)
			h.drawButton(state.plusRect, "+", !state.hasValue || state.intValue < state.control.Max)
		}
	}
}

// drawPattern shows the three neighborhood cells followed by the output cell.
func (h *HUD) drawPattern(state *hudControlState) {
	y := state.toggleRect.Min.Y
	x := panelPadding + patternLabelWidth
	for i := 0; i < 3; i++ {
		h.fillRect(image.Rect(x, y, x+cellSize, y+cellSize), h.cellColor(state.control.Label[i] == '1'))
		x += cellSize + 2
	}
	h.fillRect(state.toggleRect, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	inner := state.toggleRect.Inset(2)
	h.fillRect(inner, h.cellColor(state.intValue == 1))
}

func (h *HUD) cellColor(on bool) color.RGBA {
	if on {
		return h.palette.On
	}
	return h.palette.Off
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
		h.controls[i].toggleRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top        int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	toggleRect image.Rectangle
}

var (
	titleText = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelText = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedText = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding      = 12
	lineHeight        = 32
	buttonSize        = 22
	buttonGap         = 6
	cellSize          = 14
	patternLabelWidth = 40
	headerBaseline    = 18
	labelBaseline     = 20
	infoSpacing       = 36
	controlsTop       = panelPadding + headerBaseline + 14
	minPanelHeight    = controlsTop + 10*lineHeight
)
