// Package elementary drives a one-dimensional automaton for the interactive
// viewer: generations are stacked top to bottom and the history scrolls up
// once the window is full.
package elementary

import (
	"strconv"

	"rule-ca/internal/core"
	"rule-ca/pkg/automaton"
	pcore "rule-ca/pkg/core"
)

// Config holds the parameters of a viewer run.
type Config struct {
	// Initial is the first row. When Random is set it only supplies the width.
	Initial automaton.Row
	Rule    automaton.RuleTable
	Height  int

	Random  bool
	Density float64
}

// DefaultConfig returns rule 90 grown from a single live cell.
func DefaultConfig() Config {
	initial := make(automaton.Row, 129)
	initial[len(initial)/2] = 1
	return Config{Initial: initial, Rule: automaton.FromCode(90), Height: 128, Density: 0.5}
}

// Elementary implements core.Sim for a binary three-cell automaton with a
// zero boundary.
type Elementary struct {
	cfg  Config
	grid *core.ByteGrid
	// filled counts the rows written since the last reset.
	filled int
	last   automaton.Row
	next   automaton.Row
	gen    int
	seed   int64
}

// New creates a simulation from cfg. A non-positive height defaults to the
// row width.
func New(cfg Config) *Elementary {
	w := len(cfg.Initial)
	if cfg.Height <= 0 {
		cfg.Height = w
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	cfg.Initial = cfg.Initial.Clone()
	e := &Elementary{
		cfg:  cfg,
		grid: core.NewByteGrid(w, cfg.Height),
		last: make(automaton.Row, w),
		next: make(automaton.Row, w),
	}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the visible window in cells.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Rule returns the active rule table.
func (e *Elementary) Rule() automaton.RuleTable { return e.cfg.Rule }

// Generation returns the number of steps taken since the last reset.
func (e *Elementary) Generation() int { return e.gen }

// Reset clears the history and writes the initial row at the top. With
// Random set the row is drawn from seed.
func (e *Elementary) Reset(seed int64) {
	e.seed = seed
	e.grid.Clear()
	if e.cfg.Random {
		copy(e.last, pcore.RandomRow(seed, e.grid.W, e.cfg.Density))
	} else {
		copy(e.last, e.cfg.Initial)
	}
	copy(e.grid.Row(0), e.last)
	e.filled = 1
	e.gen = 0
}

// Step computes the next generation and appends it below the previous one.
func (e *Elementary) Step() {
	automaton.StepInto(e.next, e.last, e.cfg.Rule)
	e.last, e.next = e.next, e.last
	e.gen++
	if e.filled < e.grid.H {
		copy(e.grid.Row(e.filled), e.last)
		e.filled++
		return
	}
	e.grid.ScrollUp()
	copy(e.grid.Row(e.grid.H-1), e.last)
}

// SetRule replaces the rule table and restarts from the initial row, reusing
// the seed of the last reset.
func (e *Elementary) SetRule(t automaton.RuleTable) {
	e.cfg.Rule = t
	e.Reset(e.seed)
}

const ruleKey = "rule"

// Parameters reports the rule number and every table entry.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	code := "--"
	if c, ok := e.cfg.Rule.Code(); ok {
		code = strconv.Itoa(int(c))
	}
	entries := make([]core.Parameter, 0, automaton.PatternCount)
	for _, n := range automaton.Patterns() {
		entries = append(entries, core.Parameter{
			Key:   n.String(),
			Label: n.String(),
			Type:  core.ParamTypeBit,
			Value: strconv.Itoa(int(e.cfg.Rule.Lookup(n))),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Rule", Params: []core.Parameter{{Key: ruleKey, Label: "Rule", Type: core.ParamTypeInt, Value: code}}},
		{Name: "Transitions", Params: entries},
		{Name: "Run", Params: []core.Parameter{{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.gen)}}},
	}}
}

// ParameterControls lists the rule number stepper and one toggle per pattern.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{{Key: ruleKey, Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255}}
	for _, n := range automaton.Patterns() {
		controls = append(controls, core.ParameterControl{Key: n.String(), Label: n.String(), Type: core.ParamTypeBit, Min: 0, Max: 1})
	}
	return controls
}

// SetIntParameter updates the rule number or a single table entry and
// restarts the run. Out of range values are rejected.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	if key == ruleKey {
		if value < 0 || value > 255 {
			return false
		}
		e.SetRule(automaton.FromCode(uint8(value)))
		return true
	}
	n, err := automaton.ParsePattern(key)
	if err != nil || (value != 0 && value != 1) {
		return false
	}
	e.SetRule(e.cfg.Rule.With(n, automaton.Cell(value)))
	return true
}
