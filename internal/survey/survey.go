// Package survey runs many rules over the same initial row and labels the
// long-term behaviour of each evolution.
package survey

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"rule-ca/pkg/automaton"
)

// Class is a coarse behaviour label.
type Class string

const (
	// Uniform evolutions end in a row whose cells all share one value.
	Uniform Class = "uniform"
	// Periodic evolutions revisit an earlier row.
	Periodic Class = "periodic"
	// Aperiodic evolutions neither settle nor repeat within the run.
	Aperiodic Class = "aperiodic"
	// Empty grids have no rows to inspect.
	Empty Class = "empty"
)

// Result describes one evolution.
type Result struct {
	Code    uint8
	Class   Class
	Period  int
	Density float64
	// Transient is the index of the first row of the cycle for periodic
	// evolutions, or of the first uniform row.
	Transient int
}

func (r Result) String() string {
	switch r.Class {
	case Periodic:
		return fmt.Sprintf("rule %3d  %-9s period=%d transient=%d density=%.3f", r.Code, r.Class, r.Period, r.Transient, r.Density)
	default:
		return fmt.Sprintf("rule %3d  %-9s density=%.3f", r.Code, r.Class, r.Density)
	}
}

// Classify labels g from its rows. Because the rule is deterministic, the
// evolution is periodic as soon as any row repeats. A uniform final row takes
// precedence over periodicity.
func Classify(g automaton.Grid) Result {
	if len(g) == 0 {
		return Result{Class: Empty}
	}
	last := g[len(g)-1]
	res := Result{Density: last.Density()}

	if uniform(last) {
		res.Class = Uniform
		res.Transient = len(g) - 1
		for res.Transient > 0 && slices.Equal(g[res.Transient-1], last) {
			res.Transient--
		}
		return res
	}

	seen := make(map[string]int, len(g))
	for i, row := range g {
		key := row.String()
		if first, ok := seen[key]; ok {
			res.Class = Periodic
			res.Period = i - first
			res.Transient = first
			return res
		}
		seen[key] = i
	}
	res.Class = Aperiodic
	return res
}

func uniform(r automaton.Row) bool {
	if len(r) == 0 {
		return true
	}
	for _, c := range r[1:] {
		if c != r[0] {
			return false
		}
	}
	return true
}

// Run evolves initial under every code for rounds rows and classifies each
// evolution. Results are ordered by class, then code.
func Run(initial automaton.Row, codes []uint8, rounds int) []Result {
	results := make([]Result, 0, len(codes))
	for _, code := range codes {
		grid := automaton.Evolve(initial, automaton.FromCode(code), rounds)
		res := Classify(grid)
		res.Code = code
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Class != results[j].Class {
			return classOrder(results[i].Class) < classOrder(results[j].Class)
		}
		return results[i].Code < results[j].Code
	})
	return results
}

func classOrder(c Class) int {
	switch c {
	case Uniform:
		return 0
	case Periodic:
		return 1
	case Aperiodic:
		return 2
	default:
		return 3
	}
}

// ParseCodes reads a list of rule numbers such as "30,90,100-110". Duplicates
// are removed and the result is sorted.
func ParseCodes(s string) ([]uint8, error) {
	set := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := parseCode(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseCode(hi); err != nil {
				return nil, err
			}
		}
		if to < from {
			return nil, fmt.Errorf("rule range %q is reversed", part)
		}
		for c := from; c <= to; c++ {
			set[c] = true
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no rule numbers in %q", s)
	}
	codes := make([]uint8, 0, len(set))
	for c := range set {
		codes = append(codes, uint8(c))
	}
	slices.Sort(codes)
	return codes, nil
}

func parseCode(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("rule number %q must be in 0-255", s)
	}
	return n, nil
}
