package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// RuleTable maps each neighborhood to the next value of the center cell.
// The zero value is a valid table in which every neighborhood maps to 0.
// RuleTable is a value type; copies never share state.
type RuleTable struct {
	out     [PatternCount]Cell
	defined [PatternCount]bool
}

// NewRuleTable builds a table from assignments keyed by three-character
// patterns ("000" through "111"). Keys that are not patterns are ignored and
// absent patterns resolve to 0 on lookup.
func NewRuleTable(assignments map[string]Cell) RuleTable {
	var t RuleTable
	for key, v := range assignments {
		n, err := ParsePattern(key)
		if err != nil {
			continue
		}
		idx := n.Index()
		t.out[idx] = v
		t.defined[idx] = true
	}
	return t
}

// NewStrictRuleTable is NewRuleTable with completeness checks: every pattern
// must be present, every key must be a pattern and every output must be 0 or
// 1. The returned error is a *RuleError.
func NewStrictRuleTable(assignments map[string]Cell) (RuleTable, error) {
	rerr := &RuleError{}
	for key, v := range assignments {
		if _, err := ParsePattern(key); err != nil {
			rerr.InvalidKeys = append(rerr.InvalidKeys, fmt.Sprintf("%q", key))
			continue
		}
		if v > 1 {
			rerr.InvalidValues = append(rerr.InvalidValues, key)
		}
	}
	t := NewRuleTable(assignments)
	rerr.Missing = t.Missing()
	sort.Strings(rerr.InvalidKeys)
	sort.Strings(rerr.InvalidValues)
	if len(rerr.Missing) > 0 || len(rerr.InvalidKeys) > 0 || len(rerr.InvalidValues) > 0 {
		return RuleTable{}, rerr
	}
	return t, nil
}

// FromCode builds the complete table for a Wolfram rule number: the output
// for the neighborhood with 3-bit value k is bit k of code.
func FromCode(code uint8) RuleTable {
	var t RuleTable
	for i := 0; i < PatternCount; i++ {
		t.out[i] = (code >> i) & 1
		t.defined[i] = true
	}
	return t
}

// Lookup returns the output for n, or 0 when n is not in the table.
func (t RuleTable) Lookup(n Neighborhood) Cell {
	idx := n.Index()
	if idx < 0 || !t.defined[idx] {
		return 0
	}
	return t.out[idx]
}

// Defined reports whether n has an explicit entry.
func (t RuleTable) Defined(n Neighborhood) bool {
	idx := n.Index()
	return idx >= 0 && t.defined[idx]
}

// Missing lists the patterns without an explicit entry in enumeration order.
func (t RuleTable) Missing() []string {
	var missing []string
	for i, ok := range t.defined {
		if !ok {
			missing = append(missing, NeighborhoodFromIndex(i).String())
		}
	}
	return missing
}

// Code returns the Wolfram rule number of the table. ok is false when a
// pattern is undefined or maps to a non-binary value.
func (t RuleTable) Code() (code uint8, ok bool) {
	for i := 0; i < PatternCount; i++ {
		if !t.defined[i] || t.out[i] > 1 {
			return 0, false
		}
		code |= t.out[i] << i
	}
	return code, true
}

// With returns a copy of t with n mapped to v.
func (t RuleTable) With(n Neighborhood, v Cell) RuleTable {
	idx := n.Index()
	if idx < 0 {
		return t
	}
	t.out[idx] = v
	t.defined[idx] = true
	return t
}

// Assignments returns the explicit entries keyed by pattern.
func (t RuleTable) Assignments() map[string]Cell {
	out := make(map[string]Cell, PatternCount)
	for i, ok := range t.defined {
		if ok {
			out[NeighborhoodFromIndex(i).String()] = t.out[i]
		}
	}
	return out
}

// String lists the entries as "000=0,001=1,...", omitting undefined ones.
func (t RuleTable) String() string {
	parts := make([]string, 0, PatternCount)
	for i, ok := range t.defined {
		if ok {
			parts = append(parts, fmt.Sprintf("%s=%d", NeighborhoodFromIndex(i), t.out[i]))
		}
	}
	return strings.Join(parts, ",")
}

// ParseAssignments reads rule entries from the command line. Two forms are
// accepted: comma separated "pattern=value" pairs ("000=0,001=1") and a
// string of eight binary digits giving the outputs for 000 through 111.
func ParseAssignments(s string) (map[string]Cell, error) {
	s = strings.TrimSpace(s)
	out := make(map[string]Cell, PatternCount)
	if s == "" {
		return out, nil
	}
	if !strings.Contains(s, "=") {
		if len(s) != PatternCount {
			return nil, fmt.Errorf("%w: want %d digits, got %q", ErrInvalidPattern, PatternCount, s)
		}
		for i := 0; i < PatternCount; i++ {
			v, err := parseBit(s[i])
			if err != nil {
				return nil, err
			}
			out[NeighborhoodFromIndex(i).String()] = v
		}
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		key, val, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || len(val) != 1 {
			return nil, fmt.Errorf("%w: malformed entry %q", ErrInvalidPattern, pair)
		}
		if _, err := ParsePattern(key); err != nil {
			return nil, err
		}
		v, err := parseBit(val[0])
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func parseBit(b byte) (Cell, error) {
	switch b {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCell, b)
}
