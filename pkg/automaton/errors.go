package automaton

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCell reports a cell value or character that is not 0 or 1.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrInvalidPattern reports a rule key that is not a three-character
	// binary pattern.
	ErrInvalidPattern = errors.New("invalid neighborhood pattern")
	// ErrIncompleteRule reports a rule table that does not define every
	// neighborhood.
	ErrIncompleteRule = errors.New("incomplete rule table")
)

// RuleError collects every problem found by NewStrictRuleTable.
type RuleError struct {
	Missing       []string
	InvalidKeys   []string
	InvalidValues []string
}

func (e *RuleError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing patterns %s", strings.Join(e.Missing, ",")))
	}
	if len(e.InvalidKeys) > 0 {
		parts = append(parts, fmt.Sprintf("invalid keys %s", strings.Join(e.InvalidKeys, ",")))
	}
	if len(e.InvalidValues) > 0 {
		parts = append(parts, fmt.Sprintf("non-binary outputs for %s", strings.Join(e.InvalidValues, ",")))
	}
	return "rule table: " + strings.Join(parts, "; ")
}

// Unwrap exposes the sentinel errors matching the recorded problems.
func (e *RuleError) Unwrap() []error {
	var errs []error
	if len(e.Missing) > 0 {
		errs = append(errs, ErrIncompleteRule)
	}
	if len(e.InvalidKeys) > 0 {
		errs = append(errs, ErrInvalidPattern)
	}
	if len(e.InvalidValues) > 0 {
		errs = append(errs, ErrInvalidCell)
	}
	return errs
}
