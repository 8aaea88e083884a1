package core

import (
	"slices"
	"testing"
	"time"

	"rule-ca/pkg/automaton"
)

func TestFromGrid(t *testing.T) {
	g := automaton.Grid{{1, 0, 1}, {0, 1, 0}}
	bg := FromGrid(g)
	if bg.W != 3 || bg.H != 2 {
		t.Fatalf("size = %dx%d, want 3x2", bg.W, bg.H)
	}
	if !slices.Equal(bg.Cells(), []uint8{1, 0, 1, 0, 1, 0}) {
		t.Fatalf("cells = %v", bg.Cells())
	}
	if bg.At(1, 1) != 1 || bg.At(-1, 0) != 0 || bg.At(3, 0) != 0 {
		t.Fatal("At returned wrong values")
	}
	if empty := FromGrid(nil); empty.W != 0 || empty.H != 0 || len(empty.Cells()) != 0 {
		t.Fatal("empty grid must produce an empty ByteGrid")
	}
}

func TestScrollUp(t *testing.T) {
	bg := NewByteGrid(2, 3)
	copy(bg.Cells(), []uint8{1, 1, 0, 1, 1, 0})
	bg.ScrollUp()
	if !slices.Equal(bg.Cells(), []uint8{0, 1, 1, 0, 0, 0}) {
		t.Fatalf("after scroll = %v", bg.Cells())
	}
	bg.Clear()
	if !slices.Equal(bg.Cells(), make([]uint8, 6)) {
		t.Fatal("Clear left live cells")
	}
}

func TestPacer(t *testing.T) {
	p := NewPacer(10)
	start := time.Unix(0, 0)
	if !p.Due(start) {
		t.Fatal("first poll must fire")
	}
	if p.Due(start.Add(50 * time.Millisecond)) {
		t.Fatal("fired before the interval elapsed")
	}
	if !p.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("did not fire after the interval")
	}
	// A long stall leaves a backlog that drains one generation per poll.
	later := start.Add(400 * time.Millisecond)
	fired := 0
	for i := 0; i < 5; i++ {
		if p.Due(later) {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("backlog drained %d generations, want 3", fired)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Rule", Params: []Parameter{{Key: "rule", Value: "90"}}},
	}}
	if p, ok := s.Lookup("rule"); !ok || p.Value != "90" {
		t.Fatalf("Lookup(rule) = %v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
