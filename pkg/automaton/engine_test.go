package automaton

import (
	"slices"
	"testing"
)

func rule90() RuleTable {
	assignments := map[string]Cell{}
	for _, n := range Patterns() {
		assignments[n.String()] = n.Left ^ n.Right
	}
	return NewRuleTable(assignments)
}

func mustRow(t *testing.T, s string) Row {
	t.Helper()
	row, err := ParseRow(s)
	if err != nil {
		t.Fatalf("ParseRow(%q): %v", s, err)
	}
	return row
}

func TestStepZeroBoundary(t *testing.T) {
	table := NewRuleTable(map[string]Cell{"001": 1})
	got := Step(mustRow(t, "100"), table)
	if got.String() != "000" {
		t.Fatalf("step(100) = %s, want 000", got)
	}

	// The same table does fire when a live cell sits to the right.
	got = Step(mustRow(t, "010"), table)
	if got.String() != "100" {
		t.Fatalf("step(010) = %s, want 100", got)
	}
}

func TestStepPreservesLengthAndInput(t *testing.T) {
	table := FromCode(110)
	for _, s := range []string{"", "1", "10", "0110101", "1111111111"} {
		row := mustRow(t, s)
		before := row.Clone()
		next := Step(row, table)
		if len(next) != len(row) {
			t.Fatalf("len(step(%q)) = %d, want %d", s, len(next), len(row))
		}
		if !slices.Equal(row, before) {
			t.Fatalf("step mutated its input %q", s)
		}
		again := Step(row, table)
		if !slices.Equal(next, again) {
			t.Fatalf("step(%q) not deterministic: %s vs %s", s, next, again)
		}
	}
}

func TestStepEmptyRow(t *testing.T) {
	got := Step(Row{}, FromCode(30))
	if got == nil || len(got) != 0 {
		t.Fatalf("step on empty row = %#v, want empty row", got)
	}
	if got := Step(nil, FromCode(30)); len(got) != 0 {
		t.Fatalf("step on nil row = %#v, want empty row", got)
	}
}

func TestEvolveRule90Sierpinski(t *testing.T) {
	grid := Evolve(mustRow(t, "0001000"), rule90(), 4)
	want := []string{"0001000", "0010100", "0100010", "1010101"}
	if len(grid) != len(want) {
		t.Fatalf("grid has %d rows, want %d", len(grid), len(want))
	}
	for i, row := range grid {
		if row.String() != want[i] {
			t.Fatalf("row %d = %s, want %s", i, row, want[i])
		}
	}
}

func TestEvolveShape(t *testing.T) {
	initial := mustRow(t, "0110100111")
	table := FromCode(30)
	for _, rounds := range []int{1, 2, 7, 50} {
		grid := Evolve(initial, table, rounds)
		if grid.Height() != rounds {
			t.Fatalf("rounds=%d: got %d rows", rounds, grid.Height())
		}
		if !slices.Equal(grid[0], initial) {
			t.Fatalf("rounds=%d: grid[0] = %s, want %s", rounds, grid[0], initial)
		}
		for i, row := range grid {
			if len(row) != len(initial) {
				t.Fatalf("rounds=%d: row %d has length %d", rounds, i, len(row))
			}
			if i > 0 && !slices.Equal(row, Step(grid[i-1], table)) {
				t.Fatalf("rounds=%d: row %d is not the step of row %d", rounds, i, i-1)
			}
		}
	}
}

func TestEvolveDegenerateRounds(t *testing.T) {
	initial := mustRow(t, "101")
	if grid := Evolve(initial, FromCode(90), 0); len(grid) != 0 {
		t.Fatalf("rounds=0 produced %d rows", len(grid))
	}
	if grid := Evolve(initial, FromCode(90), -3); len(grid) != 0 {
		t.Fatalf("negative rounds produced %d rows", len(grid))
	}
	grid := Evolve(initial, FromCode(90), 1)
	if len(grid) != 1 || !slices.Equal(grid[0], initial) {
		t.Fatalf("rounds=1 = %v, want [%s]", grid, initial)
	}
}

func TestEvolveCopiesInitialRow(t *testing.T) {
	initial := mustRow(t, "010")
	grid := Evolve(initial, FromCode(90), 2)
	initial[1] = 0
	if grid[0].String() != "010" {
		t.Fatalf("grid[0] changed with caller's row: %s", grid[0])
	}
}

func TestEvolveDeterministic(t *testing.T) {
	initial := mustRow(t, "0000000000100000000000")
	a := Evolve(initial, FromCode(110), 40)
	b := Evolve(initial, FromCode(110), 40)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("evolve produced different grids for identical input")
	}
}

func TestEvolveEmptyRow(t *testing.T) {
	grid := Evolve(Row{}, FromCode(90), 3)
	if grid.Height() != 3 || grid.Width() != 0 {
		t.Fatalf("grid = %dx%d, want 0x3", grid.Width(), grid.Height())
	}
}

func TestGridCells(t *testing.T) {
	grid := Grid{mustRow(t, "10"), mustRow(t, "01")}
	if got := grid.Cells(); !slices.Equal(got, []uint8{1, 0, 0, 1}) {
		t.Fatalf("cells = %v", got)
	}
	if (Grid{}).Width() != 0 {
		t.Fatal("empty grid must have width 0")
	}
}
