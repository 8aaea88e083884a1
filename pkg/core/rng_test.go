package core

import (
	"slices"
	"testing"
)

func TestRandomRowDeterministic(t *testing.T) {
	a := RandomRow(42, 64, 0.5)
	b := RandomRow(42, 64, 0.5)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different rows")
	}
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i, c := range a {
		if c > 1 {
			t.Fatalf("cell %d = %d, not binary", i, c)
		}
	}
}

func TestRandomRowDensityBounds(t *testing.T) {
	if d := RandomRow(7, 100, 0).Density(); d != 0 {
		t.Fatalf("density 0 gave %v", d)
	}
	if d := RandomRow(7, 100, 1.5).Density(); d != 1 {
		t.Fatalf("density above 1 gave %v", d)
	}
	if row := RandomRow(7, -1, 0.5); len(row) != 0 {
		t.Fatalf("negative width gave %d cells", len(row))
	}
}
