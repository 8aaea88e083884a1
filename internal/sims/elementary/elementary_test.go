package elementary

import (
	"slices"
	"testing"

	"rule-ca/pkg/automaton"
)

func TestMatchesEvolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Initial = automaton.Row{0, 0, 0, 0, 1, 0, 0, 0, 0}
	cfg.Rule = automaton.FromCode(30)
	cfg.Height = 6

	sim := New(cfg)
	for i := 0; i < cfg.Height-1; i++ {
		sim.Step()
	}

	want := automaton.Evolve(cfg.Initial, cfg.Rule, cfg.Height).Cells()
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("viewer buffer diverged from Evolve:\n got %v\nwant %v", sim.Cells(), want)
	}
}

func TestScrollsOnceFull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Initial = automaton.Row{0, 0, 0, 1, 0, 0, 0}
	cfg.Rule = automaton.FromCode(90)
	cfg.Height = 3

	sim := New(cfg)
	for i := 0; i < 4; i++ {
		sim.Step()
	}
	if sim.Generation() != 4 {
		t.Fatalf("generation = %d, want 4", sim.Generation())
	}

	// The window holds generations 2..4 of the full evolution.
	full := automaton.Evolve(cfg.Initial, cfg.Rule, 5)
	want := automaton.Grid(full[2:]).Cells()
	if !slices.Equal(sim.Cells(), want) {
		t.Fatalf("window = %v, want %v", sim.Cells(), want)
	}
}

func TestResetRestoresInitialRow(t *testing.T) {
	cfg := DefaultConfig()
	sim := New(cfg)
	first := append([]uint8(nil), sim.Cells()...)
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	sim.Reset(0)
	if !slices.Equal(first, sim.Cells()) {
		t.Fatal("Reset did not restore the initial state")
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation after reset = %d", sim.Generation())
	}
}

func TestRandomResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Random = true
	sim := New(cfg)
	sim.Reset(99)
	a := append([]uint8(nil), sim.Cells()...)
	sim.Reset(99)
	if !slices.Equal(a, sim.Cells()) {
		t.Fatal("random reset with the same seed differs")
	}
}

func TestSetIntParameter(t *testing.T) {
	sim := New(DefaultConfig())

	if !sim.SetIntParameter("rule", 30) {
		t.Fatal("rule 30 rejected")
	}
	if code, ok := sim.Rule().Code(); !ok || code != 30 {
		t.Fatalf("rule = %d, %v, want 30", code, ok)
	}
	if p, _ := sim.Parameters().Lookup("rule"); p.Value != "30" {
		t.Fatalf("rule parameter = %q", p.Value)
	}

	// Rule 30 maps 000 to 0; switching it on yields rule 31.
	if !sim.SetIntParameter("000", 1) {
		t.Fatal("toggle rejected")
	}
	if code, _ := sim.Rule().Code(); code != 31 {
		t.Fatalf("rule after toggle = %d, want 31", code)
	}
	if p, _ := sim.Parameters().Lookup("000"); p.Value != "1" {
		t.Fatalf("000 parameter = %q", p.Value)
	}

	for _, tc := range []struct {
		key   string
		value int
	}{{"rule", 256}, {"rule", -1}, {"000", 2}, {"0000", 1}, {"speed", 1}} {
		if sim.SetIntParameter(tc.key, tc.value) {
			t.Fatalf("SetIntParameter(%q, %d) accepted", tc.key, tc.value)
		}
	}
}

func TestIncompleteRuleShowsNoNumber(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = automaton.NewRuleTable(map[string]automaton.Cell{"010": 1})
	sim := New(cfg)
	if p, _ := sim.Parameters().Lookup("rule"); p.Value != "--" {
		t.Fatalf("rule parameter = %q, want --", p.Value)
	}
	if got := len(sim.ParameterControls()); got != 9 {
		t.Fatalf("controls = %d, want 9", got)
	}
}
