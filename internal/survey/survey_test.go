package survey

import (
	"testing"

	"rule-ca/pkg/automaton"
)

func single(width int) automaton.Row {
	row := make(automaton.Row, width)
	row[width/2] = 1
	return row
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		code      uint8
		initial   automaton.Row
		rounds    int
		want      Class
		period    int
		transient int
	}{
		// Rule 0 clears everything after one step.
		{name: "rule 0", code: 0, initial: single(11), rounds: 5, want: Uniform, transient: 1},
		// Rule 204 is the identity.
		{name: "rule 204", code: 204, initial: single(11), rounds: 5, want: Periodic, period: 1, transient: 0},
		// Rule 51 inverts every cell.
		{name: "rule 51", code: 51, initial: single(11), rounds: 5, want: Periodic, period: 2, transient: 0},
		{name: "rule 30", code: 30, initial: single(41), rounds: 15, want: Aperiodic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(automaton.Evolve(tt.initial, automaton.FromCode(tt.code), tt.rounds))
			if res.Class != tt.want {
				t.Fatalf("class = %s, want %s", res.Class, tt.want)
			}
			if res.Period != tt.period {
				t.Fatalf("period = %d, want %d", res.Period, tt.period)
			}
			if res.Transient != tt.transient {
				t.Fatalf("transient = %d, want %d", res.Transient, tt.transient)
			}
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	if res := Classify(nil); res.Class != Empty {
		t.Fatalf("class = %s, want empty", res.Class)
	}
	if res := Classify(automaton.Grid{{}}); res.Class != Uniform {
		t.Fatalf("zero-width row class = %s, want uniform", res.Class)
	}
}

func TestRunOrdersResults(t *testing.T) {
	results := Run(single(21), []uint8{30, 0, 204, 255}, 10)
	if len(results) != 4 {
		t.Fatalf("got %d results", len(results))
	}
	want := []uint8{0, 255, 204, 30}
	for i, r := range results {
		if r.Code != want[i] {
			t.Fatalf("result %d is rule %d, want %d (%v)", i, r.Code, want[i], results)
		}
	}
}

func TestParseCodes(t *testing.T) {
	codes, err := ParseCodes("30, 90,100-102,90")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{30, 90, 100, 101, 102}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
	if all, err := ParseCodes("0-255"); err != nil || len(all) != 256 {
		t.Fatalf("0-255 gave %d codes, %v", len(all), err)
	}
	for _, bad := range []string{"", "256", "10-5", "x", "-1"} {
		if _, err := ParseCodes(bad); err == nil {
			t.Fatalf("ParseCodes(%q) accepted", bad)
		}
	}
}
