package scansion

import "testing"

func TestQuantitiesOf(t *testing.T) {
	cases := []struct {
		in   string
		want []Quantity
	}{
		{"a", []Quantity{Short}},
		{"a_", []Quantity{Long}},
		{"a_^", []Quantity{Long, Short}},
	}
	for _, c := range cases {
		got := QuantitiesOf(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("QuantitiesOf(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("QuantitiesOf(%q)[%d] = %v, want %v", c.in, i, got[i], c.want[i])
			}
		}
	}
}

// footAutomaton builds a trivial four-state automaton that accepts
// exactly "L S S" or "L L" (one dactylic/spondaic foot), to exercise
// BestPath without needing the full hexameter grammar.
func footAutomaton() *Automaton {
	a := NewAutomaton(0)
	a.AddTransition(Transition{From: 0, To: 1, On: Long, Cost: 0})
	a.AddTransition(Transition{From: 1, To: 2, On: Short, Cost: 0})
	a.AddTransition(Transition{From: 2, To: 3, On: Short, Cost: 0})
	a.AddTransition(Transition{From: 1, To: 3, On: Long, Cost: 0.5})
	a.SetAccept(3)
	return a
}

func TestBestPathFindsAcceptingDactyl(t *testing.T) {
	a := footAutomaton()
	syllables := [][]Candidate{
		{{Form: "x", BaseRank: 0, Qualities: []Quantity{Long}}},
		{{Form: "y", BaseRank: 0, Qualities: []Quantity{Short, Long}}},
		{{Form: "z", BaseRank: 0, Qualities: []Quantity{Short}}},
	}
	choice, ok := BestPath(a, syllables)
	if !ok {
		t.Fatal("expected an accepting path")
	}
	if len(choice) != 3 {
		t.Fatalf("choice = %v", choice)
	}
}

func TestBestPathNoAcceptingPath(t *testing.T) {
	a := footAutomaton()
	syllables := [][]Candidate{
		{{Form: "x", BaseRank: 0, Qualities: []Quantity{Short}}},
	}
	_, ok := BestPath(a, syllables)
	if ok {
		t.Fatal("expected no accepting path for a single short syllable")
	}
}
