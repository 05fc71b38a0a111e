// Package scansion implements the optional metrical re-ranker (spec §4.7):
// a finite-state automaton over the {L,S} syllable-quantity alphabet with
// per-transition cost, used to re-rank a word's candidate accented forms
// against a verse meter via a Viterbi-style dynamic program.
package scansion

import "strings"

// Quantity is a syllable's metrical weight.
type Quantity byte

const (
	Long  Quantity = 'L'
	Short Quantity = 'S'
)

// Transition is one edge of the automaton: from state "from", consuming
// quantity "on", to state "to", at the given cost.
type Transition struct {
	From, To int
	On       Quantity
	Cost     float64
}

// Automaton is a finite-state automaton over {L,S}. States are small
// integers; Start is the initial state; Accept names accepting states.
type Automaton struct {
	Start       int
	Accept      map[int]bool
	Transitions map[int][]Transition // indexed by From
}

// NewAutomaton returns an empty Automaton rooted at start.
func NewAutomaton(start int) *Automaton {
	return &Automaton{Start: start, Accept: make(map[int]bool), Transitions: make(map[int][]Transition)}
}

// AddTransition registers a transition.
func (a *Automaton) AddTransition(t Transition) {
	a.Transitions[t.From] = append(a.Transitions[t.From], t)
}

// SetAccept marks state as accepting.
func (a *Automaton) SetAccept(state int) { a.Accept[state] = true }

// Candidate is one accented-form option for a syllable position, carrying
// the selector's base rank (its index among the selector's ranked pool) and
// the set of quantities it can realize. An ambiguous-quantity vowel yields
// both Long and Short in Quantities, sharing the same BaseRank since picking
// between them via meter is not a change of lexical candidate.
type Candidate struct {
	Form      string
	BaseRank  int
	Qualities []Quantity
}

// BestPath runs the Viterbi-style dynamic program over syllables (one
// Candidate list per syllable position) against automaton a, minimizing
// cumulative BaseRank + scansion cost. It returns the chosen Candidate index
// per syllable and true, or (nil, false) if no accepting path exists.
func BestPath(a *Automaton, syllables [][]Candidate) ([]int, bool) {
	type cell struct {
		cost    float64
		valid   bool
		prev    int // previous syllable's chosen state
		candIdx int
	}

	// dp[i] maps automaton state -> best cell reaching that state after
	// consuming syllable i.
	dp := make([]map[int]cell, len(syllables)+1)
	dp[0] = map[int]cell{a.Start: {cost: 0, valid: true, prev: -1}}

	// back[i][state] records which candidate/quantity choice and prior
	// state produced this cell, for path reconstruction.
	type backPointer struct {
		prevState int
		candIdx   int
	}
	back := make([]map[int]backPointer, len(syllables)+1)
	for i := range back {
		back[i] = make(map[int]backPointer)
	}

	for i, cands := range syllables {
		dp[i+1] = make(map[int]cell)
		for state, c := range dp[i] {
			if !c.valid {
				continue
			}
			for ci, cand := range cands {
				for _, q := range cand.Qualities {
					for _, tr := range a.Transitions[state] {
						if tr.On != q {
							continue
						}
						total := c.cost + float64(cand.BaseRank) + tr.Cost
						existing, ok := dp[i+1][tr.To]
						if !ok || total < existing.cost {
							dp[i+1][tr.To] = cell{cost: total, valid: true, prev: state, candIdx: ci}
							back[i+1][tr.To] = backPointer{prevState: state, candIdx: ci}
						}
					}
				}
			}
		}
	}

	bestState, bestCost, found := -1, 0.0, false
	for state := range a.Accept {
		c, ok := dp[len(syllables)][state]
		if !ok || !c.valid {
			continue
		}
		if !found || c.cost < bestCost {
			bestState, bestCost, found = state, c.cost, true
		}
	}
	if !found {
		return nil, false
	}

	choice := make([]int, len(syllables))
	state := bestState
	for i := len(syllables); i > 0; i-- {
		bp := back[i][state]
		choice[i-1] = bp.candIdx
		state = bp.prevState
	}
	return choice, true
}

// QuantitiesOf interprets an accented-form syllable's markers into the set
// of metrical quantities it can realize: '_' -> Long, no marker -> Short,
// '_^' (ambiguous) -> both.
func QuantitiesOf(syllable string) []Quantity {
	hasLong := strings.ContainsRune(syllable, '_')
	hasShort := strings.ContainsRune(syllable, '^') || !hasLong
	var out []Quantity
	if hasLong {
		out = append(out, Long)
	}
	if hasShort {
		out = append(out, Short)
	}
	return out
}
