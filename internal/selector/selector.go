// Package selector implements the candidate selector (spec §4.5): given a
// tagged word and its lexicon analyses, choose the most likely accented
// form by exact-tag match, else tag-distance ranking with a four-level
// tie-break, falling back to suffix-based guessing for unknown words.
package selector

import (
	"sort"
	"strings"

	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/priors"
	"github.com/cours-de-latin/macronizer/internal/tagset"
)

// Selector picks accented forms for tagged words.
type Selector struct {
	Endings endings.Table
	Priors  *priors.Priors
}

// New returns a Selector backed by the given endings table and frequency
// priors.
func New(e endings.Table, p *priors.Priors) *Selector {
	return &Selector{Endings: e, Priors: p}
}

// Select returns the ranked list of accented-form candidates for word under
// tag, given its lexicon analyses. Select(...)[0] is the chosen form. The
// returned slice is never empty: a fully unknown word with no matching
// ending falls back to a one-element slice containing the unmodified word.
func (s *Selector) Select(word, tag string, analyses []lexicon.Analysis) []string {
	pool := s.rankedPool(word, tag, analyses)
	if len(pool) > 0 {
		return dedupe(pool)
	}
	if accented, ok := s.Endings.Lookup(word, tag); ok {
		return []string{accented}
	}
	return []string{word}
}

// rankedPool returns accented forms ordered by preference, before
// deduplication: exact tag matches first (in tie-break order among
// themselves), else all analyses ranked by tag distance then tie-break.
func (s *Selector) rankedPool(word, tag string, analyses []lexicon.Analysis) []string {
	var exact, rest []lexicon.Analysis
	for _, a := range analyses {
		if a.IsUnknown() {
			continue
		}
		if a.Tag == tag {
			exact = append(exact, a)
		} else {
			rest = append(rest, a)
		}
	}

	pool := scoreByDistance(exact, tag)
	if len(pool) == 0 {
		pool = scoreByDistance(rest, tag)
	}

	s.sortByDistanceThenTieBreak(pool, word)

	out := make([]string, len(pool))
	for i, sc := range pool {
		out[i] = sc.a.Accented
	}
	return out
}

// scored pairs an analysis with its tag_distance to the target tag, so
// distance stays available as the primary sort key alongside the
// tie-break fields.
type scored struct {
	a    lexicon.Analysis
	dist int
}

// scoreByDistance computes each analysis's tag_distance to target,
// dropping any whose distance is undefined (mismatched/invalid lengths)
// rather than raising, since an ill-formed candidate tag should simply
// lose the ranking rather than abort selection for the whole word.
func scoreByDistance(analyses []lexicon.Analysis, target string) []scored {
	var out []scored
	for _, a := range analyses {
		d, err := tagset.Distance(a.Tag, target)
		if err != nil {
			continue
		}
		out = append(out, scored{a, d})
	}
	return out
}

// sortByDistanceThenTieBreak orders pool by ascending tag_distance first,
// never letting the four-level tie-break in spec §4.5 cross a distance
// boundary: tie-break fields only decide order between two candidates
// already tied on distance.
func (s *Selector) sortByDistanceThenTieBreak(pool []scored, word string) {
	word = strings.ToLower(word)
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].dist != pool[j].dist {
			return pool[i].dist < pool[j].dist
		}
		a, b := pool[i].a, pool[j].a
		if s.Priors != nil {
			wlfA := s.Priors.WordLemmaFreq[priors.WordLemma{Wordform: word, Lemma: a.Lemma}]
			wlfB := s.Priors.WordLemmaFreq[priors.WordLemma{Wordform: word, Lemma: b.Lemma}]
			if wlfA != wlfB {
				return wlfA > wlfB
			}
			lfA := s.Priors.LemmaFrequency[a.Lemma]
			lfB := s.Priors.LemmaFrequency[b.Lemma]
			if lfA != lfB {
				return lfA > lfB
			}
			posA := s.Priors.LemmaPosition(word, a.Lemma)
			posB := s.Priors.LemmaPosition(word, b.Lemma)
			if posA != posB {
				if posA == -1 {
					return false
				}
				if posB == -1 {
					return true
				}
				return posA < posB
			}
		}
		return a.Accented < b.Accented
	})
}

// dedupe removes duplicate accented forms, preserving order of first
// occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
