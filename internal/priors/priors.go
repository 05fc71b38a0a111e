// Package priors holds the static lemma-frequency tables the candidate
// selector's tie-break rules consult, derived offline from a macronized
// training corpus (see internal/dataprep, mirroring the original data-prep
// pipeline's create_lemma_frequency_file).
package priors

import (
	"bufio"
	"os"
	"strings"
)

// Priors bundles the three frequency tables spec §4.5's tie-break order
// consults. The selector consults WordLemmaFreq first, then LemmaFrequency,
// then WordformToCorpusLemmas.
type Priors struct {
	// LemmaFrequency maps a lemma to its overall corpus frequency.
	LemmaFrequency map[string]int

	// WordLemmaFreq maps a (wordform, lemma) pair to how often that lemma
	// was the correct reading for that surface form in the corpus.
	WordLemmaFreq map[WordLemma]int

	// WordformToCorpusLemmas maps a wordform to the lemmas it was seen
	// attested with, ordered by first occurrence in the corpus; used as a
	// last tie-break before falling back to lexicographic order.
	WordformToCorpusLemmas map[string][]string
}

// WordLemma is the composite key for WordLemmaFreq.
type WordLemma struct {
	Wordform string
	Lemma    string
}

// New returns an empty, ready-to-populate Priors.
func New() *Priors {
	return &Priors{
		LemmaFrequency:         make(map[string]int),
		WordLemmaFreq:          make(map[WordLemma]int),
		WordformToCorpusLemmas: make(map[string][]string),
	}
}

// LoadMacronsFile builds a Priors by counting lemma attestations directly
// out of a macrons.txt-format file (tab-separated wordform/tag/lemma/accented
// lines, the same format internal/lexicon.Store.ImportSeed reads and
// internal/dataprep.WriteMacrons writes). There is no separate persisted
// priors artifact in internal/config.PathsConfig, so priors are always
// derived from the macrons file at startup rather than loaded from their
// own file, mirroring how extractlexicon.py's create_lemma_frequency_file
// counts straight off the macronized corpus it is given. A missing file is
// not an error; it yields empty (zero-count) Priors.
func LoadMacronsFile(path string) (*Priors, error) {
	p := New()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 3 {
			continue
		}
		wordform, lemma := fields[0], fields[2]

		p.LemmaFrequency[lemma]++
		p.WordLemmaFreq[WordLemma{Wordform: wordform, Lemma: lemma}]++

		if p.LemmaPosition(wordform, lemma) < 0 {
			p.WordformToCorpusLemmas[wordform] = append(p.WordformToCorpusLemmas[wordform], lemma)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// LemmaPosition returns the index of lemma in WordformToCorpusLemmas[word],
// or -1 if it is not attested for that word.
func (p *Priors) LemmaPosition(word, lemma string) int {
	for i, l := range p.WordformToCorpusLemmas[word] {
		if l == lemma {
			return i
		}
	}
	return -1
}
