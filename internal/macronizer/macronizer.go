// Package macronizer is the pipeline orchestrator: a single Macronizer
// value, created once per run, that encapsulates the lexicon, priors,
// endings table, and adapter handles the rest of the pipeline needs rather
// than scattering them across package-level globals (the teacher's own
// Lemmatizer facade in collatinus.go plays the same encapsulating role for
// its own, narrower, lemmatization engine).
package macronizer

import (
	"strings"

	"github.com/cours-de-latin/macronizer/internal/align"
	"github.com/cours-de-latin/macronizer/internal/detokenizer"
	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/metrics"
	"github.com/cours-de-latin/macronizer/internal/priors"
	"github.com/cours-de-latin/macronizer/internal/scansion"
	"github.com/cours-de-latin/macronizer/internal/selector"
	"github.com/cours-de-latin/macronizer/internal/tagger"
	"github.com/cours-de-latin/macronizer/internal/token"
	"github.com/cours-de-latin/macronizer/internal/tokenizer"
)

// Tagger is the subset of *tagger.Adapter the orchestrator needs, narrowed
// to an interface so tests can supply a fake without an external binary.
type Tagger interface {
	Tag(surfaces []string) ([]string, error)
}

// Options controls the optional orthographic transforms the aligner applies
// to every word, mirroring spec §4.6's Options.
type Options struct {
	FoldUV    bool
	FoldIJ    bool
	AlsoMaius bool
}

// Macronizer bundles every piece of state a macronization run needs.
type Macronizer struct {
	Lexicon  *lexicon.Store
	Analyzer lexicon.Analyzer
	Tagger   Tagger
	Selector *selector.Selector
	Options  Options
	Log      logging.Logger

	// Scansion is the optional verse automaton spec §4.7 re-ranks candidates
	// against. Left nil, Macronize behaves exactly as without the scansion
	// engine: candidates[0] always wins.
	Scansion *scansion.Automaton
}

// New constructs a Macronizer from its component parts. Any nil Log is
// replaced with a no-op logger.
func New(store *lexicon.Store, analyzer lexicon.Analyzer, tag Tagger, endingsTable endings.Table, p *priors.Priors, opts Options, log logging.Logger) *Macronizer {
	if log == nil {
		log = logging.NewNop()
	}
	return &Macronizer{
		Lexicon:  store,
		Analyzer: analyzer,
		Tagger:   tag,
		Selector: selector.New(endingsTable, p),
		Options:  opts,
		Log:      log,
	}
}

// encliticGate decides whether the tokenizer should split an enclitic off
// a candidate word, per spec §4.1: only when the stripped prefix is itself
// a known lexicon entry.
type encliticGate struct {
	m *Macronizer
}

func (g encliticGate) ShouldSplit(word, suffix string) bool {
	prefix := word[:len(word)-len(suffix)]
	if prefix == "" {
		return false
	}
	analyses, err := g.m.Lexicon.Lookup(prefix)
	if err != nil {
		return false
	}
	for _, a := range analyses {
		if !a.IsUnknown() {
			return true
		}
	}
	return false
}

// Macronize runs the full pipeline over text and returns the macronized
// result.
func (m *Macronizer) Macronize(text string) (string, error) {
	defer func() { metrics.TextsProcessed.Inc() }()

	ts := tokenizer.Tokenize(text, encliticGate{m})

	words := ts.Words()
	forms := make([]string, 0, len(words))
	seen := make(map[string]bool)
	for _, w := range words {
		f := strings.ToLower(w.Surface())
		if !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	if err := m.Lexicon.LoadWords(forms, m.Analyzer); err != nil {
		return "", err
	}

	if err := m.tag(words); err != nil {
		return "", err
	}

	for _, w := range words {
		lower := strings.ToLower(w.Surface())
		analyses, err := m.Lexicon.Lookup(lower)
		if err != nil {
			return "", err
		}
		w.SetCandidates(m.Selector.Select(lower, w.Tag(), analyses))
	}

	chosen := m.rerank(words)

	for i, w := range words {
		macronized := align.Align(w.Surface(), chosen[i], align.Options{
			Macronize: true,
			FoldUV:    m.Options.FoldUV,
			FoldIJ:    m.Options.FoldIJ,
			AlsoMaius: m.Options.AlsoMaius,
		})
		w.SetMacronized(macronized)
	}

	return detokenizer.Detokenize(ts), nil
}

// rerank returns, for each word in order, the accented form to align
// against: the selector's top candidate, unless a verse automaton is
// configured and the scansion engine's Viterbi search (spec §4.7) finds an
// accepting path, in which case that path's pick for the word wins.
func (m *Macronizer) rerank(words []token.Token) []string {
	chosen := make([]string, len(words))
	for i, w := range words {
		chosen[i] = w.Candidates()[0]
	}
	if m.Scansion == nil {
		return chosen
	}

	syllables := make([][]scansion.Candidate, len(words))
	for i, w := range words {
		cands := w.Candidates()
		sylls := make([]scansion.Candidate, len(cands))
		for r, c := range cands {
			sylls[r] = scansion.Candidate{Form: c, BaseRank: r, Qualities: scansion.QuantitiesOf(c)}
		}
		syllables[i] = sylls
	}

	path, ok := scansion.BestPath(m.Scansion, syllables)
	if !ok {
		return chosen
	}
	for i, idx := range path {
		cands := words[i].Candidates()
		if idx >= 0 && idx < len(cands) {
			chosen[i] = cands[idx]
		}
	}
	return chosen
}

// tag assigns a tag to every word token via the external tagger, in
// surface order.
func (m *Macronizer) tag(words []token.Token) error {
	if len(words) == 0 {
		return nil
	}
	surfaces := make([]string, len(words))
	for i, w := range words {
		surfaces[i] = w.Surface()
	}
	tags, err := m.Tagger.Tag(surfaces)
	if err != nil {
		return err
	}
	for i, w := range words {
		if i < len(tags) {
			w.SetTag(tags[i])
		}
	}
	return nil
}
