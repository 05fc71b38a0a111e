// cmd/buildlexicon's supporting logic: turn a loaded Engine into the three
// offline artifacts the live pipeline reads, mirroring the staged
// "generate lexicon rows, then derive endings, then derive lemma priors"
// pipeline original_source/extractlexicon.py runs over an existing
// macronized corpus — except here the corpus is synthesized from the
// grammar itself rather than read from one.
package dataprep

import (
	"fmt"
	"io"
	"sort"

	"github.com/cours-de-latin/macronizer/internal/accent"
	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/priors"
)

// Row is one macrons.txt record: a bare wordform paired with the canonical
// tag, governing lemma, and accented (in-band marker) form it takes under
// one reading.
type Row struct {
	Wordform string
	Tag      string
	Lemma    string
	Accented string
}

// BuildLexicon walks every loaded headword's full inflection table and
// emits one Row per inflected form. Each row's tag is derived from the
// headword's part of speech and the morphological description attached to
// the cell the form occupies; each row's accented field is the paradigm
// data's combining-diacritic spelling translated into in-band markers.
//
// Rows are returned sorted by wordform, then tag, for deterministic output.
func (e *Engine) BuildLexicon() []Row {
	var rows []Row

	keys := make([]string, 0, len(e.headwords))
	for k := range e.headwords {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		h := e.headwords[key]
		if h.paradigm == nil {
			continue
		}
		table := e.inflectionTable(h)

		cells := make([]int, 0, len(table))
		for c := range table {
			cells = append(cells, c)
		}
		sort.Ints(cells)

		tag := make(map[int]string, len(cells))
		for _, c := range cells {
			tag[c] = TagFromDescription(h.POS, e.Description(c))
		}

		for _, c := range cells {
			for _, form := range table[c] {
				rows = append(rows, Row{
					Wordform: Bare(form),
					Tag:      tag[c],
					Lemma:    h.Bare,
					Accented: accent.FromGlyph(form),
				})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wordform != rows[j].Wordform {
			return rows[i].Wordform < rows[j].Wordform
		}
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}

// inflectionTable computes every inflected form of h, cell by cell,
// combining its paradigm's endings with its own stems and folding in any
// irregular exceptions. A cell an exclusive exception covers yields only
// that exception's form; otherwise the exception (if any) is prepended to
// the regular forms, and duplicates are dropped.
func (e *Engine) inflectionTable(h *Headword) map[int][]string {
	if h == nil || h.paradigm == nil {
		return nil
	}
	table := make(map[int][]string)
	for cell := range h.paradigm.cells {
		if forms := e.cellForms(h, cell); len(forms) > 0 {
			table[cell] = forms
		}
	}
	return table
}

// cellForms returns the inflected forms h takes at the given morpho cell.
func (e *Engine) cellForms(h *Headword, cell int) []string {
	m := h.paradigm
	if m == nil {
		return nil
	}

	exForm, exclusive := h.exceptionAt(cell)
	if exclusive {
		if exForm != "" {
			return []string{exForm}
		}
		return nil
	}

	var forms []string
	if exForm != "" {
		forms = append(forms, exForm)
	}

	for _, end := range m.cells[cell] {
		for _, st := range h.stemsAt(end.stemIndex) {
			forms = append(forms, st.form+end.form)
		}
	}

	return dedupe(forms)
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := ss[:0]
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// WriteMacrons writes rows in macrons.txt's tab-separated
// wordform/tag/lemma/accented format, one row per line.
func WriteMacrons(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Wordform, r.Tag, r.Lemma, r.Accented); err != nil {
			return err
		}
	}
	return nil
}

// tailByLetters returns the shortest trailing substring of an in-band
// marker accented form that contains exactly n letters (markers attached
// to those letters included), so a suffix table entry keeps the quantity
// marks that belong to the letters it covers.
func tailByLetters(accented string, n int) string {
	runes := []rune(accented)
	i := len(runes)
	letters := 0
	for i > 0 && letters < n {
		i--
		if !accent.IsMarker(runes[i]) {
			letters++
		}
	}
	return string(runes[i:])
}

// bareSuffix strips every in-band quantity marker from an accented suffix,
// the same notion of "un-macronized" original_source/extractlexicon.py
// compares a candidate ending's frequency against.
func bareSuffix(s string) string {
	var b []rune
	for _, r := range s {
		if !accent.IsMarker(r) {
			b = append(b, r)
		}
	}
	return string(b)
}

// DeriveEndings builds a per-tag suffix-fallback table from rows, the
// offline counterpart of internal/endings.Table that internal/selector
// falls back to for forms absent from the lexicon.
//
// A candidate suffix is only kept when it carries a quantity marking (it
// differs from its own bare spelling) and is attested strictly more often
// than its bare counterpart — extractlexicon.py's
// create_lexicon_and_endings_data runs the identical comparison
// (ending_freqs[ending] > ending_freqs.get(ending_without_macrons, 1)) so
// that an accent a corpus only saw by noise never beats leaving the form
// unmacronized. Within a tag, the surviving suffixes end up longest-first,
// as Table.Add already orders them.
func DeriveEndings(rows []Row, suffixLen int) endings.Table {
	freq := make(map[string]map[string]int)
	for _, r := range rows {
		if len([]rune(r.Wordform)) < suffixLen {
			continue
		}
		suf := tailByLetters(r.Accented, suffixLen)
		if freq[r.Tag] == nil {
			freq[r.Tag] = make(map[string]int)
		}
		freq[r.Tag][suf]++
	}

	tags := make([]string, 0, len(freq))
	for tag := range freq {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	t := make(endings.Table)
	for _, tag := range tags {
		counts := freq[tag]
		suffixes := make([]string, 0, len(counts))
		for suf := range counts {
			suffixes = append(suffixes, suf)
		}
		sort.Strings(suffixes)

		for _, suf := range suffixes {
			bare := bareSuffix(suf)
			if suf == bare {
				continue
			}
			threshold := counts[bare]
			if threshold == 0 {
				threshold = 1
			}
			if counts[suf] > threshold {
				t.Add(tag, suf)
			}
		}
	}
	return t
}

// DerivePriors accumulates lemma and word/lemma frequency counts from
// rows, the offline counterpart of internal/priors.Priors that
// internal/selector's tie-break rules consult.
func DerivePriors(rows []Row) *priors.Priors {
	p := priors.New()
	for _, r := range rows {
		p.LemmaFrequency[r.Lemma]++
		key := priors.WordLemma{Wordform: r.Wordform, Lemma: r.Lemma}
		p.WordLemmaFreq[key]++
		seen := false
		for _, l := range p.WordformToCorpusLemmas[r.Wordform] {
			if l == r.Lemma {
				seen = true
				break
			}
		}
		if !seen {
			p.WordformToCorpusLemmas[r.Wordform] = append(p.WordformToCorpusLemmas[r.Wordform], r.Lemma)
		}
	}
	return p
}
