package selector

import (
	"testing"

	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/priors"
)

func TestSelectExactTagMatch(t *testing.T) {
	s := New(endings.Table{}, priors.New())
	analyses := []lexicon.Analysis{
		{Lemma: "cano", Tag: "v1spia---", Accented: "cano_"},
		{Lemma: "canus", Tag: "n-s----a-", Accented: "ca_nus"},
	}
	got := s.Select("cano", "v1spia---", analyses)
	if got[0] != "cano_" {
		t.Errorf("Select = %v, want first element cano_", got)
	}
}

func TestSelectRanksByDistanceWhenNoExactMatch(t *testing.T) {
	s := New(endings.Table{}, priors.New())
	analyses := []lexicon.Analysis{
		{Lemma: "a", Tag: "v2spia---", Accented: "far"},  // distance 1
		{Lemma: "b", Tag: "v3ppia---", Accented: "near"}, // distance 2
	}
	got := s.Select("word", "v1spia---", analyses)
	if got[0] != "far" {
		t.Errorf("Select = %v, want closest-distance candidate first", got)
	}
}

func TestSelectTieBreakByWordLemmaFreq(t *testing.T) {
	p := priors.New()
	p.WordLemmaFreq[priors.WordLemma{Wordform: "cano", Lemma: "b"}] = 10
	p.WordLemmaFreq[priors.WordLemma{Wordform: "cano", Lemma: "a"}] = 1
	s := New(endings.Table{}, p)
	analyses := []lexicon.Analysis{
		{Lemma: "a", Tag: "v2spia---", Accented: "formA"},
		{Lemma: "b", Tag: "v2spia---", Accented: "formB"},
	}
	got := s.Select("cano", "v1spia---", analyses)
	if got[0] != "formB" {
		t.Errorf("Select = %v, want formB preferred by word_lemma_freq", got)
	}
}

func TestSelectTieBreakNeverCrossesDistanceBoundary(t *testing.T) {
	p := priors.New()
	p.WordLemmaFreq[priors.WordLemma{Wordform: "word", Lemma: "x"}] = 1
	p.WordLemmaFreq[priors.WordLemma{Wordform: "word", Lemma: "y"}] = 100
	s := New(endings.Table{}, p)
	analyses := []lexicon.Analysis{
		{Lemma: "x", Tag: "v2spia---", Accented: "closer"}, // distance 1, low word_lemma_freq
		{Lemma: "y", Tag: "v3ppia---", Accented: "farther"}, // distance 2, high word_lemma_freq
	}
	got := s.Select("word", "v1spia---", analyses)
	if got[0] != "closer" {
		t.Errorf("Select = %v, want closer (lower distance) ranked first despite losing every tie-break field", got)
	}
}

func TestSelectFallsBackToEndings(t *testing.T) {
	tbl := endings.Table{}
	tbl.Add("n-s----a-", "a_")
	s := New(tbl, priors.New())
	got := s.Select("porta", "n-s----a-", nil)
	if got[0] != "port"+"a_" {
		t.Errorf("Select = %v, want endings-table fallback", got)
	}
}

func TestSelectFallsBackToUnmodifiedWord(t *testing.T) {
	s := New(endings.Table{}, priors.New())
	got := s.Select("nihil", "x--------", nil)
	if len(got) != 1 || got[0] != "nihil" {
		t.Errorf("Select = %v, want unmodified word", got)
	}
}
