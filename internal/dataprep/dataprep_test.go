package dataprep

import "testing"

func TestParseCellRange(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"1-6", []int{1, 2, 3, 4, 5, 6}},
		{"1,3,5", []int{1, 3, 5}},
		{"1-3,5,7-9", []int{1, 2, 3, 5, 7, 8, 9}},
		{"10", []int{10}},
	}
	for _, c := range cases {
		got := ParseCellRange(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("ParseCellRange(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ParseCellRange(%q)[%d] = %d, want %d", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestTagFromDescription(t *testing.T) {
	cases := []struct {
		pos  PartOfSpeech
		desc string
		want string
	}{
		// nominatif -> case col7='n'; singulier -> number col2='s'
		{POSNoun, "nominatif singulier", "n-s----n-"},
		// actif -> voice col5='a'; indicatif -> mood col4='i'; présent -> tense col3='p';
		// 3e personne -> person col1='3'; pluriel -> number col2='p'
		{POSVerb, "actif indicatif présent 3e personne du pluriel", "v3ppia---"},
		// indicatif -> mood col4='i'; plus-que-parfait -> tense col3='l';
		// 1ère personne -> person col1='1'; singulier -> number col2='s'; actif -> voice col5='a'
		{POSVerb, "indicatif plus-que-parfait 1ère personne du singulier actif", "v1slia---"},
	}
	for _, c := range cases {
		got := TagFromDescription(c.pos, c.desc)
		if got != c.want {
			t.Errorf("TagFromDescription(%c, %q) = %q, want %q", c.pos, c.desc, got, c.want)
		}
	}
}

func TestTagFromDescriptionPrefersLongerTenseKeyword(t *testing.T) {
	got := TagFromDescription(POSVerb, "indicatif futur antérieur actif")
	if got[3] != 't' {
		t.Errorf("tense column = %q, want 't' (futur antérieur, not futur)", got[3])
	}
}

func TestParseHeadwordLine(t *testing.T) {
	h := parseHeadwordLine("lupus|lupus|lup|-|nom|100")
	if h == nil {
		t.Fatal("parseHeadwordLine returned nil")
	}
	if h.Form != "lupus" || h.Key != "lupus" {
		t.Errorf("Form/Key = %q/%q, want lupus/lupus", h.Form, h.Key)
	}
	if h.Frequency != 100 {
		t.Errorf("Frequency = %d, want 100", h.Frequency)
	}
	if got := h.stemsAt(1); len(got) != 1 || got[0].form != "lup" {
		t.Errorf("stemsAt(1) = %v, want [lup]", got)
	}
}

func TestParseHeadwordLineHomonym(t *testing.T) {
	h := parseHeadwordLine("ager1=ager|lupus|ager|-|nom")
	if h == nil {
		t.Fatal("parseHeadwordLine returned nil")
	}
	if h.HomonymIndex != 1 {
		t.Errorf("HomonymIndex = %d, want 1", h.HomonymIndex)
	}
	if h.Key != "ager1" {
		t.Errorf("Key = %q, want ager1", h.Key)
	}
}

// buildLupusEngine constructs, without reading any file, a minimal Engine
// whose single headword "lupus" inflects under a two-cell toy paradigm:
// cell 1 (nominative singular) and cell 2 (genitive singular).
func buildLupusEngine() *Engine {
	p := newParadigm("lupus")
	p.cells[1] = []ending{{form: "us", stemIndex: 1}}
	p.cells[2] = []ending{{form: "ī", stemIndex: 1}}

	h := &Headword{
		Key: "lup", Form: "lupus", Bare: "lupus",
		paradigm: p, POS: POSNoun,
		stems: map[int][]stem{},
	}
	h.stems[1] = []stem{{form: "lup"}}

	return &Engine{
		descriptions: []string{"", "nominatif singulier", "génitif singulier"},
		paradigms:    map[string]*paradigm{"lupus": p},
		headwords:    map[string]*Headword{"lup": h},
		variables:    map[string]string{},
	}
}

func TestBuildLexicon(t *testing.T) {
	e := buildLupusEngine()
	rows := e.BuildLexicon()
	if len(rows) != 2 {
		t.Fatalf("BuildLexicon returned %d rows, want 2", len(rows))
	}
	byTag := map[string]Row{}
	for _, r := range rows {
		byTag[r.Tag] = r
	}
	nom, ok := byTag["n-s----n-"]
	if !ok || nom.Wordform != "lupus" || nom.Lemma != "lupus" {
		t.Errorf("nominative row = %+v", nom)
	}
	gen, ok := byTag["n-s----g-"]
	if !ok || gen.Wordform != "lupi" {
		t.Errorf("genitive row = %+v", gen)
	}
}

func TestExclusiveExceptionOverridesRegularForms(t *testing.T) {
	e := buildLupusEngine()
	h := e.headwords["lup"]
	h.addException(exception{form: "lupo", exclusive: true, cells: []int{2}})

	table := e.inflectionTable(h)
	if got := table[2]; len(got) != 1 || got[0] != "lupo" {
		t.Errorf("cell 2 = %v, want [lupo]", got)
	}
}

func TestDeriveEndingsKeepsAccentedSuffixWhenAttestedOverBare(t *testing.T) {
	rows := []Row{
		{Wordform: "lupus", Tag: "n--------", Lemma: "lupus", Accented: "lupu^s"},
		{Wordform: "lupus", Tag: "n--------", Lemma: "lupus", Accented: "lupu^s"},
	}
	table := DeriveEndings(rows, 2)
	acc, ok := table.Lookup("lupus", "n--------")
	if !ok || acc != "lupu^s" {
		t.Errorf("Lookup = %q, %v, want lupu^s, true", acc, ok)
	}
}

func TestDeriveEndingsDropsSuffixNotAttestedOverBareForm(t *testing.T) {
	rows := []Row{
		// The marked suffix "u^s" is attested once; the bare spelling "us"
		// (no quantity marker) is attested twice for the same tag, so per
		// the frequency rule the marked variant loses and nothing is kept.
		{Wordform: "lupus", Tag: "n--------", Lemma: "lupus", Accented: "lupu^s"},
		{Wordform: "rosus", Tag: "n--------", Lemma: "rosus", Accented: "rosus"},
		{Wordform: "malus", Tag: "n--------", Lemma: "malus", Accented: "malus"},
	}
	table := DeriveEndings(rows, 2)
	if _, ok := table.Lookup("lupus", "n--------"); ok {
		t.Error("Lookup found a suffix that should have lost to its more-frequent bare form")
	}
}

func TestDerivePriorsCountsFrequencyAndAttestation(t *testing.T) {
	rows := []Row{
		{Wordform: "amat", Tag: "v3s-ia---", Lemma: "amo"},
		{Wordform: "amat", Tag: "v3s-ia---", Lemma: "amo"},
		{Wordform: "amat", Tag: "v3s-ia---", Lemma: "ameo"},
	}
	p := DerivePriors(rows)
	if p.LemmaFrequency["amo"] != 2 {
		t.Errorf("LemmaFrequency[amo] = %d, want 2", p.LemmaFrequency["amo"])
	}
	if pos := p.LemmaPosition("amat", "ameo"); pos != 1 {
		t.Errorf("LemmaPosition(amat, ameo) = %d, want 1", pos)
	}
}
