package morpheus

import "testing"

func TestParseOutputBasic(t *testing.T) {
	out := "cano\n<NL>V cano,cano_ 1st sg pres ind act</NL>\n"
	result := parseOutput(out)
	analyses, ok := result["cano"]
	if !ok || len(analyses) != 1 {
		t.Fatalf("expected one analysis for cano, got %+v", result)
	}
	a := analyses[0]
	if a.Lemma != "cano" || a.Accented != "cano_" {
		t.Errorf("analysis = %+v", a)
	}
	if a.Tag[0] != 'v' || a.Tag[1] != '1' || a.Tag[2] != 's' {
		t.Errorf("tag = %q", a.Tag)
	}
}

func TestParseOutputSlashExpansion(t *testing.T) {
	out := "bonus\n<NL>N bonus,bonus_ sg nom masc/fem/neut</NL>\n"
	result := parseOutput(out)
	analyses := result["bonus"]
	if len(analyses) != 3 {
		t.Fatalf("expected 3 expanded analyses, got %d: %+v", len(analyses), analyses)
	}
	genders := map[byte]bool{}
	for _, a := range analyses {
		genders[a.Tag[6]] = true
	}
	for _, g := range []byte{'m', 'f', 'n'} {
		if !genders[g] {
			t.Errorf("missing expansion for gender %q", g)
		}
	}
}

func TestParseOutputEmptyWordformHasNoAnalyses(t *testing.T) {
	out := "nihilscitur\n"
	result := parseOutput(out)
	if analyses, ok := result["nihilscitur"]; !ok || len(analyses) != 0 {
		t.Errorf("expected a present-but-empty entry, got %+v (ok=%v)", analyses, ok)
	}
}

func TestParseOutputGerundiveSpawnsGerund(t *testing.T) {
	out := "amandi\n<NL>V amo,ama_nd gerundive sg neut gen</NL>\n"
	result := parseOutput(out)
	analyses := result["amandi"]
	var hasGerundive, hasGerund bool
	for _, a := range analyses {
		switch a.Tag[4] {
		case 'g':
			hasGerundive = true
		case 'd':
			hasGerund = true
		}
	}
	if !hasGerundive || !hasGerund {
		t.Errorf("expected both gerundive and spawned gerund parses, got %+v", analyses)
	}
}

func TestParseOutputParticipleMood(t *testing.T) {
	out := "amans\n<NL>Pamans amo,ama_ns sg nom masc</NL>\n"
	result := parseOutput(out)
	analyses := result["amans"]
	if len(analyses) != 1 || analyses[0].Tag[4] != 'p' {
		t.Errorf("expected mood=participle, got %+v", analyses)
	}
}
