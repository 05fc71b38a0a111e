package dataprep

import "strings"

// descriptionKeyword maps one French morphological-description keyword (as
// carried by morphos.fr) to the canonical tag column it fills in and the
// code it writes there. Columns follow internal/tagset.Canonical's layout
// (pos,person,number,tense,mood,voice,gender,case,degree), the same layout
// internal/morpheus's English-keyword feature table targets.
//
// Order matters: several keywords are substrings of a more specific one
// ("parfait" inside "plus-que-parfait", "futur" inside "futur antérieur"),
// so the more specific keyword must be tried first — TagFromDescription
// stops at the first column match and never overwrites it.
var descriptionKeywords = []struct {
	keyword string
	column  int
	code    byte
}{
	{"1ère personne", 1, '1'}, {"2e personne", 1, '2'}, {"3e personne", 1, '3'},
	{"singulier", 2, 's'}, {"pluriel", 2, 'p'},
	{"présent", 3, 'p'}, {"imparfait", 3, 'i'},
	{"futur antérieur", 3, 't'}, {"futur", 3, 'f'},
	{"plus-que-parfait", 3, 'l'}, {"parfait", 3, 'r'},
	{"indicatif", 4, 'i'}, {"subjonctif", 4, 's'}, {"impératif", 4, 'm'},
	{"infinitif", 4, 'n'}, {"participe", 4, 'p'}, {"gérondif", 4, 'd'},
	{"adjectif verbal", 4, 'g'}, {"supin", 4, 'u'},
	{"actif", 5, 'a'}, {"passif", 5, 'p'},
	{"masculin", 6, 'm'}, {"féminin", 6, 'f'}, {"neutre", 6, 'n'},
	{"nominatif", 7, 'n'}, {"vocatif", 7, 'v'}, {"génitif", 7, 'g'},
	{"datif", 7, 'd'}, {"accusatif", 7, 'a'}, {"ablatif", 7, 'b'}, {"locatif", 7, 'l'},
	{"comparatif", 8, 'c'}, {"superlatif", 8, 's'},
}

// TagFromDescription derives a 9-character canonical positional tag from a
// headword's part of speech and the French morphological description of
// one of its inflection cells. No worked grammar data file was available
// to ground this translation against a reference mapping, so it is a
// best-effort keyword match over the vocabulary morphos.fr is documented to
// use; see DESIGN.md for the decision this records.
func TagFromDescription(pos PartOfSpeech, description string) string {
	buf := [9]byte{}
	for i := range buf {
		buf[i] = '-'
	}
	buf[0] = byte(pos)

	desc := strings.ToLower(description)
	for _, kw := range descriptionKeywords {
		if buf[kw.column] != '-' {
			continue
		}
		if strings.Contains(desc, kw.keyword) {
			buf[kw.column] = kw.code
		}
	}
	return string(buf[:])
}
