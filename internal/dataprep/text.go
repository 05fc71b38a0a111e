package dataprep

import (
	"strings"
	"unicode"
)

// lengthMarks maps every precomposed long/short vowel letter (both cases)
// that paradigm data files use to the plain letter underneath, so Bare can
// strip them without separately tracking upper/lower tables.
var lengthMarks = strings.NewReplacer(
	"ā", "a", "ă", "a", "Ā", "A", "Ă", "A",
	"ē", "e", "ĕ", "e", "Ē", "E", "Ĕ", "E",
	"ī", "i", "ĭ", "i", "Ī", "I", "Ĭ", "I",
	"ō", "o", "ŏ", "o", "Ō", "O", "Ŏ", "O",
	"ū", "u", "ŭ", "u", "Ū", "U", "Ŭ", "U",
	"ȳ", "y", "Ȳ", "Y",
)

// Bare strips every vowel-quantity diacritic from s, including a trailing
// combining breve, leaving the plain letter sequence a wordform's surface
// spelling actually uses.
func Bare(s string) string {
	s = lengthMarks.Replace(s)
	return strings.ReplaceAll(s, "̆", "")
}

// classicalSpelling folds the Ramisist j/v letters back to the classical
// i/u paradigm data is keyed on, and expands the æ/œ ligatures.
var classicalSpelling = strings.NewReplacer(
	"J", "I", "j", "i", "V", "U", "v", "u",
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ụ", "u",
)

// Classical converts s to the classical i/u spelling paradigm keys use.
func Classical(s string) string {
	return classicalSpelling.Replace(s)
}

// LookupKey is the canonical map key for a headword: classical spelling
// with quantity marks stripped, so lookups are insensitive to both.
func LookupKey(s string) string {
	return Bare(Classical(s))
}

// trailingDigit splits a trailing homonym-disambiguation digit off g, per
// paradigm data's convention of numbering colliding headwords ("ager1",
// "ager2"). A trailing zero is not a homonym marker.
func trailingDigit(g string) (string, int) {
	if g == "" {
		return g, 0
	}
	runes := []rune(g)
	last := runes[len(runes)-1]
	if unicode.IsDigit(last) {
		n := int(last - '0')
		if n > 0 {
			return string(runes[:len(runes)-1]), n
		}
	}
	return g, 0
}
