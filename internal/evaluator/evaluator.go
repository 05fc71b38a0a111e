// Package evaluator compares a macronized output against a human-marked
// gold string and reports per-vowel accuracy plus an HTML diff fragment, as
// described by spec §8 scenario 6.
package evaluator

import (
	"strings"
	"unicode"

	"github.com/cours-de-latin/macronizer/internal/accent"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
)

// Result holds one evaluation outcome.
type Result struct {
	Accuracy float64
	HTML     string
}

// Evaluate compares gold (a glyph-form string with combining-diacritic
// macrons/breves) against output (the pipeline's own glyph-form result),
// returning the fraction of vowels whose quantity mark matches and an HTML
// fragment highlighting mismatches with a "wrong" CSS class.
//
// Evaluate requires gold and output to share a letter skeleton (case- and
// diacritic-insensitive); a mismatch there means the two strings are not
// macronizations of the same underlying word, which is a caller error, not
// a scoring outcome, so it is reported as an InvalidArgumentError rather
// than an accuracy of zero.
func Evaluate(gold, output string) (Result, error) {
	if !accent.SameSkeleton(stripDiacritics(gold), stripDiacritics(output), false, false) {
		return Result{}, macronizer.NewInvalidArgumentError("Text mismatch")
	}

	goldRunes := []rune(gold)
	outRunes := []rune(output)
	if len(goldRunes) != len(outRunes) {
		return Result{}, macronizer.NewInvalidArgumentError("Text mismatch")
	}

	var total, correct int
	var html strings.Builder
	for i, g := range goldRunes {
		o := outRunes[i]
		if !isVowelGlyph(g) {
			html.WriteRune(o)
			continue
		}
		total++
		if sameQuantity(g, o) {
			correct++
			html.WriteRune(o)
		} else {
			html.WriteString(`<span class="wrong">`)
			html.WriteRune(o)
			html.WriteString(`</span>`)
		}
	}

	acc := 1.0
	if total > 0 {
		acc = float64(correct) / float64(total)
	}
	return Result{Accuracy: acc, HTML: html.String()}, nil
}

// stripDiacritics removes combining/precomposed macron and breve marks,
// returning the plain letter sequence.
func stripDiacritics(s string) string {
	var b strings.Builder
	for _, r := range s {
		if plain, ok := baseLetter[r]; ok {
			b.WriteRune(plain)
			continue
		}
		if r == '̄' || r == '̆' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var baseLetter = map[rune]rune{
	'ā': 'a', 'ă': 'a', 'Ā': 'A', 'Ă': 'A',
	'ē': 'e', 'ĕ': 'e', 'Ē': 'E', 'Ĕ': 'E',
	'ī': 'i', 'ĭ': 'i', 'Ī': 'I', 'Ĭ': 'I',
	'ō': 'o', 'ŏ': 'o', 'Ō': 'O', 'Ŏ': 'O',
	'ū': 'u', 'ŭ': 'u', 'Ū': 'U', 'Ŭ': 'U',
	'ȳ': 'y', 'Ȳ': 'Y',
}

func isVowelGlyph(r rune) bool {
	if _, ok := baseLetter[r]; ok {
		return true
	}
	return accent.IsVowel(r) && unicode.IsLetter(r)
}

// sameQuantity reports whether two glyphs denote the same vowel quantity:
// both plain, both macron, or both breve. A plain vowel compared against a
// macron/breve vowel never matches.
func sameQuantity(a, b rune) bool {
	return quantityOf(a) == quantityOf(b)
}

type quantity int

const (
	qPlain quantity = iota
	qLong
	qShort
)

func quantityOf(r rune) quantity {
	switch r {
	case 'ā', 'ē', 'ī', 'ō', 'ū', 'ȳ', 'Ā', 'Ē', 'Ī', 'Ō', 'Ū', 'Ȳ':
		return qLong
	case 'ă', 'ĕ', 'ĭ', 'ŏ', 'ŭ', 'Ă', 'Ĕ', 'Ĭ', 'Ŏ', 'Ŭ':
		return qShort
	default:
		return qPlain
	}
}
