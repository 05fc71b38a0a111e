// Package align implements the character-level aligner (spec §4.6): it
// transfers macrons, and optionally consonantal u/j substitutions, from a
// chosen accented form onto the original surface word, preserving case and
// non-letter characters, and bails out to the unmodified surface whenever
// the two strings' letter skeletons disagree.
//
// Grounded on original_source/tests/macronizer_test.py's TestTokenMacronize
// suite: empty-accented-form no-crash, skeleton-mismatch bailout, i/j and
// u/v orthographic-variant matching, leading/trailing macron handling,
// multiple-trailing-macron collapse, domacronize=false still performing
// uv/ij substitution, and the also_maius short-j-prefix exception list.
package align

import (
	"strings"
	"unicode"

	"github.com/cours-de-latin/macronizer/internal/accent"
)

// Options controls which substitutions the aligner applies.
type Options struct {
	Macronize bool // add macron markers from the accented form (breve markers are not copied)
	FoldUV    bool // render surface u as v where the accented form has v
	FoldIJ    bool // render surface i as j where the accented form has j
	AlsoMaius bool // insert a macron before consonantal j per the exception list below
}

// shortJPrefixes is the closed set of short prefixes where also_maius must
// NOT insert a macron, since in these the vowel is genuinely short.
// applyAlsoMaius only looks an entry up when a vowel directly precedes the
// j, so "rej", "sej" and "quoj" take effect while "adj" and "perj" never
// match. Grounded on the one example surfacing in
// macronizer_test.py ("rej") and extended with the small set of common
// Latin prefixes with the same shape.
var shortJPrefixes = map[string]bool{
	"rej":  true,
	"sej":  true,
	"adj":  true,
	"perj": true,
	"quoj": true,
}

// Align transfers macrons/substitutions from accented onto surface according
// to opts. If the two strings' letter skeletons disagree under opts'
// folding rules, Align returns surface unchanged — this is not an error,
// since a lexicon can legitimately contain stale or mismatched candidates
// that the selector never fully vetted.
func Align(surface, accented string, opts Options) string {
	if accented == "" {
		return surface
	}
	if opts.AlsoMaius && opts.FoldIJ {
		accented = applyAlsoMaius(accented)
	}

	if !accent.SameSkeleton(surface, accented, opts.FoldUV, opts.FoldIJ) {
		return surface
	}

	sRunes := []rune(surface)
	aRunes := []rune(accented)

	var out strings.Builder
	ai := 0
	for si := 0; si < len(sRunes); si++ {
		sr := sRunes[si]
		if !unicode.IsLetter(sr) {
			out.WriteRune(sr)
			continue
		}
		// advance ai to the next letter in accented
		for ai < len(aRunes) && (!unicode.IsLetter(aRunes[ai]) && !accent.IsMarker(aRunes[ai])) {
			ai++
		}
		if ai >= len(aRunes) {
			out.WriteRune(sr)
			continue
		}
		ar := aRunes[ai]
		out.WriteRune(renderLetter(sr, ar, opts))
		ai++

		long, short := false, false
		for ai < len(aRunes) && accent.IsMarker(aRunes[ai]) {
			if opts.Macronize {
				if aRunes[ai] == '_' {
					long = true
				} else {
					short = true
				}
			}
			ai++
		}
		if long {
			out.WriteRune('_')
		} else if short && !long {
			// ambiguous ("_^") emits nothing per spec §4.6; a lone breve
			// likewise emits nothing since the surface form defaults to
			// short in the absence of a macron.
		}
	}

	// Trailing macrons: any markers left in accented past the last aligned
	// letter collapse to at most one appended '_'.
	if opts.Macronize {
		trailingLong := false
		for ; ai < len(aRunes); ai++ {
			if aRunes[ai] == '_' {
				trailingLong = true
			}
		}
		if trailingLong {
			out.WriteRune('_')
		}
	}

	return foldDoubleMacron(out.String())
}

// renderLetter emits the surface letter sr, preserving its case, but
// substituting u→v/U→V or i→j/I→J when the corresponding fold option is on
// and the accented letter ar is the consonantal variant.
func renderLetter(sr, ar rune, opts Options) rune {
	lowerAr := unicode.ToLower(ar)
	isUpper := unicode.IsUpper(sr)

	switch {
	case opts.FoldUV && unicode.ToLower(sr) == 'u' && lowerAr == 'v':
		if isUpper {
			return 'V'
		}
		return 'v'
	case opts.FoldIJ && unicode.ToLower(sr) == 'i' && lowerAr == 'j':
		if isUpper {
			return 'J'
		}
		return 'j'
	default:
		return sr
	}
}

// applyAlsoMaius rewrites every vowel immediately followed by consonantal
// j in accented to carry a macron, unless the preceding run through that
// vowel+j is one of the enumerated short-prefix exceptions.
func applyAlsoMaius(accented string) string {
	runes := []rune(accented)
	var out []rune
	for i := 0; i < len(runes); i++ {
		out = append(out, runes[i])
		if i+1 < len(runes) && accent.IsVowel(runes[i]) && unicode.ToLower(runes[i+1]) == 'j' {
			prefix := strings.ToLower(string(runes[:i+2]))
			if !shortJPrefixes[prefix] {
				out = append(out, '_')
			}
		}
	}
	return string(out)
}

// foldDoubleMacron collapses any run of consecutive '_' markers into one.
func foldDoubleMacron(s string) string {
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}
