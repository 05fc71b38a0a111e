// Package tokenizer splits raw Latin text into a token.Tokenization: an
// ordered run of word and non-word spans, with sentence-boundary detection
// and enclitic splitting applied to word tokens.
//
// Word-run scanning is grounded on the teacher's reWord regular expression
// in lemmatize.go, generalized from a plain word scanner into a full
// word/non-word partition of the input so that non-word runs survive the
// round trip through Detokenize unchanged.
package tokenizer

import (
	"regexp"
	"strings"

	"github.com/cours-de-latin/macronizer/internal/token"
)

// reWord matches a maximal run of Latin letters, mirroring the teacher's
// lemmatize.go reWord pattern, extended per spec §4.1 so an apostrophe or
// hyphen flanked by letters on both sides stays inside the word token
// instead of splitting it at the punctuation mark (a leading/trailing
// apostrophe or hyphen, with no letter on one side, is never consumed and
// is left for the surrounding non-word run).
var reWord = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}]+(?:['-][a-zA-ZÀ-ÿ\x{0100}-\x{024F}]+)*`)

// sentenceEnders are the punctuation marks that close a sentence per the
// literal rule in the expanded specification: a word is sentence-final when
// one of these follows it, skipping over any intervening non-word run.
const sentenceEnders = ".?!"

// Encliticizer resolves whether splitting an enclitic off of a candidate
// word is warranted. The tokenizer asks it rather than deciding unilaterally
// because the decision depends on lexicon contents (spec §4.1: only split
// when the stripped prefix is itself known and the full form isn't already
// resolved by an enclitic-aware analysis).
type Encliticizer interface {
	// ShouldSplit reports whether word (lowercased) should be split into
	// (prefix, suffix) given the named enclitic suffix.
	ShouldSplit(word, suffix string) bool
}

// encliticSuffixes are checked longest-first so "que" is preferred over a
// spurious shorter match.
var encliticSuffixes = []string{"que", "ve", "ne"}

// Tokenize splits text into a Tokenization. If enc is nil, no enclitic
// splitting is attempted (useful for callers without a lexicon handy yet,
// such as the first pass that discovers which word forms to look up).
func Tokenize(text string, enc Encliticizer) token.Tokenization {
	idx := reWord.FindAllStringIndex(text, -1)
	var out token.Tokenization

	pos := 0
	for _, span := range idx {
		start, end := span[0], span[1]
		if start > pos {
			out = append(out, token.NewNonWord(text[pos:start]))
		}
		word := text[start:end]
		out = appendWord(out, word, enc)
		pos = end
	}
	if pos < len(text) {
		out = append(out, token.NewNonWord(text[pos:]))
	}

	markSentenceEnds(out)
	return out
}

// appendWord appends word to out, splitting off an enclitic suffix first
// when enc approves it.
func appendWord(out token.Tokenization, word string, enc Encliticizer) token.Tokenization {
	if enc != nil {
		lower := strings.ToLower(word)
		for _, suf := range encliticSuffixes {
			if !strings.HasSuffix(lower, suf) || len(lower) <= len(suf) {
				continue
			}
			prefix := word[:len(word)-len(suf)]
			if enc.ShouldSplit(lower, suf) {
				out = append(out, token.NewWord(prefix))
				out = append(out, token.NewEnclitic(word[len(word)-len(suf):]))
				return out
			}
		}
	}
	out = append(out, token.NewWord(word))
	return out
}

// markSentenceEnds sets IsSentenceEnd on every word token directly followed,
// across any intervening non-word run, by a sentence-terminating mark.
func markSentenceEnds(ts token.Tokenization) {
	for i, t := range ts {
		if !t.IsWord() {
			continue
		}
		for j := i + 1; j < len(ts); j++ {
			if ts[j].IsWord() {
				break
			}
			if strings.ContainsAny(ts[j].Surface(), sentenceEnders) {
				t.SetSentenceEnd(true)
				break
			}
		}
	}
}
