// Package detokenizer reassembles a token.Tokenization back into a single
// string, emitting each word's macronized form (falling back to its raw
// surface if the pipeline never macronized it) and merging enclitic splits
// back onto their prefix with no intervening separator.
package detokenizer

import (
	"strings"

	"github.com/cours-de-latin/macronizer/internal/token"
)

// Detokenize concatenates every token's output form in order. Because
// enclitic suffix tokens carry no separator of their own (the tokenizer
// only ever split them out of a single word run), this naturally merges
// them back onto their preceding word.
func Detokenize(ts token.Tokenization) string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(outputOf(t))
	}
	return b.String()
}

func outputOf(t token.Token) string {
	if t.IsWord() {
		if t.HasMacronized() {
			return t.Macronized()
		}
		return t.Surface()
	}
	return t.Surface()
}
