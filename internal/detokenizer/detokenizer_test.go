package detokenizer

import (
	"testing"

	"github.com/cours-de-latin/macronizer/internal/token"
	"github.com/cours-de-latin/macronizer/internal/tokenizer"
)

func TestDetokenizeRoundTripWithoutMacronization(t *testing.T) {
	text := "Arma virumque cano, Troiae qui primus ab oris."
	ts := tokenizer.Tokenize(text, nil)
	if got := Detokenize(ts); got != text {
		t.Errorf("Detokenize = %q, want %q", got, text)
	}
}

func TestDetokenizeUsesMacronizedForm(t *testing.T) {
	ts := token.Tokenization{token.NewWord("cano")}
	ts[0].SetMacronized("cano_")
	if got := Detokenize(ts); got != "cano_" {
		t.Errorf("Detokenize = %q, want %q", got, "cano_")
	}
}

func TestDetokenizeMergesEncliticSplit(t *testing.T) {
	prefix := token.NewWord("arma")
	prefix.SetMacronized("arma_")
	suffix := token.NewEnclitic("que")
	suffix.SetMacronized("que")
	ts := token.Tokenization{prefix, suffix}
	if got := Detokenize(ts); got != "arma_que" {
		t.Errorf("Detokenize = %q, want %q", got, "arma_que")
	}
}
