package tokenizer

import "testing"

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"Gallia est omnis divisa in partes tres.",
		"  multiple   spaces, and; punctuation!! ",
		"",
		"SingleWord",
	}
	for _, in := range inputs {
		ts := Tokenize(in, nil)
		if got := ts.Surface(); got != in {
			t.Errorf("round trip failed: Tokenize(%q).Surface() = %q", in, got)
		}
	}
}

func TestSentenceEndDetection(t *testing.T) {
	ts := Tokenize("Arma virumque cano. Troiae qui primus.", nil)
	words := ts.Words()
	if len(words) == 0 {
		t.Fatal("expected words")
	}
	var endWords []string
	for _, w := range words {
		if w.IsSentenceEnd() {
			endWords = append(endWords, w.Surface())
		}
	}
	if len(endWords) != 2 || endWords[0] != "cano" || endWords[1] != "primus" {
		t.Errorf("sentence-end words = %v, want [cano primus]", endWords)
	}
}

func TestWordKeepsInternalApostropheAndHyphen(t *testing.T) {
	ts := Tokenize("qu'est-ce tribus-que", nil)
	words := ts.Words()
	if len(words) != 2 {
		t.Fatalf("expected 2 word tokens, got %d: %v", len(words), words)
	}
	if words[0].Surface() != "qu'est-ce" {
		t.Errorf("word[0] = %q, want qu'est-ce (internal apostrophe/hyphen kept)", words[0].Surface())
	}
	if words[1].Surface() != "tribus-que" {
		t.Errorf("word[1] = %q, want tribus-que", words[1].Surface())
	}
	if got := ts.Surface(); got != "qu'est-ce tribus-que" {
		t.Errorf("round trip broken: %q", got)
	}
}

func TestWordDoesNotConsumeTrailingApostrophe(t *testing.T) {
	ts := Tokenize("arma'", nil)
	words := ts.Words()
	if len(words) != 1 || words[0].Surface() != "arma" {
		t.Fatalf("words = %v, want single token arma (trailing apostrophe left outside)", words)
	}
	if got := ts.Surface(); got != "arma'" {
		t.Errorf("round trip broken: %q", got)
	}
}

type alwaysSplit struct{}

func (alwaysSplit) ShouldSplit(word, suffix string) bool { return true }

func TestEncliticSplit(t *testing.T) {
	ts := Tokenize("armaque", alwaysSplit{})
	words := ts.Words()
	if len(words) != 2 {
		t.Fatalf("expected 2 word tokens after split, got %d", len(words))
	}
	if words[0].Surface() != "arma" || words[1].Surface() != "que" {
		t.Errorf("split = %q/%q, want arma/que", words[0].Surface(), words[1].Surface())
	}
	if !words[1].IsEnclitic() {
		t.Error("suffix token should be marked enclitic")
	}
	if got := ts.Surface(); got != "armaque" {
		t.Errorf("round trip broken after split: %q", got)
	}
}

type neverSplit struct{}

func (neverSplit) ShouldSplit(word, suffix string) bool { return false }

func TestEncliticNoSplitWhenDisallowed(t *testing.T) {
	ts := Tokenize("denique", neverSplit{})
	words := ts.Words()
	if len(words) != 1 {
		t.Fatalf("expected no split, got %d word tokens", len(words))
	}
}
