// Package token defines the tagged-variant token type the tokenizer,
// tagger, selector, aligner, and detokenizer all operate on.
//
// A Token is one of three kinds rather than a single struct with boolean
// flags describing every possible state at once: a Word carries the mutable
// pipeline state (tag, candidates, chosen macronized form) that only words
// ever need; a NonWord is an inert run of punctuation/whitespace; an
// EncliticSplit is the suffix the tokenizer peeled off a word. It holds no
// link to its prefix Word, which is the token right before it, and the
// detokenizer rejoins the two by writing them back to back.
package token

type token struct {
	kind Kind

	// Surface is the verbatim substring from the original input. For a Word
	// this is the form the lexicon/tagger/selector operate on; for a
	// NonWord it is emitted unchanged by the detokenizer.
	surface string

	isSentenceEnd bool
	isEnclitic    bool

	tag        string
	candidates []string // candidates[0] is the selector's chosen form
	macronized string

	hasMacronized bool
}

// Kind distinguishes the three token variants.
type Kind int

const (
	// KindWord is an ordinary word eligible for lexicon lookup, tagging,
	// selection, and alignment.
	KindWord Kind = iota
	// KindNonWord is whitespace/punctuation/digits passed through verbatim.
	KindNonWord
	// KindEnclitic is the suffix half of a word the tokenizer split off
	// (e.g. "-que"). It participates in tagging and selection like a Word,
	// but the detokenizer concatenates it directly onto its prefix sibling
	// rather than inserting a separator.
	KindEnclitic
)

// Token is a single element of a Tokenization.
type Token = *token

// NewWord constructs a Word token for the given surface run.
func NewWord(surface string) Token {
	return &token{kind: KindWord, surface: surface}
}

// NewNonWord constructs a NonWord token for the given surface run.
func NewNonWord(surface string) Token {
	return &token{kind: KindNonWord, surface: surface}
}

// NewEnclitic constructs an EncliticSplit token for the given suffix surface.
func NewEnclitic(surface string) Token {
	return &token{kind: KindEnclitic, surface: surface, isEnclitic: true}
}

func (t Token) Kind() Kind        { return t.kind }
func (t Token) Surface() string   { return t.surface }
func (t Token) IsWord() bool      { return t.kind == KindWord || t.kind == KindEnclitic }
func (t Token) IsEnclitic() bool  { return t.isEnclitic }

func (t Token) IsSentenceEnd() bool    { return t.isSentenceEnd }
func (t Token) SetSentenceEnd(v bool)  { t.isSentenceEnd = v }

func (t Token) Tag() string      { return t.tag }
func (t Token) SetTag(tag string) { t.tag = tag }

// Candidates returns the ranked accented-form candidates assigned by the
// selector; Candidates()[0] is the chosen form.
func (t Token) Candidates() []string { return t.candidates }

func (t Token) SetCandidates(c []string) { t.candidates = c }

// Macronized returns the final surface produced by the aligner. HasMacronized
// reports whether the aligner has run yet; before that, Detokenizer falls
// back to Surface.
func (t Token) Macronized() string   { return t.macronized }
func (t Token) HasMacronized() bool  { return t.hasMacronized }
func (t Token) SetMacronized(s string) {
	t.macronized = s
	t.hasMacronized = true
}

// Tokenization is an ordered sequence of tokens. Concatenating Surface()
// over every element reproduces the original input verbatim.
type Tokenization []Token

// Surface reconstructs the verbatim original text.
func (ts Tokenization) Surface() string {
	var out string
	for _, t := range ts {
		out += t.Surface()
	}
	return out
}

// Words returns every Word/EncliticSplit token in order.
func (ts Tokenization) Words() []Token {
	out := make([]Token, 0, len(ts))
	for _, t := range ts {
		if t.IsWord() {
			out = append(out, t)
		}
	}
	return out
}
