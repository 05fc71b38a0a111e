// Package endings holds the static suffix table the candidate selector falls
// back to for words the lexicon has no analysis for: a tag's macronized
// suffixes, longest first, each the "relevant ending" for that tag derived
// offline from a macronized corpus (see internal/dataprep, which builds this
// table the same way the original data-prep pipeline's
// create_lexicon_and_endings_data derives rftagger-lexicon.txt's companion
// endings map from macrons.txt: keep a macronized suffix only when it is
// attested strictly more often than its bare spelling, a bare spelling never
// seen counting as one).
package endings

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Table maps a tag to its macronized suffix candidates, longest suffix
// first so Lookup finds the most specific match.
type Table map[string][]string

// Lookup returns the macronized form of word under tag's ending table: the
// first entry in Table[tag] (checked longest-first) that is a true suffix
// of word, with that suffix replaced by its macronized counterpart. ok is
// false when no ending is known for tag or none of its suffixes match word,
// in which case callers should leave word unmacronized.
func (t Table) Lookup(word, tag string) (accented string, ok bool) {
	suffixes, found := t[tag]
	if !found {
		return "", false
	}
	for _, suf := range suffixes {
		bare := bareOf(suf)
		if len(bare) == 0 || len(bare) > len(word) {
			continue
		}
		if strings.HasSuffix(word, bare) {
			return word[:len(word)-len(bare)] + suf, true
		}
	}
	return "", false
}

// bareOf strips the in-band quantity markers ('_', '^') from a macronized
// suffix to recover the plain-text suffix it is matched against.
func bareOf(accented string) string {
	var b strings.Builder
	for _, r := range accented {
		if r != '_' && r != '^' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Add inserts suffix into tag's list, keeping the longest-suffix-first
// invariant. Used by internal/dataprep when building the table; runtime
// lookups never mutate it.
func (t Table) Add(tag, suffix string) {
	list := t[tag]
	bare := bareOf(suffix)
	i := 0
	for i < len(list) && len(bareOf(list[i])) >= len(bare) {
		i++
	}
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = suffix
	t[tag] = list
}

// LoadFile reads an endings-table file (tab-separated "tag\tsuffix" lines,
// one per line, produced by internal/dataprep.DeriveEndings via WriteFile)
// from path. A missing file is not an error; it yields an empty Table, the
// same tolerance internal/config gives a missing config file.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Table), nil
		}
		return nil, err
	}
	defer f.Close()

	t := make(Table)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		t.Add(fields[0], fields[1])
	}
	return t, sc.Err()
}

// WriteFile writes t in the same tab-separated format LoadFile reads,
// longest suffix first within each tag as Table already orders them.
func (t Table) WriteFile(w io.Writer) error {
	for tag, suffixes := range t {
		for _, suf := range suffixes {
			if _, err := io.WriteString(w, tag+"\t"+suf+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
