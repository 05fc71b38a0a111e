package dataprep

import (
	"regexp"
	"strconv"
	"strings"
)

// stem is one radical a headword supplies for a given stem index, against
// which its paradigm's endings of that same index are attached. Like
// ending, it drops the owning back-pointer the teacher's live-lookup
// Radical carried: generation only ever reaches a stem through the
// headword that holds it.
type stem struct {
	form string
}

// exception is an irregular inflected form that either supplements or
// (when exclusive) wholly replaces the regular paradigm's output for the
// cells it names.
type exception struct {
	form      string
	exclusive bool
	cells     []int
}

// Headword is one dictionary entry with everything needed to generate its
// full inflection table: a resolved paradigm, the stems that paradigm's
// rules run against, and any irregular exceptions that override cells of
// the regular output.
type Headword struct {
	Key          string // LookupKey of the entry's key field, homonym digit included ("ager1")
	Form         string // canonical classical-spelling citation form
	Bare         string
	paradigmName string
	paradigm     *paradigm
	Notes        string // raw descriptive field from the entry line
	POS          PartOfSpeech
	HomonymIndex int
	crossRef     string // "cf. xxx" cross-reference, when present

	altForms []string // additional citation-form spellings (comma list)

	stems      map[int][]stem
	exceptions []exception
	exclusive  []int // cells fully covered by an exclusive exception
	Frequency  int
}

var crossRefPattern = regexp.MustCompile(`cf\.\s+(\w+)$`)

// parseHeadwordLine parses one entry line: "key=form|paradigm|stem1|stem2|notes[|frequency]".
// The key= prefix is optional; when absent, form doubles as the key.
func parseHeadwordLine(line string) *Headword {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return nil
	}

	h := &Headword{
		stems: make(map[int][]stem),
	}

	keyForm := strings.SplitN(parts[0], "=", 2)
	rawKey := keyForm[0]
	h.Key = LookupKey(rawKey)

	rawForm := rawKey
	if len(keyForm) > 1 {
		rawForm = keyForm[1]
	}
	// The citation-form field may list comma-separated alternative
	// spellings (e.g. homonymous deponent/active pairs); only the first is
	// the primary Form, the rest feed stem derivation as alternates.
	forms := strings.Split(rawForm, ",")
	h.Form, h.HomonymIndex = trailingDigit(forms[0])
	if h.HomonymIndex == 0 {
		_, h.HomonymIndex = trailingDigit(rawKey)
	}
	h.Bare = Bare(h.Form)
	for _, alt := range forms[1:] {
		if alt = strings.TrimSpace(alt); alt != "" {
			h.altForms = append(h.altForms, alt)
		}
	}

	h.paradigmName = parts[1]

	for i := 2; i < 4 && i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		stemIndex := i - 1
		for _, raw := range strings.Split(parts[i], ",") {
			if raw == "" {
				continue
			}
			h.stems[stemIndex] = append(h.stems[stemIndex], stem{form: raw})
		}
	}

	h.Notes = parts[4]
	h.POS = classifyPOS(h.Notes)

	if len(parts) >= 6 && parts[5] != "" {
		h.Frequency, _ = strconv.Atoi(parts[5])
	}

	if m := crossRefPattern.FindStringSubmatch(h.Notes); m != nil {
		h.crossRef = m[1]
	}

	return h
}

// classifyPOS infers a headword's part of speech from its free-text notes
// field, for entries whose paradigm carries no pos of its own.
func classifyPOS(notes string) PartOfSpeech {
	switch {
	case strings.Contains(notes, "adj."):
		return POSAdjective
	case strings.Contains(notes, "conj"):
		return POSConjunction
	case strings.Contains(notes, "excl"):
		return POSExclamation
	case strings.Contains(notes, "interj"):
		return POSInterjection
	case strings.Contains(notes, "num."):
		return POSNumeral
	case strings.Contains(notes, "pron."):
		return POSPronoun
	case strings.Contains(notes, "prép"):
		return POSPreposition
	case strings.Contains(notes, "adv"):
		return POSAdverb
	case strings.Contains(notes, " nom ") || strings.Contains(notes, "npr."):
		return POSNoun
	default:
		return POSUnknown
	}
}

func (h *Headword) addException(e exception) {
	h.exceptions = append(h.exceptions, e)
	if e.exclusive {
		h.exclusive = append(h.exclusive, e.cells...)
	}
}

// exceptionAt returns the exception form covering cell, if any, and
// whether it is exclusive.
func (h *Headword) exceptionAt(cell int) (string, bool) {
	for _, e := range h.exceptions {
		for _, c := range e.cells {
			if c == cell {
				return e.form, e.exclusive
			}
		}
	}
	return "", false
}

// stemsAt returns the stems registered under the given stem index.
func (h *Headword) stemsAt(index int) []stem {
	return h.stems[index]
}

// stemFromCitation derives a stem string from a headword's citation form
// and a paradigm's stem rule: "K" keeps it as-is, "n" drops n trailing
// runes, "n,suffix" drops n trailing runes and appends suffix.
func stemFromCitation(form, rule string) string {
	form = strings.TrimSuffix(form, "̆")
	if rule == "K" {
		return form
	}
	parts := strings.SplitN(rule, ",", 2)
	drop, _ := strconv.Atoi(parts[0])
	runes := []rune(form)
	if drop > len(runes) {
		drop = len(runes)
	}
	stemForm := string(runes[:len(runes)-drop])
	if len(parts) > 1 && parts[1] != "0" {
		stemForm += parts[1]
	}
	return stemForm
}

// buildStems derives h's stems from its paradigm's stem rules for any
// index h's entry line did not already supply explicitly, running the
// rule against h's primary citation form and every alternate spelling.
func buildStems(h *Headword) {
	m := h.paradigm
	if m == nil {
		return
	}
	for index, rule := range m.stemRules {
		if _, explicit := h.stems[index]; explicit {
			continue
		}
		for _, form := range append([]string{h.Form}, h.altForms...) {
			h.stems[index] = append(h.stems[index], stem{form: stemFromCitation(form, rule)})
		}
	}
}
