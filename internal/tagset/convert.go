package tagset

// From12 converts the 12-character positional tag emitted by the external
// morphological analyzer into the canonical 9-character form.
//
// No worked example of this conversion survives in any retrieved reference
// material, so the mapping below is a deliberate design choice rather than a
// port of anything. The analyzer's 12 columns are laid out as:
//
//	0 part of speech   1 person     2 number    3 tense   4 mood
//	5 voice            6 gender     7 case      8 degree
//	9 stem class       10 inflection class      11 secondary case
//
// Columns 0-8 line up one-to-one with the canonical columns and are copied
// verbatim. Columns 9 and 10 (stem/inflection class) are analyzer-internal
// bookkeeping with no canonical counterpart and are dropped. Column 11
// (secondary case, used by the analyzer to flag a locative/instrumental
// reading alongside the primary case) is folded into the canonical case
// column only when the canonical column is otherwise a dash; this lets a
// case-bearing secondary reading surface for indeclinable forms without ever
// overriding a case the analyzer already committed to in column 7.
func From12(t string) (Canonical, bool) {
	if len(t) != analyzerLen {
		return "", false
	}
	buf := [canonicalLen]byte{}
	copy(buf[:], t[:canonicalLen])
	if buf[7] == dash && t[11] != dash {
		buf[7] = t[11]
	}
	return Canonical(buf[:]), true
}
