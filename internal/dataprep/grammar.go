package dataprep

import (
	"strconv"
	"strings"
)

// ParseCellRange parses a morpho-cell range expression into the cell
// indices it denotes: a comma-separated list where each item is either a
// bare index or an inclusive "a-b" range.
func ParseCellRange(s string) []int {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, "-"); idx > 0 {
			start, _ := strconv.Atoi(part[:idx])
			end, _ := strconv.Atoi(part[idx+1:])
			for i := start; i <= end; i++ {
				result = append(result, i)
			}
		} else if n, err := strconv.Atoi(part); err == nil {
			result = append(result, n)
		}
	}
	return result
}

// ending is one inflectional suffix a paradigm attaches at a given cell to
// a stem of a given index. Generation only ever walks forward from a
// paradigm's Cells map to the endings it holds, so unlike the teacher's
// live-lookup Desinence it carries no cell index of its own (the map key
// already is the cell) and no back-pointer to its owning paradigm.
type ending struct {
	form      string
	stemIndex int
}

// paradigm is one named inflection pattern (e.g. "lupus", "amo"), built by
// parsing a block of a paradigm-grammar file and, where it names a parent,
// inheriting that parent's endings, stem rules, and missing cells.
type paradigm struct {
	name      string
	parent    *paradigm
	stemRules map[int]string // stem index -> "K" (as-is) or "n[,suffix]"
	missing   []int          // cell indices this paradigm does not inflect
	cells     map[int][]ending
	pos       rune
}

func newParadigm(name string) *paradigm {
	return &paradigm{
		name:      name,
		stemRules: make(map[int]string),
		cells:     make(map[int][]ending),
	}
}

func (p *paradigm) hasCell(cell int) bool {
	_, ok := p.cells[cell]
	return ok
}

func (p *paradigm) isMissing(cell int) bool {
	for _, c := range p.missing {
		if c == cell {
			return true
		}
	}
	return false
}

// descendsFrom reports whether p or any of its ancestors is named name.
func (p *paradigm) descendsFrom(name string) bool {
	if p.name == name {
		return true
	}
	if p.parent != nil {
		return p.parent.descendsFrom(name)
	}
	return false
}

// declensionAncestors and conjugationAncestors name the paradigm family
// roots a part-of-speech can be inferred from when a paradigm block carries
// no explicit "pos:" directive of its own.
var declensionAncestors = []string{"uita", "lupus", "miles", "manus", "res"}
var adjectiveAncestors = []string{"doctus", "fortis"}
var conjugationAncestors = []string{"amo", "imitor"}

// partOfSpeech returns p's grammatical category: its own "pos:" directive
// if it set one, else inferred from which paradigm family it descends from.
func (p *paradigm) partOfSpeech() PartOfSpeech {
	if p.pos != 0 {
		return PartOfSpeech(p.pos)
	}
	for _, name := range declensionAncestors {
		if p.descendsFrom(name) {
			return POSNoun
		}
	}
	for _, name := range adjectiveAncestors {
		if p.descendsFrom(name) {
			return POSAdjective
		}
	}
	for _, name := range conjugationAncestors {
		if p.descendsFrom(name) {
			return POSVerb
		}
	}
	return POSUnknown
}

// substituteVariables replaces every $name reference in line with its
// stored value, bailing out on an unknown variable to avoid looping.
func (e *Engine) substituteVariables(line string) string {
	for strings.Contains(line, "$") {
		d := strings.Index(line, "$")
		f := strings.Index(line[d:], ";")
		var name string
		if f < 0 {
			name = line[d:]
		} else {
			name = line[d : d+f]
		}
		val, ok := e.variables[name]
		if !ok {
			break
		}
		line = strings.Replace(line, name, val, 1)
	}
	return line
}

// extraEnding pairs a suf-directive-derived ending with the cell it
// belongs to, for the two-phase collect-then-apply pass parseParadigmBlock
// runs over "suf" directives: every directive's endings are computed
// against the cells as they stood before any suf directive ran, so two
// directives naming the same cell don't compound each other's output.
type extraEnding struct {
	cell int
	e    ending
}

// parseParadigmBlock builds a paradigm from one "modele:" block of lines.
func (e *Engine) parseParadigmBlock(lines []string) *paradigm {
	p := newParadigm("")

	type suffixEntry struct {
		suffix string
		cell   int
	}
	var suffixEntries []suffixEntry

	for _, raw := range lines {
		line := e.substituteVariables(raw)
		fields := strings.Split(strings.TrimSpace(line), ":")

		switch fields[0] {
		case "modele":
			if len(fields) > 1 {
				p.name = fields[1]
			}
		case "pere":
			if len(fields) > 1 {
				p.parent = e.paradigms[fields[1]]
			}
		case "des", "des+":
			if len(fields) < 4 {
				continue
			}
			cells := ParseCellRange(fields[1])
			stemIndex, _ := strconv.Atoi(fields[2])
			variants := strings.Split(fields[3], ";")

			for i, cellIdx := range cells {
				var variant string
				if i < len(variants) {
					variant = variants[i]
				} else if len(variants) > 0 {
					variant = variants[len(variants)-1]
				}
				for _, form := range strings.Split(variant, ",") {
					if form == "-" {
						form = ""
					}
					p.cells[cellIdx] = append(p.cells[cellIdx], ending{form: form, stemIndex: stemIndex})
				}
			}

			if fields[0] == "des+" && p.parent != nil {
				for _, cellIdx := range cells {
					p.cells[cellIdx] = append(p.cells[cellIdx], p.parent.cells[cellIdx]...)
				}
			}

		case "R":
			if len(fields) < 3 {
				continue
			}
			n, _ := strconv.Atoi(fields[1])
			p.stemRules[n] = fields[2]

		case "abs":
			if len(fields) > 1 {
				p.missing = ParseCellRange(fields[1])
			}

		case "abs+":
			if len(fields) > 1 {
				p.missing = append(p.missing, ParseCellRange(fields[1])...)
			}

		case "pos":
			if len(fields) > 1 && len(fields[1]) > 0 {
				p.pos = rune(fields[1][0])
			}

		case "suf":
			if len(fields) < 3 {
				continue
			}
			suf := fields[2]
			for _, cellIdx := range ParseCellRange(fields[1]) {
				suffixEntries = append(suffixEntries, suffixEntry{suf, cellIdx})
			}

		case "sufd":
			if p.parent == nil || len(fields) < 2 {
				continue
			}
			suf := fields[1]
			for cellIdx, parentEnds := range p.parent.cells {
				if p.isMissing(cellIdx) {
					continue
				}
				for _, parentEnd := range parentEnds {
					p.cells[cellIdx] = append(p.cells[cellIdx], ending{form: parentEnd.form + suf, stemIndex: parentEnd.stemIndex})
				}
			}
		}
	}

	if p.pos == 0 && p.parent != nil {
		p.pos = p.parent.pos
	}

	if p.parent != nil {
		for cellIdx, parentEnds := range p.parent.cells {
			if p.hasCell(cellIdx) || p.isMissing(cellIdx) {
				continue
			}
			p.cells[cellIdx] = append(p.cells[cellIdx], parentEnds...)
		}
		for _, ends := range p.cells {
			for _, end := range ends {
				if _, ok := p.stemRules[end.stemIndex]; !ok {
					if rule, ok := p.parent.stemRules[end.stemIndex]; ok {
						p.stemRules[end.stemIndex] = rule
					}
				}
			}
		}
		p.missing = p.parent.missing
	}

	var extras []extraEnding
	for _, se := range suffixEntries {
		for _, end := range p.cells[se.cell] {
			extras = append(extras, extraEnding{cell: se.cell, e: ending{form: end.form + se.suffix, stemIndex: end.stemIndex}})
		}
	}
	for _, ex := range extras {
		p.cells[ex.cell] = append(p.cells[ex.cell], ex.e)
	}

	if p.name == "" {
		return nil
	}
	return p
}
