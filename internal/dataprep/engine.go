package dataprep

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Engine holds every paradigm and headword parsed from a grammar data
// directory, ready for BuildLexicon to walk. It is the generation-only
// counterpart of the teacher's live Lemmatizer: it never answers a
// surface-form query, so it carries none of that engine's reverse-lookup
// indices (desinence/radical-by-surface maps) or assimilation tables —
// those exist only to recognize inflected forms found in running text,
// which is exactly what this package does not do.
type Engine struct {
	// descriptions holds the 1-based morphological-description strings a
	// paradigm grammar's cell numbers index into. Index 0 is unused.
	descriptions []string

	paradigms map[string]*paradigm
	headwords map[string]*Headword
	variables map[string]string
}

// Load reads a grammar data directory and returns a ready-to-walk Engine.
// dataDir is expected to contain "morphos.fr" (or "morphos.la"),
// "modeles.la", "lemmes.la", and optionally "irregs.la", matching the
// paradigm-grammar file layout this engine is grounded on.
func Load(dataDir string) (*Engine, error) {
	e := &Engine{
		descriptions: []string{""},
		paradigms:    make(map[string]*paradigm),
		headwords:    make(map[string]*Headword),
		variables:    make(map[string]string),
	}

	if err := e.loadDescriptions(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadParadigms(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadHeadwords(dataDir); err != nil {
		return nil, err
	}
	if err := e.loadExceptions(dataDir); err != nil {
		return nil, err
	}
	return e, nil
}

// Description returns the morphological-description string for 1-based
// cell index n, or "" if n is out of range.
func (e *Engine) Description(n int) string {
	if n < 1 || n >= len(e.descriptions) {
		return ""
	}
	return e.descriptions[n]
}

// Headwords returns every loaded headword, keyed by its lookup key.
func (e *Engine) Headwords() map[string]*Headword {
	return e.headwords
}

// loadDescriptions reads dataDir's morphos.fr (falling back to morphos.la)
// into e.descriptions, 1-based, stopping at the "! --- " footer separator.
func (e *Engine) loadDescriptions(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "morphos.fr"))
	if err != nil {
		f2, err2 := os.Open(filepath.Join(dataDir, "morphos.la"))
		if err2 != nil {
			return fmt.Errorf("open morphos.fr: %w", err)
		}
		f = f2
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "! --- ") {
			break
		}
		if strings.HasPrefix(line, "!") {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		e.descriptions = append(e.descriptions, line[idx+1:])
	}
	return sc.Err()
}

// loadParadigms reads dataDir's modeles.la into e.paradigms.
func (e *Engine) loadParadigms(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "modeles.la"))
	if err != nil {
		return fmt.Errorf("open modeles.la: %w", err)
	}
	defer f.Close()

	var block []string
	sc := bufio.NewScanner(f)
	atEOF := false

	flush := func() {
		if len(block) == 0 {
			return
		}
		if p := e.parseParadigmBlock(block); p != nil {
			e.paradigms[p.name] = p
		}
		block = block[:0]
	}

	for !atEOF {
		var line string
		if sc.Scan() {
			line = strings.TrimSpace(sc.Text())
		} else {
			atEOF = true
		}

		if line == "" && !atEOF {
			continue
		}
		if strings.HasPrefix(line, "!") {
			continue
		}

		if strings.HasPrefix(line, "$") {
			if idx := strings.Index(line, "="); idx > 0 {
				e.variables[line[:idx]] = line[idx+1:]
			}
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if (parts[0] == "modele" || atEOF) && len(block) > 0 {
			flush()
		}

		if !atEOF {
			block = append(block, line)
		}
	}
	return sc.Err()
}

// loadHeadwords reads dataDir's lemmes.la into e.headwords, resolving each
// entry's paradigm and deriving its stems.
func (e *Engine) loadHeadwords(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "lemmes.la"))
	if err != nil {
		return fmt.Errorf("open lemmes.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		h := parseHeadwordLine(line)
		if h == nil {
			continue
		}

		h.paradigm = e.paradigms[h.paradigmName]
		if h.paradigm != nil && h.POS == POSUnknown {
			h.POS = h.paradigm.partOfSpeech()
		}

		e.headwords[h.Key] = h
		buildStems(h)
	}
	return sc.Err()
}

// loadExceptions reads dataDir's irregs.la into each named headword's
// exception list, when the file is present (it is optional).
func (e *Engine) loadExceptions(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "irregs.la"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open irregs.la: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) < 3 {
			continue
		}

		form := parts[0]
		exclusive := strings.HasSuffix(form, "*")
		if exclusive {
			form = form[:len(form)-1]
		}

		h := e.headwords[LookupKey(parts[1])]
		if h == nil {
			continue
		}

		h.addException(exception{
			form:      form,
			exclusive: exclusive,
			cells:     ParseCellRange(parts[2]),
		})
	}
	return sc.Err()
}
