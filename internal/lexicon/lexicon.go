// Package lexicon is the persistent morphological cache keyed by surface
// wordform: the single relational table described by the specification,
// backfilled on demand from the external morphological analyzer and seeded
// once from a static macrons.txt file.
//
// This generalizes the teacher's file-based loaders in loader.go (which
// parse whitespace/tab-delimited paradigm files into in-memory maps) into a
// database-backed store, since the expanded specification requires a
// persistent cache rather than an in-process table rebuilt on every run.
package lexicon

import (
	"database/sql"
	"strings"

	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
	"github.com/cours-de-latin/macronizer/internal/metrics"
)

// Analysis is one candidate reading of a wordform: a lemma, its
// morphological tag, and its accented form. An unknown analysis (the
// analyzer was consulted and found nothing) has all three fields empty; it
// is never merged into a non-empty result set for the same wordform.
type Analysis struct {
	Lemma    string
	Tag      string
	Accented string
}

// IsUnknown reports whether a is the "unknown wordform" marker.
func (a Analysis) IsUnknown() bool {
	return a.Lemma == "" && a.Tag == "" && a.Accented == ""
}

// Analyzer resolves wordforms this store has never seen before. It is
// invoked only for forms absent from the table.
type Analyzer interface {
	Analyze(wordforms []string) (map[string][]Analysis, error)
}

// Store is the persistent lexicon backed by a SQL database.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (creating if necessary) the lexicon table in db and returns a
// Store. db's driver is expected to be modernc.org/sqlite, but Store itself
// only depends on database/sql.
func Open(db *sql.DB, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Store{db: db, log: log}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS morpheus (
			wordform TEXT NOT NULL,
			morphtag TEXT,
			lemma    TEXT,
			accented TEXT
		)`); err != nil {
		return nil, macronizer.NewDatabaseError("create schema", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS morpheus_wordform_idx ON morpheus(wordform)`); err != nil {
		return nil, macronizer.NewDatabaseError("create index", err)
	}
	return s, nil
}

// Lookup returns every analysis on file for wordform (lowercased by the
// caller's convention — the store itself does no case folding). An empty,
// nil-error result means the form has never been looked up or backfilled.
func (s *Store) Lookup(wordform string) ([]Analysis, error) {
	rows, err := s.db.Query(
		`SELECT morphtag, lemma, accented FROM morpheus WHERE wordform = ?`, wordform)
	if err != nil {
		return nil, macronizer.NewDatabaseError("lookup", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var tag, lemma, accented sql.NullString
		if err := rows.Scan(&tag, &lemma, &accented); err != nil {
			return nil, macronizer.NewDatabaseError("scan", err)
		}
		out = append(out, Analysis{Lemma: lemma.String, Tag: tag.String, Accented: accented.String})
	}
	if err := rows.Err(); err != nil {
		return nil, macronizer.NewDatabaseError("iterate", err)
	}
	return out, nil
}

// LoadWords ensures every wordform in forms has at least one row in the
// table, analyzing any that are missing via analyzer and backfilling the
// result (or an unknown marker, if the analyzer found nothing).
func (s *Store) LoadWords(forms []string, analyzer Analyzer) error {
	missing, err := s.missing(forms)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	results, err := analyzer.Analyze(missing)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return macronizer.NewDatabaseError("begin backfill", err)
	}
	defer tx.Rollback()

	for _, form := range missing {
		analyses := results[form]
		if len(analyses) == 0 {
			if err := insertUnknown(tx, form); err != nil {
				return err
			}
			continue
		}
		for _, a := range analyses {
			if err := insertAnalysis(tx, form, a); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return macronizer.NewDatabaseError("commit backfill", err)
	}
	return nil
}

// missing returns the subset of forms with no row in the table yet.
func (s *Store) missing(forms []string) ([]string, error) {
	var out []string
	for _, f := range forms {
		var count int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM morpheus WHERE wordform = ?`, f).Scan(&count); err != nil {
			return nil, macronizer.NewDatabaseError("check presence", err)
		}
		if count == 0 {
			metrics.LexiconLookups.WithLabelValues("miss").Inc()
			out = append(out, f)
		} else {
			metrics.LexiconLookups.WithLabelValues("hit").Inc()
		}
	}
	return out, nil
}

func insertUnknown(tx *sql.Tx, form string) error {
	_, err := tx.Exec(`INSERT INTO morpheus (wordform, morphtag, lemma, accented) VALUES (?, NULL, NULL, NULL)`, form)
	if err != nil {
		return macronizer.NewDatabaseError("insert unknown", err)
	}
	return nil
}

func insertAnalysis(tx *sql.Tx, form string, a Analysis) error {
	_, err := tx.Exec(
		`INSERT INTO morpheus (wordform, morphtag, lemma, accented) VALUES (?, ?, ?, ?)`,
		form, a.Tag, a.Lemma, a.Accented)
	if err != nil {
		return macronizer.NewDatabaseError("insert analysis", err)
	}
	return nil
}

// ImportSeed loads a macrons.txt-format reader's rows into the table:
// tab-separated wordform, tag, lemma, accented. Re-importing the same file
// into an already-populated table is a caller error to avoid (it would
// duplicate rows); ImportSeed does not itself deduplicate.
func (s *Store) ImportSeed(lines []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return macronizer.NewDatabaseError("begin import", err)
	}
	defer tx.Rollback()

	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			continue
		}
		wordform := strings.ToLower(fields[0])
		if err := insertAnalysis(tx, wordform, Analysis{Tag: fields[1], Lemma: fields[2], Accented: fields[3]}); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return macronizer.NewDatabaseError("commit import", err)
	}
	return nil
}
