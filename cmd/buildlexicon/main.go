// Command buildlexicon turns a Collatinus-style grammar data directory
// (modeles.la, lemmes.la, irregs.la, morphos.fr) into the three offline
// artifacts cmd/macronize and cmd/server load at startup: a macrons.txt
// lexicon seed, an endings-table file, and a lemma-frequency summary
// logged to stderr (priors themselves are never persisted separately —
// both front ends derive them straight from macrons.txt via
// internal/priors.LoadMacronsFile, since internal/config.PathsConfig
// names no separate priors file).
//
// Staging mirrors original_source/extractlexicon.py's main(): generate
// lexicon rows, then derive the endings table, then derive lemma
// frequencies, logging a count at each stage.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cours-de-latin/macronizer/internal/dataprep"
)

func main() {
	dataDir := flag.String("data", "data/grammar", "directory containing modeles.la, lemmes.la, irregs.la, morphos.fr")
	macronsOut := flag.String("macrons-out", "macrons.txt", "path to write the macrons.txt lexicon seed")
	endingsOut := flag.String("endings-out", "endings.txt", "path to write the endings-table file")
	suffixLen := flag.Int("suffix-len", 4, "number of trailing letters kept per endings-table entry")
	flag.Parse()

	if err := run(*dataDir, *macronsOut, *endingsOut, *suffixLen); err != nil {
		fmt.Fprintln(os.Stderr, "buildlexicon:", err)
		os.Exit(1)
	}
}

func run(dataDir, macronsOut, endingsOut string, suffixLen int) error {
	engine, err := dataprep.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading grammar data from %s: %w", dataDir, err)
	}

	rows := engine.BuildLexicon()
	fmt.Fprintf(os.Stderr, "buildlexicon: generated %d lexicon rows from %d headwords\n", len(rows), len(engine.Headwords()))

	mf, err := os.Create(macronsOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", macronsOut, err)
	}
	defer mf.Close()
	if err := dataprep.WriteMacrons(mf, rows); err != nil {
		return fmt.Errorf("writing %s: %w", macronsOut, err)
	}

	table := dataprep.DeriveEndings(rows, suffixLen)
	fmt.Fprintf(os.Stderr, "buildlexicon: derived endings for %d tags\n", len(table))

	ef, err := os.Create(endingsOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", endingsOut, err)
	}
	defer ef.Close()
	if err := table.WriteFile(ef); err != nil {
		return fmt.Errorf("writing %s: %w", endingsOut, err)
	}

	priors := dataprep.DerivePriors(rows)
	fmt.Fprintf(os.Stderr, "buildlexicon: derived frequencies for %d lemmas (not persisted; cmd/macronize and cmd/server recompute them from %s at startup)\n", len(priors.LemmaFrequency), macronsOut)

	return nil
}
