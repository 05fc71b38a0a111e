// Command macronize is the CLI front end named in spec §6: reads Latin
// text from stdin (or a fixed self-test string under --test), writes its
// macronized form to stdout, and exits non-zero on any surfaced error.
package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"

	"github.com/cours-de-latin/macronizer/internal/accent"
	"github.com/cours-de-latin/macronizer/internal/config"
	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
	"github.com/cours-de-latin/macronizer/internal/morpheus"
	"github.com/cours-de-latin/macronizer/internal/priors"
	"github.com/cours-de-latin/macronizer/internal/tagger"
)

// selfTest is the fixed input --test substitutes for stdin, chosen to
// exercise a word the lexicon seed file is expected to carry a reading
// for: "cano" is end-to-end scenario 1 of spec §8.
const selfTest = "Arma virumque cano."

func main() {
	var configPath string
	var useSelfTest bool

	root := &cobra.Command{
		Use:   "macronize",
		Short: "Restore Latin vowel-length macrons to plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, useSelfTest, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().StringVar(&configPath, "config", "macronize.ini", "path to the INI configuration file")
	root.Flags().BoolVar(&useSelfTest, "test", false, "macronize a fixed self-test string instead of reading stdin")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "macronize:", err)
		os.Exit(1)
	}
}

func run(configPath string, useSelfTest bool, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", configPath, err)
	}

	log, err := logging.New(logging.Config(cfg.Log))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	m, err := build(cfg, log)
	if err != nil {
		return err
	}

	var input string
	if useSelfTest {
		input = selfTest
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(b)
	}

	output, err := m.Macronize(input)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if _, err := fmt.Fprintln(w, accent.ToGlyph(output)); err != nil {
		return err
	}
	return w.Flush()
}

// build wires a Macronizer from cfg: opens the persistent lexicon store
// (seeding it from MacronsFile on first run), loads the endings table,
// derives lemma priors straight from MacronsFile, and constructs the
// external analyzer and tagger adapters.
func build(cfg config.Config, log logging.Logger) (*macronizer.Macronizer, error) {
	firstRun := false
	if _, err := os.Stat(cfg.Paths.LexiconDB); os.IsNotExist(err) {
		firstRun = true
	}

	db, err := sql.Open("sqlite", cfg.Paths.LexiconDB)
	if err != nil {
		return nil, macronizer.NewDatabaseError("open", err)
	}

	store, err := lexicon.Open(db, log.Named("lexicon"))
	if err != nil {
		return nil, err
	}

	if firstRun {
		if err := seedLexicon(store, cfg.Paths.MacronsFile); err != nil {
			return nil, err
		}
	}

	endingsTable, err := endings.LoadFile(cfg.Paths.EndingsFile)
	if err != nil {
		return nil, fmt.Errorf("loading endings table %s: %w", cfg.Paths.EndingsFile, err)
	}

	p, err := priors.LoadMacronsFile(cfg.Paths.MacronsFile)
	if err != nil {
		return nil, fmt.Errorf("deriving priors from %s: %w", cfg.Paths.MacronsFile, err)
	}

	analyzer := morpheus.NewAdapter(cfg.Paths.MorpheusDir, log.Named("morpheus"))
	tag := tagger.NewAdapter(cfg.Paths.RftaggerDir, "rft-model", log.Named("tagger"))

	opts := macronizer.Options{FoldUV: true, FoldIJ: true, AlsoMaius: true}
	return macronizer.New(store, analyzer, tag, endingsTable, p, opts, log.Named("macronizer")), nil
}

func seedLexicon(store *lexicon.Store, macronsFile string) error {
	f, err := os.Open(macronsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening macrons seed %s: %w", macronsFile, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading macrons seed %s: %w", macronsFile, err)
	}
	return store.ImportSeed(lines)
}
