// Package morpheus adapts the external morphological analyzer ("Morpheus",
// invoked via its cruncher binary) into the lexicon.Analyzer contract: write
// candidate wordforms to a temp file, invoke the binary with MORPHLIB set,
// read its output back, and parse the <NL>...</NL> analysis grammar into
// lexicon.Analysis values.
//
// Grounded on original_source/tests/macronizer_test.py's Wordlist.crunchwords
// (subprocess/tempfile contract, MORPHLIB env var, missing-binary and
// empty-output handling) and tests/postags_test.py's morpheus_to_parses
// (output-grammar parsing: slash expansion, participle/gerundive/genderless
// special cases).
package morpheus

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
	"github.com/cours-de-latin/macronizer/internal/metrics"
)

const toolName = "cruncher"

// Adapter invokes the external Morpheus analyzer.
type Adapter struct {
	// BinaryPath is the path to the cruncher binary, typically
	// <morpheus_dir>/bin/cruncher.
	BinaryPath string
	// StemLib is the value assigned to the MORPHLIB environment variable,
	// typically <morpheus_dir>/stemlib.
	StemLib string
	Timeout time.Duration
	Log     logging.Logger
}

// NewAdapter constructs an Adapter rooted at morpheusDir, matching the
// conventional layout <morpheusDir>/bin/cruncher and <morpheusDir>/stemlib.
func NewAdapter(morpheusDir string, log logging.Logger) *Adapter {
	if log == nil {
		log = logging.NewNop()
	}
	return &Adapter{
		BinaryPath: filepath.Join(morpheusDir, "bin", "cruncher"),
		StemLib:    filepath.Join(morpheusDir, "stemlib"),
		Timeout:    30 * time.Second,
		Log:        log,
	}
}

// Analyze implements lexicon.Analyzer.
func (a *Adapter) Analyze(wordforms []string) (map[string][]lexicon.Analysis, error) {
	start := time.Now()
	out, err := a.run(wordforms)
	metrics.AdapterDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AdapterFailures.WithLabelValues(toolName).Inc()
		return nil, err
	}
	return parseOutput(out), nil
}

func (a *Adapter) run(wordforms []string) (string, error) {
	in, err := os.CreateTemp("", "morpheus-in-*.txt")
	if err != nil {
		return "", macronizer.NewDatabaseError("create temp input", err)
	}
	defer os.Remove(in.Name())
	for _, w := range wordforms {
		fmt.Fprintln(in, w)
	}
	if err := in.Close(); err != nil {
		return "", err
	}

	out, err := os.CreateTemp("", "morpheus-out-*.txt")
	if err != nil {
		return "", macronizer.NewDatabaseError("create temp output", err)
	}
	out.Close()
	defer os.Remove(out.Name())

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.BinaryPath, "-L", "-d")
	cmd.Env = append(os.Environ(), "MORPHLIB="+a.StemLib)
	infile, err := os.Open(in.Name())
	if err != nil {
		return "", err
	}
	defer infile.Close()
	cmd.Stdin = infile

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	a.Log.Debug("invoking morpheus", logging.String("binary", a.BinaryPath), logging.Int("words", len(wordforms)))

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", macronizer.NewExternalDependencyError(toolName, "timed out", stderr.String(), ctx.Err())
	}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return "", macronizer.NewExternalDependencyError(toolName, fmt.Sprintf("exit %d", exitErr.ExitCode()), stderr.String(), runErr)
		}
		return "", macronizer.NewExternalDependencyError(toolName, "cruncher not found", stderr.String(), runErr)
	}
	return stdout.String(), nil
}

// feature → canonical-tag-column mapping. Columns follow
// internal/tagset.Canonical's layout: pos,person,number,tense,mood,voice,
// gender,case,degree.
var featureColumn = map[string]int{
	"1st": 1, "2nd": 1, "3rd": 1,
	"sg": 2, "pl": 2,
	"pres": 3, "impf": 3, "fut": 3, "perf": 3, "plup": 3, "futp": 3,
	"ind": 4, "subj": 4, "imperat": 4, "inf": 4, "part": 4, "gerundive": 4, "gerund": 4, "supine": 4,
	"act": 5, "pass": 5,
	"masc": 6, "fem": 6, "neut": 6,
	"nom": 7, "voc": 7, "gen": 7, "dat": 7, "acc": 7, "abl": 7, "loc": 7,
	"pos": 8, "comp": 8, "superl": 8,
}

var featureCode = map[string]byte{
	"1st": '1', "2nd": '2', "3rd": '3',
	"sg": 's', "pl": 'p',
	"pres": 'p', "impf": 'i', "fut": 'f', "perf": 'r', "plup": 'l', "futp": 't',
	"ind": 'i', "subj": 's', "imperat": 'm', "inf": 'n', "part": 'p', "gerundive": 'g', "gerund": 'd', "supine": 'u',
	"act": 'a', "pass": 'p',
	"masc": 'm', "fem": 'f', "neut": 'n',
	"nom": 'n', "voc": 'v', "gen": 'g', "dat": 'd', "acc": 'a', "abl": 'b', "loc": 'l',
	"pos": '-', "comp": 'c', "superl": 's',
}

// parseOutput parses cruncher's <NL>...</NL> grammar into per-wordform
// analysis lists. Each block begins with the bare wordform on its own line,
// followed by zero or more <NL>...</NL> analysis lines before the next
// wordform line.
func parseOutput(out string) map[string][]lexicon.Analysis {
	result := make(map[string][]lexicon.Analysis)
	scanner := bufio.NewScanner(strings.NewReader(out))
	var current string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "<NL>") {
			current = strings.ToLower(line)
			if _, ok := result[current]; !ok {
				result[current] = nil
			}
			continue
		}
		if current == "" {
			continue
		}
		body := strings.TrimSuffix(strings.TrimPrefix(line, "<NL>"), "</NL>")
		result[current] = append(result[current], parseAnalysisLine(body)...)
	}
	return result
}

// parseAnalysisLine parses one analysis body: "POS lemma,accented feat1 feat2 ...".
// Slash-separated feature alternatives expand into the cartesian product of
// all such features simultaneously.
func parseAnalysisLine(body string) []lexicon.Analysis {
	fields := strings.Fields(body)
	if len(fields) < 2 {
		return nil
	}
	pos := fields[0]
	lemmaAccented := strings.SplitN(fields[1], ",", 2)
	if len(lemmaAccented) != 2 {
		return nil
	}
	lemma, accented := lemmaAccented[0], lemmaAccented[1]
	features := fields[2:]

	tags := []string{baseTag(pos)}
	for _, feat := range features {
		alts := strings.Split(feat, "/")
		tags = expandFeature(tags, alts)
	}

	// 'P'-prefixed categories (participles) force mood=participle unless a
	// more specific mood feature already claimed that column.
	if strings.HasPrefix(pos, "P") {
		tags = setIfDash(tags, 4, 'p')
	}

	tags = applyGerundiveRule(tags)
	tags = applyGenderlessCaseRule(tags)

	out := make([]lexicon.Analysis, 0, len(tags))
	for _, t := range tags {
		out = append(out, lexicon.Analysis{Lemma: lemma, Tag: t, Accented: accented})
	}
	return out
}

func baseTag(pos string) string {
	buf := [9]byte{}
	for i := range buf {
		buf[i] = '-'
	}
	p := strings.ToLower(pos)
	if len(p) > 0 {
		buf[0] = p[0]
	}
	return string(buf[:])
}

// expandFeature applies one analyzer feature (possibly slash-alternated) to
// every tag in tags, expanding into the cartesian product. A feature whose
// code is unrecognized is silently ignored, matching the analyzer's
// tolerance of unmapped codes.
func expandFeature(tags []string, alts []string) []string {
	var out []string
	for _, tag := range tags {
		matched := false
		for _, alt := range alts {
			col, hasCol := featureColumn[alt]
			code, hasCode := featureCode[alt]
			if !hasCol || !hasCode {
				continue
			}
			matched = true
			out = append(out, setColumn(tag, col, code))
		}
		if !matched {
			out = append(out, tag)
		}
	}
	return out
}

func setColumn(tag string, col int, code byte) string {
	if col < 0 || col >= len(tag) {
		return tag
	}
	b := []byte(tag)
	// First-feature-wins: a column already set to something other than a
	// dash is never overwritten by a later feature.
	if b[col] != '-' {
		return tag
	}
	b[col] = code
	return string(b)
}

func setIfDash(tags []string, col int, code byte) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = setColumn(t, col, code)
	}
	return out
}

// applyGerundiveRule adds an alternative gerund parse for every gerundive
// analysis that is neuter, singular, and not nominative.
func applyGerundiveRule(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t)
		if len(t) < 9 {
			continue
		}
		if t[4] == 'g' && t[6] == 'n' && t[2] == 's' && t[7] != 'n' {
			gerund := []byte(t)
			gerund[4] = 'd'
			out = append(out, string(gerund))
		}
	}
	return out
}

// applyGenderlessCaseRule expands any parse that carries a case but no
// gender into three parses, one per gender.
func applyGenderlessCaseRule(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if len(t) < 9 || t[7] == '-' || t[6] != '-' {
			out = append(out, t)
			continue
		}
		for _, g := range []byte{'m', 'f', 'n'} {
			b := []byte(t)
			b[6] = g
			out = append(out, string(b))
		}
	}
	return out
}
