// Package tagger adapts the external sequence tagger (rft-annotate) into a
// function over a surface-word sequence: write one word per line to a temp
// input file, invoke the tagger binary with a model path, read back one
// "surface<TAB>tag" line per input line.
//
// Grounded on original_source/tests/macronizer_test.py's
// Tokenization.addtags (subprocess contract, missing-binary error message
// containing "rft" and "not found or not executable").
package tagger

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
	"github.com/cours-de-latin/macronizer/internal/metrics"
)

const toolName = "rft-annotate"

// Adapter invokes the external sequence tagger.
type Adapter struct {
	BinaryPath string
	ModelPath  string
	Timeout    time.Duration
	Log        logging.Logger
}

// NewAdapter constructs an Adapter. rftaggerDir is expected to contain both
// the rft-annotate binary and its trained model file.
func NewAdapter(rftaggerDir, modelName string, log logging.Logger) *Adapter {
	if log == nil {
		log = logging.NewNop()
	}
	return &Adapter{
		BinaryPath: rftaggerDir + "/rft-annotate",
		ModelPath:  rftaggerDir + "/" + modelName,
		Timeout:    30 * time.Second,
		Log:        log,
	}
}

// Tag assigns a tag to each surface in order, returning a slice parallel to
// the input.
func (a *Adapter) Tag(surfaces []string) ([]string, error) {
	start := time.Now()
	tags, err := a.run(surfaces)
	metrics.AdapterDuration.WithLabelValues(toolName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AdapterFailures.WithLabelValues(toolName).Inc()
		return nil, err
	}
	return tags, nil
}

func (a *Adapter) run(surfaces []string) ([]string, error) {
	in, err := os.CreateTemp("", "rft-in-*.txt")
	if err != nil {
		return nil, macronizer.NewDatabaseError("create temp input", err)
	}
	defer os.Remove(in.Name())
	for _, s := range surfaces {
		fmt.Fprintln(in, s)
	}
	if err := in.Close(); err != nil {
		return nil, err
	}

	out, err := os.CreateTemp("", "rft-out-*.txt")
	if err != nil {
		return nil, macronizer.NewDatabaseError("create temp output", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.BinaryPath, a.ModelPath, in.Name(), outPath)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	a.Log.Debug("invoking rft-annotate", logging.String("binary", a.BinaryPath), logging.Int("words", len(surfaces)))

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, macronizer.NewExternalDependencyError(toolName, "timed out", stderr.String(), ctx.Err())
	}
	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); ok {
			return nil, macronizer.NewExternalDependencyError(toolName, fmt.Sprintf("exited with error: %v", runErr), stderr.String(), runErr)
		}
		return nil, macronizer.NewExternalDependencyError(toolName, "rft-annotate not found or not executable", stderr.String(), runErr)
	}

	return readTags(outPath, len(surfaces))
}

func readTags(path string, want int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, macronizer.NewExternalDependencyError(toolName, "could not read tagger output", "", err)
	}
	defer f.Close()

	tags := make([]string, 0, want)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		tags = append(tags, parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, macronizer.NewExternalDependencyError(toolName, "could not read tagger output", "", err)
	}
	return tags, nil
}
