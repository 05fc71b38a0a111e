// Command server exposes the macronization pipeline as a JSON REST API,
// generalizing the teacher's lemmatize/inflect endpoints to this spec's
// macronize/evaluate operations over the same net/http + cors shape.
//
// Endpoints:
//
//	POST /api/macronize   body: {"text":"..."}
//	POST /api/evaluate    body: {"gold":"...","output":"..."}
//	GET  /metrics
package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	_ "modernc.org/sqlite"

	"github.com/cours-de-latin/macronizer/internal/accent"
	"github.com/cours-de-latin/macronizer/internal/config"
	"github.com/cours-de-latin/macronizer/internal/endings"
	"github.com/cours-de-latin/macronizer/internal/evaluator"
	"github.com/cours-de-latin/macronizer/internal/lexicon"
	"github.com/cours-de-latin/macronizer/internal/logging"
	"github.com/cours-de-latin/macronizer/internal/macronizer"
	"github.com/cours-de-latin/macronizer/internal/metrics"
	"github.com/cours-de-latin/macronizer/internal/morpheus"
	"github.com/cours-de-latin/macronizer/internal/priors"
	"github.com/cours-de-latin/macronizer/internal/tagger"
)

// ---- JSON request/response types -----------------------------------------

type macronizeRequest struct {
	Text string `json:"text"`
}

type macronizeResponse struct {
	Output string `json:"output"`
}

type evaluateRequest struct {
	Gold   string `json:"gold"`
	Output string `json:"output"`
}

type evaluateResponse struct {
	Accuracy float64 `json:"accuracy"`
	HTML     string  `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(log logging.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", logging.Err(err))
	}
}

func writeError(log logging.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, errorResponse{Error: msg})
}

// ---- handlers ---------------------------------------------------------------

func handleMacronize(m *macronizer.Macronizer, log logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(log, w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req macronizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(log, w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		output, err := m.Macronize(req.Text)
		if err != nil {
			log.Error("macronize", logging.Err(err))
			writeError(log, w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(log, w, http.StatusOK, macronizeResponse{Output: accent.ToGlyph(output)})
	}
}

func handleEvaluate(log logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(log, w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(log, w, http.StatusBadRequest, "body must be JSON with 'gold' and 'output' fields")
			return
		}

		result, err := evaluator.Evaluate(req.Gold, req.Output)
		if err != nil {
			var invalid *macronizer.InvalidArgumentError
			if errors.As(err, &invalid) {
				writeError(log, w, http.StatusBadRequest, invalid.Error())
				return
			}
			log.Error("evaluate", logging.Err(err))
			writeError(log, w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(log, w, http.StatusOK, evaluateResponse{Accuracy: result.Accuracy, HTML: result.HTML})
	}
}

// ---- main -------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "server.ini", "path to the INI configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := logging.New(logging.Config(cfg.Log))
	if err != nil {
		panic(err)
	}
	logging.SetDefault(log)

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Error("registering metrics", logging.Err(err))
		os.Exit(1)
	}

	m, err := buildMacronizer(cfg, log)
	if err != nil {
		log.Error("building pipeline", logging.Err(err))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/macronize", handleMacronize(m, log))
	mux.HandleFunc("/api/evaluate", handleEvaluate(log))
	mux.Handle("/metrics", promhttp.Handler())

	handler := cors.Default().Handler(mux)

	log.Info("listening", logging.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		log.Error("server stopped", logging.Err(err))
		os.Exit(1)
	}
}

// buildMacronizer wires a Macronizer from cfg, mirroring cmd/macronize's
// own build step: open the persistent lexicon store (seeding it from
// MacronsFile on first run), load the endings table, derive lemma priors
// from MacronsFile, and construct the external adapters.
func buildMacronizer(cfg config.Config, log logging.Logger) (*macronizer.Macronizer, error) {
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
		return nil, err
	}

	p, err := priors.LoadMacronsFile(cfg.Paths.MacronsFile)
	if err != nil {
		return nil, err
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
		return err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return store.ImportSeed(lines)
}
