// Package config loads the macronizer's INI configuration file. This is a
// narrow, data-only collaborator: one static file, read once at startup,
// with no environment-variable overlay or hot reload, unlike the layered
// YAML/viper configuration of larger service-oriented repositories in the
// broader Go ecosystem this pipeline pulls its ambient stack from.
package config

import "gopkg.in/ini.v1"

// Config holds every setting the pipeline and its front ends need.
type Config struct {
	Paths  PathsConfig
	Log    LogConfig
	Server ServerConfig
}

// PathsConfig names the on-disk locations of the external tools and data
// files the pipeline's adapters and lexicon store depend on.
type PathsConfig struct {
	RftaggerDir string // directory containing the sequence-tagger binary and model
	MorpheusDir string // directory containing bin/cruncher and stemlib
	LexiconDB   string // path to the persistent lexicon database file
	MacronsFile string // path to the macrons.txt seed file
	EndingsFile string // path to the endings-table data file
}

// LogConfig mirrors internal/logging.Config; kept separate so the config
// package has no import-time dependency on the logging package.
type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Addr string
}

// defaults are applied for any key absent from the file, matching the
// original CLI's tolerance of a minimal or even partially-missing config.
var defaults = Config{
	Paths: PathsConfig{
		RftaggerDir: "data/rftagger",
		MorpheusDir: "data/morpheus",
		LexiconDB:   "lexicon.db",
		MacronsFile: "macrons.txt",
		EndingsFile: "endings.txt",
	},
	Log: LogConfig{
		Level:  "info",
		Format: "console",
	},
	Server: ServerConfig{
		Addr: ":8080",
	},
}

// Load reads the INI file at path and returns a Config with any absent key
// filled from defaults. A nonexistent path is not an error at load time —
// it yields the all-defaults Config, mirroring the original CLI's
// --config behavior of accepting an unreachable path without crashing; the
// error only surfaces the first time a path it names is actually opened.
func Load(path string) (Config, error) {
	cfg := defaults

	f, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, path)
	if err != nil {
		return cfg, nil
	}

	if sec := f.Section("paths"); sec != nil {
		cfg.Paths.RftaggerDir = sec.Key("rftagger_dir").MustString(cfg.Paths.RftaggerDir)
		cfg.Paths.MorpheusDir = sec.Key("morpheus_dir").MustString(cfg.Paths.MorpheusDir)
		cfg.Paths.LexiconDB = sec.Key("lexicon_db").MustString(cfg.Paths.LexiconDB)
		cfg.Paths.MacronsFile = sec.Key("macrons_file").MustString(cfg.Paths.MacronsFile)
		cfg.Paths.EndingsFile = sec.Key("endings_file").MustString(cfg.Paths.EndingsFile)
	}
	if sec := f.Section("log"); sec != nil {
		cfg.Log.Level = sec.Key("level").MustString(cfg.Log.Level)
		cfg.Log.Format = sec.Key("format").MustString(cfg.Log.Format)
	}
	if sec := f.Section("server"); sec != nil {
		cfg.Server.Addr = sec.Key("addr").MustString(cfg.Server.Addr)
	}

	return cfg, nil
}
