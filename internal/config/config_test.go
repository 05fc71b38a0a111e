package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsForMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	if err != nil {
		t.Fatalf("Load returned an error for a nonexistent path: %v", err)
	}
	if cfg.Paths.MorpheusDir != defaults.Paths.MorpheusDir {
		t.Errorf("MorpheusDir = %q, want default %q", cfg.Paths.MorpheusDir, defaults.Paths.MorpheusDir)
	}
}

func TestLoadReadsKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	contents := "[paths]\nrftagger_dir = /opt/rft\nmorpheus_dir = /opt/morph\n\n[log]\nlevel = debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Paths.RftaggerDir != "/opt/rft" {
		t.Errorf("RftaggerDir = %q", cfg.Paths.RftaggerDir)
	}
	if cfg.Paths.MorpheusDir != "/opt/morph" {
		t.Errorf("MorpheusDir = %q", cfg.Paths.MorpheusDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Paths.LexiconDB != defaults.Paths.LexiconDB {
		t.Errorf("LexiconDB should fall back to default, got %q", cfg.Paths.LexiconDB)
	}
}
