package endings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookupPrefersLongestSuffix(t *testing.T) {
	tbl := Table{}
	tbl.Add("n-s----n-", "a_")
	tbl.Add("n-s----n-", "ia")

	accented, ok := tbl.Lookup("via", "n-s----n-")
	if !ok {
		t.Fatal("expected a match")
	}
	if accented != "via" {
		t.Errorf("Lookup = %q, want %q (unmodified, suffix had no markers)", accented, "via")
	}
}

func TestLookupAppliesMacron(t *testing.T) {
	tbl := Table{}
	tbl.Add("n-s----a-", "a_")

	accented, ok := tbl.Lookup("porta", "n-s----a-")
	if !ok {
		t.Fatal("expected a match")
	}
	if accented != "port"+"a_" {
		t.Errorf("Lookup = %q, want port+a_", accented)
	}
}

func TestLookupNoMatchReturnsFalse(t *testing.T) {
	tbl := Table{}
	tbl.Add("n-s----a-", "a_")
	if _, ok := tbl.Lookup("xyz", "n-s----a-"); ok {
		t.Error("expected no match for unrelated word")
	}
	if _, ok := tbl.Lookup("porta", "unknown-tag"); ok {
		t.Error("expected no match for unknown tag")
	}
}

func TestAddKeepsLongestFirst(t *testing.T) {
	tbl := Table{}
	tbl.Add("t", "a")
	tbl.Add("t", "ia")
	tbl.Add("t", "nia")
	list := tbl["t"]
	for i := 1; i < len(list); i++ {
		if len(bareOf(list[i-1])) < len(bareOf(list[i])) {
			t.Fatalf("entries not longest-first: %v", list)
		}
	}
}

func TestLoadFileMissingYieldsEmptyTable(t *testing.T) {
	tbl, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl) != 0 {
		t.Errorf("expected empty table, got %v", tbl)
	}
}

func TestWriteFileThenLoadFileRoundTrips(t *testing.T) {
	tbl := Table{}
	tbl.Add("n-s----a-", "a_")
	tbl.Add("v3s-ia---", "a^t")

	path := filepath.Join(t.TempDir(), "endings.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.WriteFile(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if accented, ok := loaded.Lookup("porta", "n-s----a-"); !ok || !strings.HasSuffix(accented, "a_") {
		t.Errorf("Lookup after round trip = %q, %v", accented, ok)
	}
	if accented, ok := loaded.Lookup("amat", "v3s-ia---"); !ok || !strings.HasSuffix(accented, "a^t") {
		t.Errorf("Lookup after round trip = %q, %v", accented, ok)
	}
}
