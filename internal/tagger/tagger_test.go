package tagger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadTagsParsesTabSeparated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("cano\tv1spia---\nvirum\tn-s----a-\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tags, err := readTags(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 || tags[0] != "v1spia---" || tags[1] != "n-s----a-" {
		t.Errorf("tags = %v", tags)
	}
}

func TestAdapterMissingBinary(t *testing.T) {
	a := NewAdapter(t.TempDir(), "model", nil)
	_, err := a.Tag([]string{"cano"})
	if err == nil {
		t.Fatal("expected an error for a missing rft-annotate binary")
	}
}
