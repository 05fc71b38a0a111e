package tagset

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"v1spia---", "v1spia---", 0},
		{"v1spia---", "v2spia---", 1},
		{"n-s----a-", "n-p----a-", 1},
	}
	for _, c := range cases {
		got, err := Distance(c.a, c.b)
		if err != nil {
			t.Fatalf("Distance(%q, %q): unexpected error: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceRejectsMismatchedLengths(t *testing.T) {
	if _, err := Distance("v1spia---", "v1spia--"); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if _, err := Distance("abcdefgh", "abcdefgh"); err == nil {
		t.Fatal("expected error for length other than 9 or 12")
	}
}

func TestFrom12(t *testing.T) {
	c, ok := From12("v1spia---XY-")
	if !ok {
		t.Fatal("From12 returned false for well-formed input")
	}
	if c != "v1spia---" {
		t.Errorf("From12 = %q, want %q", c, "v1spia---")
	}
}

func TestFrom12FoldsSecondaryCase(t *testing.T) {
	c, ok := From12("n--s-----XYl")
	if !ok {
		t.Fatal("From12 returned false for well-formed input")
	}
	if c[7] != 'l' {
		t.Errorf("From12 did not fold secondary case 'l' into the dash case column, got %q", c)
	}
}

func TestFrom12RejectsWrongLength(t *testing.T) {
	if _, ok := From12("short"); ok {
		t.Fatal("expected false for non-12-char input")
	}
}
