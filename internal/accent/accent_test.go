package accent

import "testing"

func TestSkeletonFoldsOrthography(t *testing.T) {
	if !SameSkeleton("Iulius", "ju_lius", true, true) {
		t.Errorf("Iulius and ju_lius should share a skeleton under uv/ij folding")
	}
	if SameSkeleton("amica", "ami_cus", true, true) {
		t.Errorf("amica and amicus must not share a skeleton")
	}
}

func TestStripMarkers(t *testing.T) {
	if got := StripMarkers("ca_usa__"); got != "causa" {
		t.Errorf("StripMarkers = %q, want %q", got, "causa")
	}
}

func TestToGlyph(t *testing.T) {
	cases := []struct{ in, want string }{
		{"cano_", "canō"},
		{"porta_", "portā"},
		{"ami^cus", "amĭcus"},
		{"causa", "causa"},
	}
	for _, c := range cases {
		if got := ToGlyph(c.in); got != c.want {
			t.Errorf("ToGlyph(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromGlyph(t *testing.T) {
	cases := []struct{ in, want string }{
		{"canō", "cano_"},
		{"portā", "porta_"},
		{"amĭcus", "ami^cus"},
		{"causa", "causa"},
	}
	for _, c := range cases {
		if got := FromGlyph(c.in); got != c.want {
			t.Errorf("FromGlyph(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromGlyphAmbiguousQuantity(t *testing.T) {
	// a macron letter immediately followed by a combining breve marks an
	// attested-but-ambiguous quantity, mirroring the teacher's Communes.
	in := "ā̆blŭo"
	want := "a_^blu^o"
	if got := FromGlyph(in); got != want {
		t.Errorf("FromGlyph(%q) = %q, want %q", in, got, want)
	}
}
