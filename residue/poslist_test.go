package residue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "positions.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func canonicalGroups() []Group {
	return []Group{
		{"GA1", "GB1"},
		{"AA2", "AB2"},
		{"KC5"},
	}
}

func TestParsePositionListPartial(t *testing.T) {
	path := writeTemp(t, "A1_B1\nC5\n")

	out, err := ParsePositionList(path, canonicalGroups())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0][0] != "A1" || out[0][1] != "B1" {
		t.Errorf("unexpected first entry: %v", out[0])
	}
	if out[1][0] != "C5" {
		t.Errorf("unexpected second entry: %v", out[1])
	}
}

func TestParsePositionListExactAndDedup(t *testing.T) {
	// The full form and the chain-only form of the same group collapse to
	// one canonical entry.
	path := writeTemp(t, "GA1_GB1\nA1_B1\n")

	out, err := ParsePositionList(path, canonicalGroups())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 deduplicated entry, got %d", len(out))
	}
	if out[0][0] != "A1" || out[0][1] != "B1" {
		t.Errorf("unexpected entry: %v", out[0])
	}
}

func TestParsePositionListErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"absent position", "A9"},
		{"duplicate token", "A1_A1"},
		{"mismatched numbers", "A1_B2"},
		{"mismatched lengths", "A12_B1"},
		{"lowercase chain", "a1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, tc.line+"\n")
			if _, err := ParsePositionList(path, canonicalGroups()); err == nil {
				t.Errorf("expected error for line %q", tc.line)
			}
		})
	}
}

func TestParsePositionListAmbiguous(t *testing.T) {
	canonical := []Group{
		{"KC5"},
		{"KC5", "KD5"},
	}
	path := writeTemp(t, "C5\n")

	_, err := ParsePositionList(path, canonical)
	if err == nil {
		t.Fatal("expected an ambiguity error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParsePositionListMissingFile(t *testing.T) {
	if _, err := ParsePositionList(filepath.Join(t.TempDir(), "nope.txt"), canonicalGroups()); err == nil {
		t.Error("expected an error for a missing file")
	}
}
