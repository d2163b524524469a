package residue

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLabels(t *testing.T) {
	content := "Residue_name,label\nGA1,|Gly 1|\nAA2,\n"
	path := filepath.Join(t.TempDir(), "labels.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	names := []string{"GA1", "AA2", "KC5"}

	var buf bytes.Buffer
	labels, err := ParseLabels(path, names, names, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	if labels[0] != "Gly 1" {
		t.Errorf("expected override for GA1, got %q", labels[0])
	}
	// Empty label means no override; missing entry keeps the default.
	if labels[1] != "AA2" || labels[2] != "KC5" {
		t.Errorf("expected defaults kept, got %v", labels)
	}
	if !strings.Contains(buf.String(), "KC5") {
		t.Error("expected a warning naming the residue without a label")
	}
}

func TestParseLabelsQuotedComma(t *testing.T) {
	content := "GA1,|Gly, mutated|\n"
	path := filepath.Join(t.TempDir(), "labels.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	names := []string{"GA1"}
	labels, err := ParseLabels(path, names, names, nil)
	if err != nil {
		t.Fatal(err)
	}
	if labels[0] != "Gly, mutated" {
		t.Errorf("expected the quoted label kept whole, got %q", labels[0])
	}
}

func TestParseLabelsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	if err := os.WriteFile(path, []byte("justonecolumn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseLabels(path, nil, nil, nil); err == nil {
		t.Error("expected an error for a malformed labels file")
	}
}
