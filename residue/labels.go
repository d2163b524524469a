package residue

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

// ParseLabels reads a residue label file: comma-delimited, fields may be
// quoted with | (a quoted field may contain commas), an optional header
// row starting with Residue_name. Column 0 is the residue identifier,
// column 1 the display label; an empty label means no override. Returns
// one label per entry of names, starting from defaults; identifiers
// without a label keep their default with a warning.
func ParseLabels(path string, names, defaults []string, logger *log.Logger) ([]string, error) {
	logger = ensureLogger(logger)

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labels file couldn't be read: %w", err)
	}
	defer fh.Close()

	overrides := make(map[string]string)

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitQuoted(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: labels file couldn't be parsed correctly", ErrFormat)
		}
		if fields[0] == "Residue_name" {
			continue
		}
		if fields[1] != "" {
			overrides[fields[0]] = fields[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("labels file couldn't be read: %w", err)
	}

	labels := append([]string(nil), defaults...)
	for i, name := range names {
		if v, ok := overrides[name]; ok {
			labels[i] = v
		} else {
			logger.Printf("warning: label for residue %s not found; it will be skipped", name)
		}
	}

	return labels, nil
}

// splitQuoted splits a label line on commas, keeping |-quoted regions
// intact. Quote characters are consumed, not kept.
func splitQuoted(line string) []string {
	var fields []string
	var b strings.Builder
	quoted := false
	for _, r := range line {
		switch {
		case r == '|':
			quoted = !quoted
		case r == ',' && !quoted:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, b.String())
}
