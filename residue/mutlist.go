package residue

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tikz/mutscan/pdb"
)

// ParseMutationList reads a mutation list file: one aminoacid one-letter
// code per line, #-prefixed comment lines ignored. Codes must belong to
// the standard aminoacid alphabet, without duplicates. No case folding is
// performed, so lowercase codes are rejected. An empty result is logged
// but not an error.
func ParseMutationList(path string, logger *log.Logger) ([]string, error) {
	logger = ensureLogger(logger)

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open mutation list file %s: %w", path, err)
	}
	defer fh.Close()

	var restypes []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if len(line) > 1 {
			logger.Printf("warning: more than one character per line found in mutation list file; only the first letter will be considered")
		}
		mtype := line[0:1]
		if !pdb.IsAminoacid(mtype) {
			return nil, fmt.Errorf("%w: one or more residue types in the mutation list were incorrectly specified", ErrFormat)
		}
		if seen[mtype] {
			return nil, fmt.Errorf("%w: mutation list file contains duplicates", ErrFormat)
		}
		seen[mtype] = true
		restypes = append(restypes, mtype)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read mutation list file %s: %w", path, err)
	}

	if len(restypes) == 0 {
		logger.Printf("no residue types found in mutation list")
	}

	return restypes, nil
}
