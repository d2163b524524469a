package residue

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var posLineRegexp = regexp.MustCompile(`^(([A-Z]?[A-Z][0-9]+)_?)+$`)

// stripCode removes the leading residue-type letter of a token, tolerating
// specifications written without one: if the second character is a digit
// the token is already code-less and is kept as is.
func stripCode(token string) string {
	if len(token) > 1 && token[1] >= '0' && token[1] <= '9' {
		return token
	}
	return token[1:]
}

func digits(token string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, token)
}

// ParsePositionList reads a position list file, one specification per line
// in <Chain><Number>[_<Chain><Number>...] form, and reconciles each entry
// against the canonical structure-derived residue groups.
//
// A specification either matches a canonical group exactly, or, written
// without residue-type letters, must identify exactly one group by
// chain+number subset. The result is duplicate-free, each entry the sorted
// code-stripped token tuple.
func ParsePositionList(path string, canonical []Group) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open position list file %s: %w", path, err)
	}
	defer fh.Close()

	strippedSets := make([]map[string]bool, len(canonical))
	for i, g := range canonical {
		strippedSets[i] = make(map[string]bool, len(g))
		for _, t := range g.Stripped() {
			strippedSets[i][t] = true
		}
	}

	var out [][]string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !posLineRegexp.MatchString(line) {
			return nil, fmt.Errorf("%w: format error at %s", ErrFormat, line)
		}

		tokens := strings.Split(line, "_")

		lengths := make(map[int]bool)
		uniq := make(map[string]bool)
		numbers := make(map[string]bool)
		for _, t := range tokens {
			lengths[len(t)] = true
			uniq[t] = true
			numbers[digits(t)] = true
		}
		if len(lengths) != 1 || len(uniq) != len(tokens) || len(numbers) != 1 {
			return nil, fmt.Errorf("%w: format error at %s", ErrFormat, line)
		}

		if !exactMatch(tokens, canonical) {
			// Partial specification: the code-stripped token set must be
			// contained in exactly one canonical group.
			matches := 0
			for _, set := range strippedSets {
				if subset(stripAll(tokens), set) {
					matches++
				}
			}
			if matches != 1 {
				return nil, fmt.Errorf("%w: %s residue is not written in the right format or it is not contained in pdb file", ErrNotFound, line)
			}
		}

		entry := stripAll(tokens)
		sort.Strings(entry)
		key := strings.Join(entry, "_")
		if !seen[key] {
			seen[key] = true
			out = append(out, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read position list file %s: %w", path, err)
	}

	return out, nil
}

func stripAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = stripCode(t)
	}
	return out
}

func subset(tokens []string, set map[string]bool) bool {
	for _, t := range tokens {
		if !set[t] {
			return false
		}
	}
	return true
}

func exactMatch(tokens []string, canonical []Group) bool {
	for _, g := range canonical {
		if len(g) != len(tokens) {
			continue
		}
		same := true
		for i := range g {
			if g[i] != tokens[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
