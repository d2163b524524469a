// Package residue builds and reconciles MutateX-style residue identifiers
// from parsed structures: homomer grouping, position lists, mutation lists
// and residue labels.
package residue

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/tikz/mutscan/pdb"
)

var (
	// ErrFormat reports malformed input file content.
	ErrFormat = errors.New("format error")
	// ErrNotFound reports a position that could not be reconciled against
	// the structure.
	ErrNotFound = errors.New("position not found")
)

// Group is a residue identifier: one <one-letter-code><chain><number>
// token per chain carrying the residue, sorted by chain. Length is 1
// unless multimer detection grouped several identical chains.
type Group []string

func (g Group) String() string {
	return strings.Join(g, "_")
}

// Stripped returns the tokens without the leading residue-type letter.
func (g Group) Stripped() []string {
	out := make([]string, len(g))
	for i, t := range g {
		out[i] = t[1:]
	}
	return out
}

// List extracts the residue identifiers of a structure. Only the first
// model is considered; more than one model is a warning, none is an error.
//
// With multimers enabled, chains sharing the same one-letter sequence are
// collated into a single group per residue position, using the first chain
// of each group as template. Residues that do not map to a standard
// aminoacid are skipped with a warning.
func List(s *pdb.Structure, multimers bool, logger *log.Logger) ([]Group, error) {
	logger = ensureLogger(logger)

	if len(s.Models) < 1 {
		return nil, errors.New("the input PDB file does not contain any model")
	}
	if len(s.Models) > 1 {
		logger.Printf("warning: %d models are present in the input PDB file; only the first will be used.", len(s.Models))
	}
	model := s.Models[0]

	var out []Group

	if !multimers {
		for _, chain := range model.Chains {
			for _, r := range chain.Residues {
				if !r.Recognized() {
					logger.Printf("warning: residue %s %s%d couldn't be recognized; it will be skipped", r.Name3, r.Chain, r.Number)
					continue
				}
				out = append(out, Group{r.ID()})
			}
		}
		return out, nil
	}

	// Collate chains with identical sequences, in order of first appearance.
	bySeq := make(map[string][]*pdb.Chain)
	var order []string
	for _, chain := range model.Chains {
		seq := chain.Sequence()
		if _, ok := bySeq[seq]; !ok {
			order = append(order, seq)
		}
		bySeq[seq] = append(bySeq[seq], chain)
	}

	for _, seq := range order {
		chains := bySeq[seq]
		template := chains[0]
		for _, r := range template.Residues {
			if !r.Recognized() {
				logger.Printf("warning: residue %s %s%d couldn't be recognized; it will be skipped", r.Name3, r.Chain, r.Number)
				continue
			}
			g := make(Group, 0, len(chains))
			for _, c := range chains {
				g = append(g, fmt.Sprintf("%s%s%d", r.Name1, c.ID, r.Number))
			}
			sort.Slice(g, func(i, j int) bool { return g[i][1:] < g[j][1:] })
			out = append(out, g)
		}
	}

	return out, nil
}

func ensureLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
