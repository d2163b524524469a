// Package pdb parses PDB coordinate files into an ordered
// model/chain/residue object graph suitable for mutational scanning.
package pdb

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Structure is a parsed PDB entry: one or more models, each holding the
// chains in file order.
type Structure struct {
	ID     string
	Models []*Model
}

// Model is a single coordinate model.
type Model struct {
	Number int // zero-based position in the file
	Chains []*Chain
}

// Chain holds the residues of one chain in file order.
type Chain struct {
	ID       string
	Residues []*Residue
}

// Sequence returns the one-letter sequence of the chain. Residues that do
// not map to a standard aminoacid are left out.
func (c *Chain) Sequence() string {
	var b strings.Builder
	for _, r := range c.Residues {
		if r.Recognized() {
			b.WriteString(r.Name1)
		}
	}
	return b.String()
}

func (m *Model) chain(id string) *Chain {
	for _, c := range m.Chains {
		if c.ID == id {
			return c
		}
	}
	c := &Chain{ID: id}
	m.Chains = append(m.Chains, c)
	return c
}

func (m *Model) addAtom(atom *Atom) {
	c := m.chain(atom.Chain)
	n := len(c.Residues)
	if n > 0 {
		last := c.Residues[n-1]
		if last.Number == atom.ResidueNumber && last.Atoms[0].Residue == atom.Residue {
			last.Atoms = append(last.Atoms, atom)
			return
		}
	}
	res := NewResidue(atom.Chain, atom.ResidueNumber, atom.Residue)
	res.Atoms = []*Atom{atom}
	c.Residues = append(c.Residues, res)
}

// ParseStructure parses raw PDB text. Files without MODEL records yield a
// single model. A file with no ATOM or HETATM records is an error.
func ParseStructure(id string, raw []byte) (*Structure, error) {
	s := &Structure{ID: id}

	var cur *Model
	natoms := 0
	for _, line := range strings.Split(string(raw), "\n") {
		switch {
		case strings.HasPrefix(line, "MODEL"):
			cur = &Model{Number: len(s.Models)}
			s.Models = append(s.Models, cur)
		case strings.HasPrefix(line, "ENDMDL"):
			cur = nil
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			atom := parseAtomRecord(line)
			if atom == nil {
				continue
			}
			if cur == nil {
				cur = &Model{Number: len(s.Models)}
				s.Models = append(s.Models, cur)
			}
			cur.addAtom(atom)
			natoms++
		}
	}

	if natoms == 0 {
		return nil, errors.New("no atom records found")
	}

	// MODEL records with no atoms are dropped.
	models := s.Models[:0]
	for _, m := range s.Models {
		if len(m.Chains) > 0 {
			m.Number = len(models)
			models = append(models, m)
		}
	}
	s.Models = models

	return s, nil
}

// ReadStructure loads and parses a PDB file from disk.
func ReadStructure(id, path string) (*Structure, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read PDB file: %w", err)
	}
	return ParseStructure(id, raw)
}

// CheckModels performs basic checks on the loaded models and fixes problems
// if possible. Currently it assigns a chain identifier where missing.
func (s *Structure) CheckModels(logger *log.Logger) {
	logger = ensureLogger(logger)
	for _, m := range s.Models {
		for _, c := range m.Chains {
			if strings.TrimSpace(c.ID) != "" {
				continue
			}
			logger.Printf("warning: at least one residue in model %d has no chain identifier. Will be defaulted to A.", m.Number)
			c.ID = "A"
			for _, r := range c.Residues {
				r.Chain = "A"
				for _, a := range r.Atoms {
					a.setChain("A")
				}
			}
		}
	}
}

// write emits the model as PDB records, one TER per chain.
func (m *Model) write(w io.Writer) error {
	for _, c := range m.Chains {
		for _, r := range c.Residues {
			for _, a := range r.Atoms {
				if _, err := fmt.Fprintln(w, a.Record()); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w, "TER"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return err
}

func ensureLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
