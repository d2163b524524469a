package pdb

import (
	"strconv"
	"strings"
)

var residueNames = [...][3]string{
	{"Alanine", "Ala", "A"},
	{"Arginine", "Arg", "R"},
	{"Asparagine", "Asn", "N"},
	{"Aspartic acid", "Asp", "D"},
	{"Cysteine", "Cys", "C"},
	{"Glutamic acid", "Glu", "E"},
	{"Glutamine", "Gln", "Q"},
	{"Glycine", "Gly", "G"},
	{"Histidine", "His", "H"},
	{"Isoleucine", "Ile", "I"},
	{"Leucine", "Leu", "L"},
	{"Lysine", "Lys", "K"},
	{"Methionine", "Met", "M"},
	{"Phenylalanine", "Phe", "F"},
	{"Proline", "Pro", "P"},
	{"Serine", "Ser", "S"},
	{"Threonine", "Thr", "T"},
	{"Tryptophan", "Trp", "W"},
	{"Tyrosine", "Tyr", "Y"},
	{"Valine", "Val", "V"},
}

// Residue represents a single residue from the structure.
type Residue struct {
	Chain  string
	Number int64
	Name   string // full name
	Name1  string // one-letter code, "X" if not a standard aminoacid
	Name3  string // three-letter code
	Atoms  []*Atom
}

// IsAminoacid returns true if the given letter is a standard aminoacid
// one-letter code, false otherwise.
func IsAminoacid(letter string) bool {
	for _, res := range residueNames {
		if res[2] == letter {
			return true
		}
	}
	return false
}

// AminoacidNames receives a name and returns all the possible representations:
// full name, three letter and one letter abbreviations.
func AminoacidNames(input string) (string, string, string) {
	s := strings.Title(strings.ToLower(input))
	for _, res := range residueNames {
		for _, n := range res {
			if n == s {
				return res[0], res[1], res[2]
			}
		}
	}

	return input, "Unk", "X"
}

// NewResidue constructs a new residue given a chain, position and aminoacid name.
// The name is case-insensitive and can be either a full aminoacid name, one or
// three letter abbreviation.
func NewResidue(chain string, number int64, input string) *Residue {
	name, abbrv3, abbrv1 := AminoacidNames(input)

	res := &Residue{
		Chain:  chain,
		Number: number,
		Name:   name,
		Name1:  abbrv1,
		Name3:  abbrv3,
	}

	return res
}

// Recognized reports whether the residue name mapped to one of the twenty
// standard aminoacids.
func (r *Residue) Recognized() bool {
	return r.Name1 != "X"
}

// ID returns the residue in <one-letter-code><chain><number> form.
func (r *Residue) ID() string {
	return r.Name1 + r.Chain + strconv.FormatInt(r.Number, 10)
}
