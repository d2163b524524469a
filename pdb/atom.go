package pdb

import (
	"strconv"
	"strings"
)

// Atom represents a single atom in the structure.
// It contains the columns from an ATOM or HETATM record in a PDB file.
type Atom struct {
	Het           bool
	Number        int64
	Name          string
	Residue       string
	Chain         string
	ResidueNumber int64
	X             float64
	Y             float64
	Z             float64
	Occupancy     float64
	BFactor       float64
	Element       string
	Charge        string

	raw string
}

// parseAtomRecord parses a single ATOM or HETATM line.
// https://www.wwpdb.org/documentation/file-format-content/format23/sect9.html#ATOM
func parseAtomRecord(line string) *Atom {
	if len(line) < 54 {
		return nil
	}
	if len(line) < 80 {
		line += strings.Repeat(" ", 80-len(line))
	}

	var atom Atom
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.Number, _ = strconv.ParseInt(strings.TrimSpace(line[6:11]), 10, 64)
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Residue = strings.TrimSpace(line[17:20])
	atom.Chain = line[21:22]
	atom.ResidueNumber, _ = strconv.ParseInt(strings.TrimSpace(line[22:26]), 10, 64)
	atom.X, _ = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	atom.Y, _ = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	atom.Z, _ = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	atom.BFactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	atom.Element = strings.TrimSpace(line[76:78])
	atom.Charge = strings.TrimSpace(line[78:80])
	atom.raw = line

	return &atom
}

// Record returns the atom as a fixed-width PDB record line.
func (a *Atom) Record() string {
	return a.raw
}

// setChain rewrites the chain identifier, keeping the raw record in sync.
func (a *Atom) setChain(id string) {
	a.Chain = id
	a.raw = a.raw[:21] + id + a.raw[22:]
}
