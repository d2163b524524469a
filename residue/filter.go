package residue

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Filter keeps only the residue groups matching the reference list. ref
// entries use the code-less token format produced by ParsePositionList;
// each must be contained in exactly one entry of reslist. The result is
// ordered by chain, then by residue number in numeric order.
func Filter(reslist []Group, ref [][]string) ([]Group, error) {
	stripped := make([]map[string]bool, len(reslist))
	for i, g := range reslist {
		stripped[i] = make(map[string]bool, len(g))
		for _, t := range g.Stripped() {
			stripped[i][t] = true
		}
	}

	var out []Group
	seen := make(map[string]bool)

	for _, p := range ref {
		added := false
		for i, g := range reslist {
			if !subset(p, stripped[i]) {
				continue
			}
			if !seen[g.String()] {
				seen[g.String()] = true
				out = append(out, g)
			}
			added = true
			break
		}
		if !added {
			return nil, fmt.Errorf("%w: position %s was not identified in the input PDB file", ErrNotFound, strings.Join(p, "_"))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i][0][1], out[j][0][1]
		if ci != cj {
			return ci < cj
		}
		ni, _ := strconv.Atoi(out[i][0][2:])
		nj, _ := strconv.Atoi(out[j][0][2:])
		return ni < nj
	})

	return out, nil
}
