package foldx

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ParseDif reads a Dif_*.fxout energy difference file and returns the ddG
// values as a mutations x runs matrix. BuildModel emits one line per
// mutant model, in mutant-major order; the first tab-separated field is
// the model file name, the second the total energy difference.
func ParseDif(path string, nMutations, nRuns int) (*mat.Dense, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open energy difference file %s", path)
	}
	defer fh.Close()

	var ddgs []float64

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 2 || !strings.HasSuffix(fields[0], ".pdb") {
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed energy difference file %s", path)
		}
		ddgs = append(ddgs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "couldn't read energy difference file %s", path)
	}

	if len(ddgs) != nMutations*nRuns {
		return nil, errors.Errorf("energy difference file %s has %d values, with %d required", path, len(ddgs), nMutations*nRuns)
	}

	return mat.NewDense(nMutations, nRuns, ddgs), nil
}
