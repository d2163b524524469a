// Package energy reads and writes MutateX-style free energy files:
// whitespace-delimited numeric tables with #-prefixed comments, one column
// per summary statistic or trial and one row per residue/mutation entry.
package energy

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrFormat reports a malformed energy file.
	ErrFormat = errors.New("energy file in the wrong format")
	// ErrSize reports an entry count different from the expected one.
	ErrSize = errors.New("unexpected number of entries")
)

// Read loads an energy file and returns the table transposed, so that
// rows correspond to file columns and columns to file lines. A file with
// a single line or a single value per line therefore yields an N x 1 or
// 1 x N matrix respectively.
func Read(path string) (*mat.Dense, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open energy file %s: %w", path, err)
	}
	defer fh.Close()

	var rows [][]float64

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: file %s, value %q", ErrFormat, path, f)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: file %s has rows of unequal length", ErrFormat, path)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read energy file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file %s contains no data", ErrFormat, path)
	}

	nl, nc := len(rows), len(rows[0])
	out := mat.NewDense(nc, nl, nil)
	for i, row := range rows {
		for j, v := range row {
			out.Set(j, i, v)
		}
	}

	return out, nil
}

// ReadFile loads an energy file as Read does and validates the number of
// entries (columns of the transposed table) when expected is >= 0.
func ReadFile(path string, expected int) (*mat.Dense, error) {
	m, err := Read(path)
	if err != nil {
		return nil, err
	}
	if expected >= 0 {
		if _, c := m.Dims(); c != expected {
			return nil, fmt.Errorf("%w: file %s has %d values, with %d required", ErrSize, path, c, expected)
		}
	}
	return m, nil
}

// ReadSummary returns only the first statistics row of an energy file,
// typically the averages column of a summary written by Write.
func ReadSummary(path string, expected int) ([]float64, error) {
	m, err := ReadFile(path, expected)
	if err != nil {
		return nil, err
	}
	return mat.Row(nil, 0, m), nil
}

// Stats selects the summary statistics emitted by Write. Columns are
// always written in avg, std, min, max order, restricted to the selected
// ones.
type Stats struct {
	Avg bool
	Std bool
	Min bool
	Max bool
}

// Write saves summary statistics of data in fixed 5-decimal format, with
// a header line naming the selected statistics. axis 1 computes each
// statistic across the columns of every row (the trial dimension), axis 0
// across the rows of every column. Standard deviation is the population
// standard deviation.
func Write(path string, data *mat.Dense, stats Stats, axis int) error {
	r, c := data.Dims()
	n := r
	vector := func(i int) []float64 { return mat.Row(nil, i, data) }
	if axis == 0 {
		n = c
		vector = func(i int) []float64 { return mat.Col(nil, i, data) }
	}

	var header []string
	if stats.Avg {
		header = append(header, "avg")
	}
	if stats.Std {
		header = append(header, "std")
	}
	if stats.Min {
		header = append(header, "min")
	}
	if stats.Max {
		header = append(header, "max")
	}

	var b strings.Builder
	b.WriteString("# " + strings.Join(header, "\t") + "\n")
	for i := 0; i < n; i++ {
		v := vector(i)
		var cols []string
		if stats.Avg {
			cols = append(cols, fmt.Sprintf("%.5f", stat.Mean(v, nil)))
		}
		if stats.Std {
			cols = append(cols, fmt.Sprintf("%.5f", stat.PopStdDev(v, nil)))
		}
		if stats.Min {
			cols = append(cols, fmt.Sprintf("%.5f", floats.Min(v)))
		}
		if stats.Max {
			cols = append(cols, fmt.Sprintf("%.5f", floats.Max(v)))
		}
		b.WriteString(strings.Join(cols, " ") + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("couldn't write energy file %s: %w", path, err)
	}
	return nil
}
