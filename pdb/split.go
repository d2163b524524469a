package pdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SplitModels writes every model of the structure to its own PDB file in
// workdir. File names derive from the original file name, with a _model<N>
// suffix and optionally a _checked marker. Returns the written file names.
func (s *Structure) SplitModels(filename string, checked bool, workdir string) ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	suffix := ""
	if checked {
		suffix = "_checked"
	}

	var names []string
	for _, m := range s.Models {
		name := fmt.Sprintf("%s_model%d%s.pdb", base, m.Number, suffix)
		f, err := os.Create(filepath.Join(workdir, name))
		if err != nil {
			return nil, fmt.Errorf("write model file: %w", err)
		}
		err = m.write(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("write model file %s: %w", name, err)
		}
		names = append(names, name)
	}

	return names, nil
}
