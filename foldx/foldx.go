// Package foldx builds and executes FoldX runs: structure repair and
// per-position mutation scans, dispatched through the worker pool.
package foldx

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tikz/mutscan/dispatch"
	"github.com/tikz/mutscan/fsutil"
	"github.com/tikz/mutscan/residue"
)

// Config holds the paths and options shared by every FoldX run.
type Config struct {
	Binary   string // FoldX executable
	Runfile  string // runfile template text, empty to use command flags only
	NumRuns  int    // BuildModel runs per mutation
	Link     bool   // symlink input files instead of copying
	Registry *dispatch.Registry
	Logger   *log.Logger
}

// LoadRunfile reads a runfile template from disk.
func LoadRunfile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "couldn't open runfile %s", path)
	}
	return string(data), nil
}

// FillRunfile substitutes $KEY$ placeholders in a runfile template.
func FillRunfile(template string, values map[string]string) string {
	out := template
	for k, v := range values {
		out = strings.ReplaceAll(out, "$"+k+"$", v)
	}
	return out
}

// execute runs the FoldX binary in dir, registering the subprocess so a
// termination signal can kill it. FoldX reports success both with a zero
// exit status and a "run OK" marker in its output.
func (c *Config) execute(dir string, args ...string) error {
	cmd := exec.Command(c.Binary, args...)
	cmd.Dir = dir

	var out strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "couldn't start FoldX")
	}
	if c.Registry != nil {
		c.Registry.Register(cmd.Process)
		defer c.Registry.Release(cmd.Process)
	}
	if err := cmd.Wait(); err != nil {
		return errors.Wrapf(err, "FoldX run failed: %s", tail(out.String()))
	}
	if !strings.Contains(out.String(), "run OK") {
		return errors.Errorf("FoldX did not complete: %s", tail(out.String()))
	}
	return nil
}

// tail returns the last few lines of a FoldX transcript for error context.
func tail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, " / ")
}

// prepare creates the run directory and places the input PDB in it.
func (c *Config) prepare(dir, pdbPath string) error {
	if err := fsutil.MakeDirs(dir, c.Logger); err != nil {
		return err
	}
	return fsutil.Copy(pdbPath, filepath.Join(dir, filepath.Base(pdbPath)), c.Link, c.Logger)
}

// RepairRun runs the RepairPDB command on a PDB file in its own working
// directory. It implements dispatch.Runner.
type RepairRun struct {
	Name string
	Cfg  *Config
	PDB  string // input PDB file path
	Dir  string // working directory
}

// Identifier names the run.
func (r *RepairRun) Identifier() string { return r.Name }

// RepairedPDB returns the path of the repaired structure the run produces.
func (r *RepairRun) RepairedPDB() string {
	base := strings.TrimSuffix(filepath.Base(r.PDB), filepath.Ext(r.PDB))
	return filepath.Join(r.Dir, base+"_Repair.pdb")
}

// Execute prepares the working directory and runs RepairPDB. The repaired
// file must exist afterwards.
func (r *RepairRun) Execute() error {
	if err := r.Cfg.prepare(r.Dir, r.PDB); err != nil {
		return err
	}

	args := []string{
		"--command=RepairPDB",
		"--pdb=" + filepath.Base(r.PDB),
	}
	if r.Cfg.Runfile != "" {
		filled := FillRunfile(r.Cfg.Runfile, map[string]string{
			"PDBS":    filepath.Base(r.PDB),
			"COMMAND": "RepairPDB",
		})
		if err := os.WriteFile(filepath.Join(r.Dir, "runfile.txt"), []byte(filled), 0644); err != nil {
			return errors.Wrap(err, "couldn't write runfile")
		}
		args = []string{"-runfile", "runfile.txt"}
	}

	if err := r.Cfg.execute(r.Dir, args...); err != nil {
		return err
	}
	if _, err := os.Stat(r.RepairedPDB()); err != nil {
		return errors.Errorf("repaired PDB %s was not produced", r.RepairedPDB())
	}
	return nil
}

// MutationRun mutates one residue group to every requested residue type
// with the BuildModel command. It implements dispatch.Runner.
type MutationRun struct {
	Name      string
	Cfg       *Config
	Repaired  string // repaired PDB file path
	Group     residue.Group
	Mutations []string // destination one-letter codes
	Dir       string   // working directory
}

// Identifier names the run.
func (r *MutationRun) Identifier() string { return r.Name }

// IndividualList returns the BuildModel mutant list for the run: one line
// per destination residue type, every chain of the group mutated at once.
func (r *MutationRun) IndividualList() string {
	var b strings.Builder
	for _, m := range r.Mutations {
		muts := make([]string, len(r.Group))
		for i, token := range r.Group {
			muts[i] = token + m
		}
		b.WriteString(strings.Join(muts, ",") + ";\n")
	}
	return b.String()
}

// DifFile returns the path of the Dif fxout file BuildModel produces.
func (r *MutationRun) DifFile() string {
	base := strings.TrimSuffix(filepath.Base(r.Repaired), filepath.Ext(r.Repaired))
	return filepath.Join(r.Dir, "Dif_"+base+".fxout")
}

// Execute prepares the working directory, writes the mutant list and runs
// BuildModel. The energy difference file must exist afterwards.
func (r *MutationRun) Execute() error {
	if err := r.Cfg.prepare(r.Dir, r.Repaired); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.Dir, "individual_list.txt"), []byte(r.IndividualList()), 0644); err != nil {
		return errors.Wrap(err, "couldn't write mutant list")
	}

	nruns := r.Cfg.NumRuns
	if nruns < 1 {
		nruns = 1
	}
	args := []string{
		"--command=BuildModel",
		"--pdb=" + filepath.Base(r.Repaired),
		"--mutant-file=individual_list.txt",
		"--numberOfRuns=" + strconv.Itoa(nruns),
	}
	if r.Cfg.Runfile != "" {
		filled := FillRunfile(r.Cfg.Runfile, map[string]string{
			"PDBS":          filepath.Base(r.Repaired),
			"COMMAND":       "BuildModel",
			"MUTATION_LIST": "individual_list.txt",
			"NRUNS":         strconv.Itoa(nruns),
		})
		if err := os.WriteFile(filepath.Join(r.Dir, "runfile.txt"), []byte(filled), 0644); err != nil {
			return errors.Wrap(err, "couldn't write runfile")
		}
		args = []string{"-runfile", "runfile.txt"}
	}

	if err := r.Cfg.execute(r.Dir, args...); err != nil {
		return err
	}
	if _, err := os.Stat(r.DifFile()); err != nil {
		return errors.Errorf("energy difference file %s was not produced", r.DifFile())
	}
	return nil
}
