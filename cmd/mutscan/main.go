// mutscan performs a mutational free energy scan over a protein structure:
// every residue is mutated to every requested type with FoldX, and the
// resulting energy differences are summarized per position.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/tikz/mutscan/dispatch"
	"github.com/tikz/mutscan/energy"
	"github.com/tikz/mutscan/foldx"
	"github.com/tikz/mutscan/fsutil"
	"github.com/tikz/mutscan/pdb"
	"github.com/tikz/mutscan/residue"
)

func main() {
	fs := flag.NewFlagSet("mutscan", flag.ExitOnError)
	vals := registerOptions(fs)
	fs.Parse(os.Args[1:])
	if err := vals.checkRequired(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}

	logger := newLogger(vals.flag("verbose"))

	if err := run(vals, logger); err != nil {
		logger.Printf("error: %v", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *log.Logger {
	var w io.Writer = os.Stderr
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "", log.LstdFlags)
}

func run(vals *cliValues, logger *log.Logger) error {
	registry := dispatch.NewRegistry()
	dispatch.HandleSignals(registry, logger)

	structure, err := loadStructure(vals.str("pdb"))
	if err != nil {
		return err
	}
	structure.CheckModels(logger)

	reslist, err := residue.List(structure, vals.flag("multimers"), logger)
	if err != nil {
		return err
	}

	mutations, err := residue.ParseMutationList(vals.str("mutation-list"), logger)
	if err != nil {
		return err
	}

	if path := vals.str("position-list"); path != "" {
		ref, err := residue.ParsePositionList(path, reslist)
		if err != nil {
			return err
		}
		if reslist, err = residue.Filter(reslist, ref); err != nil {
			return err
		}
	}

	names := make([]string, len(reslist))
	for i, g := range reslist {
		names[i] = g.String()
	}
	labels := names
	if path := vals.str("labels"); path != "" {
		if labels, err = residue.ParseLabels(path, names, names, logger); err != nil {
			return err
		}
	}
	labelFor := make(map[string]string, len(names))
	for i, n := range names {
		labelFor[n] = labels[i]
	}

	dataDir := vals.str("data-directory")
	if err := fsutil.MakeDirs(dataDir, logger); err != nil {
		return err
	}
	repairDir := filepath.Join(dataDir, "repair")
	mutationsDir := filepath.Join(dataDir, "mutations")
	resultsDir := filepath.Join(dataDir, "results")
	for _, d := range []string{repairDir, mutationsDir, resultsDir} {
		if err := fsutil.MakeDirs(d, logger); err != nil {
			return err
		}
	}

	models, err := structure.SplitModels(vals.str("pdb"), true, repairDir)
	if err != nil {
		return err
	}

	cfg := &foldx.Config{
		Binary:   vals.str("foldx-binary"),
		NumRuns:  vals.num("nruns"),
		Link:     !vals.flag("nolink"),
		Registry: registry,
		Logger:   logger,
	}
	if path := vals.str("runfile"); path != "" {
		if cfg.Runfile, err = foldx.LoadRunfile(path); err != nil {
			return err
		}
	}

	// Stage 1: repair every model.
	var repairs []dispatch.Runner
	for _, name := range models {
		repairs = append(repairs, &foldx.RepairRun{
			Name: "repair_" + name,
			Cfg:  cfg,
			PDB:  filepath.Join(repairDir, name),
			Dir:  filepath.Join(repairDir, "run_"+name),
		})
	}
	if failed := report(dispatch.RunAll(repairs, vals.num("np"), logger)); failed > 0 {
		return fmt.Errorf("%d repair runs failed", failed)
	}

	// Stage 2: mutate every residue group of the first repaired model.
	repaired := repairs[0].(*foldx.RepairRun).RepairedPDB()
	var runs []dispatch.Runner
	byName := make(map[string]*foldx.MutationRun)
	for _, group := range reslist {
		r := &foldx.MutationRun{
			Name:      group.String(),
			Cfg:       cfg,
			Repaired:  repaired,
			Group:     group,
			Mutations: mutations,
			Dir:       filepath.Join(mutationsDir, group.String()),
		}
		runs = append(runs, r)
		byName[r.Name] = r
	}
	results := dispatch.RunAll(runs, vals.num("np"), logger)
	if failed := report(results); failed > 0 {
		return fmt.Errorf("%d mutation runs failed", failed)
	}

	// Stage 3: summarize energies per position.
	for _, res := range results {
		r := byName[res.Name]
		ddgs, err := foldx.ParseDif(r.DifFile(), len(mutations), cfg.NumRuns)
		if err != nil {
			return err
		}
		out := filepath.Join(resultsDir, outputName(labelFor[r.Name], r.Name))
		stats := energy.Stats{Avg: true, Std: true, Min: true, Max: true}
		if err := energy.Write(out, ddgs, stats, 1); err != nil {
			return err
		}
	}

	return nil
}

// loadStructure reads a local PDB file, or fetches the entry from RCSB
// when the argument is a bare 4-letter code instead of an existing file.
func loadStructure(path string) (*pdb.Structure, error) {
	id := filepath.Base(path)
	if ext := filepath.Ext(id); ext != "" {
		id = id[:len(id)-len(ext)]
	}

	if _, err := os.Stat(path); err == nil {
		return pdb.ReadStructure(id, path)
	}
	if len(path) == 4 && filepath.Base(path) == path {
		return pdb.Fetch(path)
	}
	return nil, fmt.Errorf("couldn't read PDB file %s", path)
}

// outputName picks the summary file name for a position: the label when
// it is usable as a plain file name, the group identifier otherwise. A
// label with a path separator must not escape the results directory.
func outputName(label, name string) string {
	if label == "" || label == "." || label == ".." || label != filepath.Base(label) {
		return name
	}
	return label
}

// report prints one status line per run and returns the failure count.
func report(results []dispatch.Result) int {
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, r := range results {
		if r.Ok() {
			fmt.Printf("%s %s\n", ok("DONE"), r.Name)
		} else {
			fmt.Printf("%s %s: %v\n", fail("FAIL"), r.Name, r.Err)
			failed++
		}
	}
	return failed
}
