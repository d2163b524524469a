package main

import (
	"flag"
	"fmt"
	"strings"
)

type optKind int

const (
	optString optKind = iota
	optBool
	optInt
)

// option describes one command line flag: long name, short alias, help
// text, whether it must be set, and its default. The table replaces
// per-flag registration code.
type option struct {
	name     string
	short    string
	help     string
	kind     optKind
	required bool
	defStr   string
	defBool  bool
	defInt   int
}

var options = []option{
	{name: "pdb", short: "p", help: "input PDB file, or a 4-letter code to fetch from RCSB", kind: optString, required: true},
	{name: "mutation-list", short: "l", help: "mutation list file", kind: optString, required: true},
	{name: "position-list", short: "q", help: "position list file", kind: optString},
	{name: "labels", short: "b", help: "residue label list file", kind: optString},
	{name: "data-directory", short: "d", help: "output data directory", kind: optString, defStr: "results"},
	{name: "foldx-binary", short: "x", help: "FoldX executable", kind: optString, defStr: "foldx"},
	{name: "runfile", short: "f", help: "FoldX runfile template", kind: optString},
	{name: "multimers", short: "M", help: "detect multimers and mutate identical chains together", kind: optBool, defBool: true},
	{name: "nolink", short: "L", help: "copy input files instead of symlinking them", kind: optBool},
	{name: "np", short: "n", help: "number of parallel FoldX runs", kind: optInt, defInt: 1},
	{name: "nruns", short: "r", help: "number of BuildModel runs per mutation", kind: optInt, defInt: 5},
	{name: "verbose", short: "v", help: "toggle verbose mode", kind: optBool},
}

// cliValues holds the parsed flag values, addressed by option name.
type cliValues struct {
	strs  map[string]*string
	bools map[string]*bool
	ints  map[string]*int
}

func (v *cliValues) str(name string) string { return *v.strs[name] }
func (v *cliValues) flag(name string) bool  { return *v.bools[name] }
func (v *cliValues) num(name string) int    { return *v.ints[name] }

// registerOptions walks the option table and registers every entry under
// both its long name and its short alias.
func registerOptions(fs *flag.FlagSet) *cliValues {
	v := &cliValues{
		strs:  make(map[string]*string),
		bools: make(map[string]*bool),
		ints:  make(map[string]*int),
	}
	for _, opt := range options {
		switch opt.kind {
		case optString:
			p := new(string)
			fs.StringVar(p, opt.name, opt.defStr, opt.help)
			fs.StringVar(p, opt.short, opt.defStr, opt.help)
			v.strs[opt.name] = p
		case optBool:
			p := new(bool)
			fs.BoolVar(p, opt.name, opt.defBool, opt.help)
			fs.BoolVar(p, opt.short, opt.defBool, opt.help)
			v.bools[opt.name] = p
		case optInt:
			p := new(int)
			fs.IntVar(p, opt.name, opt.defInt, opt.help)
			fs.IntVar(p, opt.short, opt.defInt, opt.help)
			v.ints[opt.name] = p
		}
	}
	return v
}

// checkRequired verifies that every required option was given a value.
func (v *cliValues) checkRequired() error {
	var missing []string
	for _, opt := range options {
		if opt.required && opt.kind == optString && v.str(opt.name) == "" {
			missing = append(missing, "-"+opt.short+" (--"+opt.name+")")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required options: %s", strings.Join(missing, ", "))
	}
	return nil
}
