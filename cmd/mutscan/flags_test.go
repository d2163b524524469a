package main

import (
	"flag"
	"testing"
)

func TestRegisterOptions(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	vals := registerOptions(fs)

	err := fs.Parse([]string{"-p", "2abc.pdb", "-l", "mutation_list.txt", "-n", "4", "-M=false"})
	if err != nil {
		t.Fatal(err)
	}

	if vals.str("pdb") != "2abc.pdb" {
		t.Errorf("unexpected pdb value: %s", vals.str("pdb"))
	}
	if vals.num("np") != 4 {
		t.Errorf("unexpected np value: %d", vals.num("np"))
	}
	if vals.flag("multimers") {
		t.Error("expected multimers disabled")
	}
	if vals.num("nruns") != 5 {
		t.Errorf("expected default nruns 5, got %d", vals.num("nruns"))
	}
	if err := vals.checkRequired(); err != nil {
		t.Errorf("required options are set: %v", err)
	}
}

func TestLongAliases(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	vals := registerOptions(fs)

	err := fs.Parse([]string{"--pdb", "2abc.pdb", "--mutation-list", "m.txt", "--data-directory", "out"})
	if err != nil {
		t.Fatal(err)
	}
	if vals.str("data-directory") != "out" {
		t.Errorf("unexpected data directory: %s", vals.str("data-directory"))
	}
}

func TestCheckRequired(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	vals := registerOptions(fs)

	if err := fs.Parse([]string{"-p", "2abc.pdb"}); err != nil {
		t.Fatal(err)
	}
	err := vals.checkRequired()
	if err == nil {
		t.Fatal("expected an error for the missing mutation list")
	}
}
