package foldx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tikz/mutscan/residue"
)

func TestFillRunfile(t *testing.T) {
	template := "command=$COMMAND$;\npdb=$PDBS$;\nnumberOfRuns=$NRUNS$;\n"
	filled := FillRunfile(template, map[string]string{
		"COMMAND": "BuildModel",
		"PDBS":    "2abc_Repair.pdb",
		"NRUNS":   "5",
	})
	require.Equal(t, "command=BuildModel;\npdb=2abc_Repair.pdb;\nnumberOfRuns=5;\n", filled)
}

func TestLoadRunfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runfile.txt")
	require.NoError(t, os.WriteFile(path, []byte("command=$COMMAND$;\n"), 0644))

	data, err := LoadRunfile(path)
	require.NoError(t, err)
	require.Equal(t, "command=$COMMAND$;\n", data)

	_, err = LoadRunfile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestIndividualList(t *testing.T) {
	run := &MutationRun{
		Group:     residue.Group{"CA12", "CB12"},
		Mutations: []string{"G", "P"},
	}
	require.Equal(t, "CA12G,CB12G;\nCA12P,CB12P;\n", run.IndividualList())
}

func TestRunPaths(t *testing.T) {
	repair := &RepairRun{PDB: "/work/in/2abc_model0.pdb", Dir: "/work/repair"}
	require.Equal(t, filepath.Join("/work/repair", "2abc_model0_Repair.pdb"), repair.RepairedPDB())

	mut := &MutationRun{Repaired: "/work/repair/2abc_Repair.pdb", Dir: "/work/mut/GA1"}
	require.Equal(t, filepath.Join("/work/mut/GA1", "Dif_2abc_Repair.fxout"), mut.DifFile())
}

func TestParseDif(t *testing.T) {
	content := "FoldX output\n" +
		"Pdb\ttotal energy\tBackbone Hbond\n" +
		"2abc_Repair_1.pdb\t1.25\t0.1\n" +
		"2abc_Repair_2.pdb\t-0.50\t0.1\n" +
		"2abc_Repair_3.pdb\t2.00\t0.1\n" +
		"2abc_Repair_4.pdb\t0.75\t0.1\n"
	path := filepath.Join(t.TempDir(), "Dif_2abc_Repair.fxout")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := ParseDif(path, 2, 2)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 1.25, m.At(0, 0))
	require.Equal(t, -0.5, m.At(0, 1))
	require.Equal(t, 2.0, m.At(1, 0))
	require.Equal(t, 0.75, m.At(1, 1))
}

func TestParseDifSizeMismatch(t *testing.T) {
	content := "2abc_Repair_1.pdb\t1.25\n"
	path := filepath.Join(t.TempDir(), "Dif_2abc_Repair.fxout")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := ParseDif(path, 2, 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "4 required")
}
