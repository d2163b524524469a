package residue

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFilterOrderAndSubset(t *testing.T) {
	reslist := []Group{{"YA9"}, {"TA10"}, {"KB2"}}
	ref := [][]string{{"A10"}, {"B2"}, {"A9"}}

	out, err := Filter(reslist, ref)
	if err != nil {
		t.Fatal(err)
	}

	// Chain first, then numeric residue number: A9 sorts before A10.
	expected := []string{"YA9", "TA10", "KB2"}
	if len(out) != len(expected) {
		t.Fatalf("expected %d groups, got %d", len(expected), len(out))
	}
	for i, g := range out {
		if g.String() != expected[i] {
			t.Errorf("expected %s at position %d, got %s", expected[i], i, g.String())
		}
	}
}

func TestFilterHomomerGroups(t *testing.T) {
	reslist := []Group{{"GA1", "GB1"}, {"AA2", "AB2"}}

	out, err := Filter(reslist, [][]string{{"A2", "B2"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].String() != "AA2_AB2" {
		t.Errorf("unexpected result: %v", out)
	}

	// A single chain of the group still identifies it.
	out, err = Filter(reslist, [][]string{{"B1"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].String() != "GA1_GB1" {
		t.Errorf("unexpected result: %v", out)
	}
}

func TestFilterNotFound(t *testing.T) {
	reslist := []Group{{"YA9"}}

	_, err := Filter(reslist, [][]string{{"Z9"}})
	if err == nil {
		t.Fatal("expected an error for an unknown position")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Z9") {
		t.Errorf("error should name the offending position: %v", err)
	}
}

func TestFilterIdempotent(t *testing.T) {
	reslist := []Group{{"KB2"}, {"TA10"}, {"YA9"}}

	full := make([][]string, len(reslist))
	for i, g := range reslist {
		full[i] = g.Stripped()
	}

	once, err := Filter(reslist, full)
	if err != nil {
		t.Fatal(err)
	}

	again := make([][]string, len(once))
	for i, g := range once {
		again[i] = g.Stripped()
	}
	twice, err := Filter(once, again)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent: %v vs %v", once, twice)
	}
	if once[0].String() != "YA9" || once[1].String() != "TA10" || once[2].String() != "KB2" {
		t.Errorf("unexpected sort order: %v", once)
	}
}
