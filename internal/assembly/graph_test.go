package assembly

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testBuilder(threads int) *Builder {
	return &Builder{
		Optimizer:    testOptimizer(0.5, 0, 1, 0),
		MaxSpacerLen: 1,
		Threads:      threads,
	}
}

func Test_Builder_Build(t *testing.T) {
	peptides := []Peptide{"SIINFEKL", "GILGFVFTL", "NLVPMVATV", "GLCTLVAML"}

	g, err := testBuilder(2).Build(peptides)
	if err != nil {
		t.Fatal(err)
	}

	n := g.Len()
	if n != len(peptides) {
		t.Fatalf("graph has %d nodes, want %d", n, len(peptides))
	}

	// exactly n*(n-1) directed edges, no self-loops, none missing
	edges := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			e := g.Edge(i, j)
			if e.From != i || e.To != j {
				t.Fatalf("edge (%d,%d) stored as (%d,%d)", i, j, e.From, e.To)
			}
			edges++
		}
	}
	if edges != n*(n-1) {
		t.Errorf("found %d edges, want %d", edges, n*(n-1))
	}

	costs := g.CostMatrix()
	for i := 0; i < n; i++ {
		if !math.IsInf(costs[i][i], 1) {
			t.Errorf("diagonal cost [%d][%d] = %g, want +Inf", i, i, costs[i][i])
		}
	}
}

func Test_Builder_Build_deterministic(t *testing.T) {
	peptides := []Peptide{"SIINFEKL", "GILGFVFTL", "NLVPMVATV"}

	serial, err := testBuilder(1).Build(peptides)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := testBuilder(8).Build(peptides)
	if err != nil {
		t.Fatal(err)
	}

	// worker count must not change any edge
	if !reflect.DeepEqual(serial.edges, parallel.edges) {
		t.Error("edges differ between 1 and 8 workers")
	}
}

func Test_Builder_Build_errors(t *testing.T) {
	tests := []struct {
		name     string
		peptides []Peptide
		sentinel error
	}{
		{
			"no peptides",
			nil,
			ErrEmptyInput,
		},
		{
			"single peptide",
			[]Peptide{"SIINFEKL"},
			ErrEmptyInput,
		},
		{
			"bad alphabet aborts the build",
			[]Peptide{"SIINFEKL", "GILGFVFTB"},
			ErrInvalidAlphabet,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testBuilder(2).Build(tt.peptides)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Build error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}
