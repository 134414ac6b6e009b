package assembly

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// JunctionEdge is one directed edge of the junction graph: the best spacer
// found between an ordered pair of epitopes and its combined cost.
type JunctionEdge struct {
	From, To int // indices into the graph's peptide slice
	Spacer   SpacerCandidate
}

// JunctionGraph is the complete directed graph over the input epitopes.
// Every ordered pair (i, j), i != j, carries exactly one edge; there are
// no self-loops. The graph is immutable once built.
type JunctionGraph struct {
	Peptides []Peptide

	// edges[i][j] is the edge from peptide i to peptide j; the diagonal
	// is unused
	edges [][]JunctionEdge
}

// Edge returns the edge from peptide i to peptide j.
func (g *JunctionGraph) Edge(i, j int) JunctionEdge {
	return g.edges[i][j]
}

// Len returns the number of epitopes in the graph.
func (g *JunctionGraph) Len() int {
	return len(g.Peptides)
}

// CostMatrix renders the graph as the asymmetric cost matrix the solvers
// consume. The diagonal is +Inf.
func (g *JunctionGraph) CostMatrix() [][]float64 {
	n := g.Len()
	costs := make([][]float64, n)
	for i := 0; i < n; i++ {
		costs[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				costs[i][j] = math.Inf(1)
				continue
			}
			costs[i][j] = g.edges[i][j].Spacer.Cost
		}
	}
	return costs
}

// Builder evaluates all n*(n-1) ordered epitope pairs and assembles the
// junction graph. Edge evaluations are independent and read-only over the
// optimizer's inputs, so they are fanned out across Threads workers; each
// worker writes to its own disjoint slots of the edge matrix, so the
// result is identical for any worker count.
type Builder struct {
	Optimizer    *SpacerOptimizer
	MaxSpacerLen int

	// Threads is the worker count; it defaults to all logical CPUs.
	Threads int
}

// Build validates the peptides, evaluates every ordered pair in parallel
// and returns the completed graph. A peptide outside the amino-acid
// alphabet aborts the whole build: a missing edge would corrupt the
// Hamiltonian-path formulation downstream.
func (b *Builder) Build(peptides []Peptide) (*JunctionGraph, error) {
	if len(peptides) < 2 {
		return nil, fmt.Errorf("%d peptide(s) supplied: %w", len(peptides), ErrEmptyInput)
	}
	for _, p := range peptides {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	threads := b.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	n := len(peptides)
	edges := make([][]JunctionEdge, n)
	for i := range edges {
		edges[i] = make([]JunctionEdge, n)
	}

	// immutable work list of ordered pairs
	type pair struct{ i, j int }
	work := make([]pair, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				work = append(work, pair{i, j})
			}
		}
	}

	jobs := make(chan pair, threads*2)
	errs := make([][]error, n)
	for i := range errs {
		errs[i] = make([]error, n)
	}

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				// every (i, j) slot is written by exactly one worker,
				// no locking needed
				spacer, err := b.Optimizer.Best(peptides[p.i], peptides[p.j], b.MaxSpacerLen)
				if err != nil {
					errs[p.i][p.j] = err
					continue
				}
				edges[p.i][p.j] = JunctionEdge{From: p.i, To: p.j, Spacer: spacer}
			}
		}()
	}

	for _, p := range work {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	for _, p := range work {
		if err := errs[p.i][p.j]; err != nil {
			return nil, fmt.Errorf("junction %s -> %s: %w", peptides[p.i], peptides[p.j], err)
		}
	}

	return &JunctionGraph{Peptides: peptides, edges: edges}, nil
}
