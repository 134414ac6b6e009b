package assembly

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Params are the inputs of one design run.
type Params struct {
	Peptides   []Peptide
	Alleles    []Allele
	Thresholds ThresholdTable

	// MaxSpacerLen is the upper bound K on spacer length; zero restricts
	// the search to direct fusion.
	MaxSpacerLen int

	// Alpha weighs epitope recovery (cleavage), Beta weighs neo-epitope
	// immunogenicity avoidance. Both must be >= 0.
	Alpha, Beta float64

	// CleavageMethod and BindingMethod name the prediction strategies.
	CleavageMethod string
	BindingMethod  string

	// EpitopeLengths are the neo-epitope window lengths; defaults to {9}.
	EpitopeLengths []int

	// Threads sizes the junction evaluation worker pool; zero means all
	// logical CPUs.
	Threads int

	// ApproximateFirst tries the heuristic solver before the exact one.
	ApproximateFirst bool

	// Timeout bounds each solve attempt; zero means no limit.
	Timeout time.Duration
}

func (p Params) validate() error {
	if p.Alpha < 0 || p.Beta < 0 {
		return fmt.Errorf("alpha and beta must be >= 0, got %g and %g", p.Alpha, p.Beta)
	}
	if p.MaxSpacerLen < 0 {
		return fmt.Errorf("max spacer length must be >= 0, got %d", p.MaxSpacerLen)
	}
	return nil
}

// Design builds the junction graph over the input epitopes and solves for
// the cheapest ordering.
//
// Solver policy: the heuristic runs first only when asked for, falling
// back to the exact solver if it is unavailable; otherwise the exact
// solver runs, falling back to the heuristic if it times out. Only
// solver-level failures trigger fallback; graph-level failures (bad
// alphabet, too few epitopes) abort the run with no partial result.
func Design(p Params) (*Assembly, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	cleavage, err := CleavageMethod(p.CleavageMethod)
	if err != nil {
		return nil, err
	}
	binding, err := BindingMethod(p.BindingMethod)
	if err != nil {
		return nil, err
	}

	optimizer := NewSpacerOptimizer(p.Peptides, p.Alleles, p.Thresholds, cleavage, binding, p.Alpha, p.Beta)
	if len(p.EpitopeLengths) > 0 {
		optimizer.EpitopeLengths = p.EpitopeLengths
	}

	builder := &Builder{
		Optimizer:    optimizer,
		MaxSpacerLen: p.MaxSpacerLen,
		Threads:      p.Threads,
	}
	graph, err := builder.Build(p.Peptides)
	if err != nil {
		return nil, err
	}

	order, err := solve(graph.CostMatrix(), p)
	if err != nil {
		return nil, err
	}
	return newAssembly(graph, order)
}

func solve(costs [][]float64, p Params) ([]int, error) {
	opts := SolverOptions{
		Threads:         p.Threads,
		Timeout:         p.Timeout,
		DisablePresolve: true, // keep the path formulation's symmetry intact
	}
	exact := HeldKarp{}
	approx := GreedyOrOpt{}

	if p.ApproximateFirst {
		order, err := approx.Approximate(costs, opts)
		if errors.Is(err, ErrUnavailable) {
			stderr.Println("approximate solver unavailable, solving exactly")
			return exact.Solve(costs, opts)
		}
		return order, err
	}

	order, err := exact.Solve(costs, opts)
	if errors.Is(err, ErrSolverTimeout) {
		stderr.Println("exact solver timed out, falling back to the heuristic")
		if order, herr := approx.Approximate(costs, opts); herr == nil {
			return order, nil
		}
		return nil, err
	}
	return order, err
}
