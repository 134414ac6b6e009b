package assembly

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInfeasible is returned when no valid Hamiltonian path exists.
	// Structurally impossible on a complete graph, but a backend must
	// surface it rather than hand back an empty assembly.
	ErrInfeasible = errors.New("no feasible epitope ordering")

	// ErrSolverTimeout is returned when a backend cannot certify an
	// optimum within its wall-clock budget.
	ErrSolverTimeout = errors.New("solver timed out")

	// ErrUnavailable signals that the approximate backend cannot run.
	// It is a fallback signal, not a failure.
	ErrUnavailable = errors.New("approximate solver unavailable")
)

// SolverOptions are the recognized tuning knobs, validated up front rather
// than passed through as an opaque map.
type SolverOptions struct {
	// Threads is passed through to backends that parallelize internally.
	Threads int

	// Timeout bounds the wall-clock time of a single solve. Zero means
	// no limit.
	Timeout time.Duration

	// DisablePresolve is forwarded to ILP backends; some destroy the
	// symmetry of the path formulation unless presolve is off. The
	// bundled backends ignore it.
	DisablePresolve bool

	// MaxPasses bounds the heuristic's improvement passes. Zero means
	// the backend's default.
	MaxPasses int
}

func (o SolverOptions) validate() error {
	if o.Threads < 0 {
		return fmt.Errorf("solver threads must be >= 0, got %d", o.Threads)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("solver timeout must be >= 0, got %v", o.Timeout)
	}
	if o.MaxPasses < 0 {
		return fmt.Errorf("solver max passes must be >= 0, got %d", o.MaxPasses)
	}
	return nil
}

// ExactSolver finds a certified minimum-cost Hamiltonian path over an
// asymmetric cost matrix. costs[i][j] is the cost of visiting j directly
// after i; the diagonal is ignored and +Inf marks a missing edge. The
// returned order visits every index exactly once.
type ExactSolver interface {
	Solve(costs [][]float64, opts SolverOptions) ([]int, error)
}

// ApproxSolver finds a good-but-uncertified Hamiltonian path, or reports
// ErrUnavailable so the caller can fall back to the exact solver. It never
// returns a partial path.
type ApproxSolver interface {
	Approximate(costs [][]float64, opts SolverOptions) ([]int, error)
}

// pathCost sums the directed edge costs along an ordering.
func pathCost(costs [][]float64, order []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += costs[order[i]][order[i+1]]
	}
	return total
}
