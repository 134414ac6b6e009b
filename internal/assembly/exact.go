package assembly

import (
	"math"
	"time"
)

// HeldKarp is the bundled exact backend: a dynamic program over residue
// subsets with free path endpoints, O(n^2 * 2^n) time and O(n * 2^n)
// memory. It certifies the optimum, which keeps it interchangeable with an
// ILP backend behind the ExactSolver interface, and honours the wall-clock
// timeout in SolverOptions.
type HeldKarp struct{}

// Solve implements ExactSolver. Tie-breaking is deterministic: candidate
// predecessors and end nodes are scanned in ascending index order and only
// a strictly better cost replaces the incumbent.
func (HeldKarp) Solve(costs [][]float64, opts SolverOptions) ([]int, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := len(costs)
	if n == 0 {
		return nil, ErrInfeasible
	}
	if n == 1 {
		return []int{0}, nil
	}

	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}

	// best[mask][j]: cheapest path visiting exactly the nodes in mask and
	// ending at j
	size := 1 << n
	best := make([][]float64, size)
	parent := make([][]int, size)
	for mask := range best {
		best[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range best[mask] {
			best[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	for j := 0; j < n; j++ {
		best[1<<j][j] = 0 // any node may start the path
	}

	for mask := 1; mask < size; mask++ {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return nil, ErrSolverTimeout
		}

		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 || math.IsInf(best[mask][j], 1) {
				continue
			}
			for k := 0; k < n; k++ {
				if mask&(1<<k) != 0 || math.IsInf(costs[j][k], 1) {
					continue
				}
				next := mask | 1<<k
				if c := best[mask][j] + costs[j][k]; c < best[next][k] {
					best[next][k] = c
					parent[next][k] = j
				}
			}
		}
	}

	full := size - 1
	end := -1
	for j := 0; j < n; j++ {
		if end == -1 || best[full][j] < best[full][end] {
			end = j
		}
	}
	if math.IsInf(best[full][end], 1) {
		return nil, ErrInfeasible
	}

	// walk the parents back to the start
	order := make([]int, n)
	mask, at := full, end
	for i := n - 1; i >= 0; i-- {
		order[i] = at
		prev := parent[mask][at]
		mask &^= 1 << at
		at = prev
	}
	return order, nil
}
