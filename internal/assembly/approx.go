package assembly

import "math"

// defaultPasses bounds the or-opt improvement loop when the caller does
// not set SolverOptions.MaxPasses.
const defaultPasses = 64

// GreedyOrOpt is the bundled heuristic backend: nearest-neighbour
// construction tried from every start node, then or-opt single-node
// relocations until a full pass finds no improvement or the pass budget
// runs out. Polynomial, deterministic and with no optimality guarantee;
// the result is always a complete Hamiltonian path.
type GreedyOrOpt struct {
	// Disabled reports the backend as unavailable, forcing callers onto
	// the exact solver.
	Disabled bool
}

// Approximate implements ApproxSolver.
func (g GreedyOrOpt) Approximate(costs [][]float64, opts SolverOptions) ([]int, error) {
	if g.Disabled {
		return nil, ErrUnavailable
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n := len(costs)
	if n == 0 {
		return nil, ErrInfeasible
	}

	var best []int
	bestCost := math.Inf(1)
	for start := 0; start < n; start++ {
		order, ok := nearestNeighbor(costs, start)
		if !ok {
			continue
		}
		if c := pathCost(costs, order); c < bestCost {
			best, bestCost = order, c
		}
	}
	if best == nil {
		return nil, ErrInfeasible
	}

	passes := opts.MaxPasses
	if passes == 0 {
		passes = defaultPasses
	}
	for pass := 0; pass < passes; pass++ {
		improved := false
		// try relocating each node to every other position; unlike 2-opt
		// reversals this keeps all edge directions intact, which matters
		// on an asymmetric matrix
		for from := 0; from < n; from++ {
			for to := 0; to < n; to++ {
				if to == from {
					continue
				}
				moved := relocate(best, from, to)
				if c := pathCost(costs, moved); c < bestCost {
					best, bestCost = moved, c
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return best, nil
}

// nearestNeighbor greedily extends a path from start, always visiting the
// cheapest unvisited successor, lowest index on ties.
func nearestNeighbor(costs [][]float64, start int) ([]int, bool) {
	n := len(costs)
	order := make([]int, 0, n)
	visited := make([]bool, n)

	at := start
	order = append(order, at)
	visited[at] = true
	for len(order) < n {
		next := -1
		for k := 0; k < n; k++ {
			if visited[k] || math.IsInf(costs[at][k], 1) {
				continue
			}
			if next == -1 || costs[at][k] < costs[at][next] {
				next = k
			}
		}
		if next == -1 {
			return nil, false
		}
		order = append(order, next)
		visited[next] = true
		at = next
	}
	return order, true
}

// relocate returns a copy of order with the node at index from reinserted
// at index to.
func relocate(order []int, from, to int) []int {
	moved := make([]int, 0, len(order))
	moved = append(moved, order[:from]...)
	moved = append(moved, order[from+1:]...)

	moved = append(moved, 0)
	copy(moved[to+1:], moved[to:])
	moved[to] = order[from]
	return moved
}
