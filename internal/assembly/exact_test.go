package assembly

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func inf() float64 { return math.Inf(1) }

func Test_HeldKarp_Solve(t *testing.T) {
	tests := []struct {
		name  string
		costs [][]float64
		want  []int
	}{
		{
			"two nodes pick the cheaper direction",
			[][]float64{
				{inf(), 5},
				{1, inf()},
			},
			[]int{1, 0},
		},
		{
			"chain is forced by cheap edges",
			[][]float64{
				{inf(), 1, 9, 9},
				{9, inf(), 1, 9},
				{9, 9, inf(), 1},
				{9, 9, 9, inf()},
			},
			[]int{0, 1, 2, 3},
		},
		{
			"asymmetry matters",
			[][]float64{
				{inf(), 10, 1},
				{1, inf(), 10},
				{10, 1, inf()},
			},
			// three cost-2 optima exist; the tie-break keeps the one
			// ending at the lowest node index: 2->1 (1), 1->0 (1)
			[]int{2, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (HeldKarp{}).Solve(tt.costs, SolverOptions{})
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Solve = %v (cost %g), want %v (cost %g)",
					got, pathCost(tt.costs, got), tt.want, pathCost(tt.costs, tt.want))
			}
		})
	}
}

func Test_HeldKarp_Solve_idempotent(t *testing.T) {
	costs := [][]float64{
		{inf(), 2, 7, 3},
		{5, inf(), 1, 6},
		{4, 8, inf(), 2},
		{9, 3, 5, inf()},
	}

	first, err := (HeldKarp{}).Solve(costs, SolverOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := (HeldKarp{}).Solve(costs, SolverOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if pathCost(costs, first) != pathCost(costs, second) {
		t.Errorf("total cost changed between runs: %g then %g",
			pathCost(costs, first), pathCost(costs, second))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("order changed between runs: %v then %v", first, second)
	}
}

func Test_HeldKarp_Solve_uniformTies(t *testing.T) {
	// every edge costs the same; any permutation is optimal but the
	// deterministic tie-break must hand back a valid path
	n := 5
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			if i == j {
				costs[i][j] = inf()
			}
		}
	}

	order, err := (HeldKarp{}).Solve(costs, SolverOptions{})
	if err != nil {
		t.Fatal(err)
	}
	assertPermutation(t, order, n)
	if got := pathCost(costs, order); got != 0 {
		t.Errorf("path cost = %g, want 0", got)
	}
}

func Test_HeldKarp_Solve_infeasible(t *testing.T) {
	// node 2 has no finite in- or out-edges
	costs := [][]float64{
		{inf(), 1, inf()},
		{1, inf(), inf()},
		{inf(), inf(), inf()},
	}

	_, err := (HeldKarp{}).Solve(costs, SolverOptions{})
	if !errors.Is(err, ErrInfeasible) {
		t.Errorf("Solve error = %v, want ErrInfeasible", err)
	}
}

func Test_HeldKarp_Solve_timeout(t *testing.T) {
	n := 12
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			if i == j {
				costs[i][j] = inf()
			} else {
				costs[i][j] = float64(i + j)
			}
		}
	}

	_, err := (HeldKarp{}).Solve(costs, SolverOptions{Timeout: time.Nanosecond})
	if !errors.Is(err, ErrSolverTimeout) {
		t.Errorf("Solve error = %v, want ErrSolverTimeout", err)
	}
}

func Test_SolverOptions_validate(t *testing.T) {
	if err := (SolverOptions{Threads: -1}).validate(); err == nil {
		t.Error("negative thread count should fail")
	}
	if err := (SolverOptions{Timeout: -time.Second}).validate(); err == nil {
		t.Error("negative timeout should fail")
	}
	if err := (SolverOptions{MaxPasses: -2}).validate(); err == nil {
		t.Error("negative pass budget should fail")
	}
	if err := (SolverOptions{Threads: 4, Timeout: time.Minute, DisablePresolve: true}).validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
}

func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()

	if len(order) != n {
		t.Fatalf("order %v visits %d nodes, want %d", order, len(order), n)
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			t.Fatalf("order %v is not a permutation of 0..%d", order, n-1)
		}
		seen[i] = true
	}
}
