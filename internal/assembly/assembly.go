package assembly

import (
	"fmt"
	"strings"
)

// Assembly is the designed string-of-beads: every input epitope exactly
// once, in solver order, with the chosen spacer between each consecutive
// pair. It is the terminal output of a design run and is never mutated,
// only rendered.
type Assembly struct {
	// Peptides in their chosen order
	Peptides []Peptide

	// Spacers[i] sits between Peptides[i] and Peptides[i+1]; a spacer may
	// be empty (direct fusion)
	Spacers []SpacerCandidate

	// Cost is the summed cost of the n-1 chosen junctions
	Cost float64
}

// newAssembly materializes a solver ordering into an Assembly by looking
// up each consecutive pair's stored edge in the graph.
func newAssembly(g *JunctionGraph, order []int) (*Assembly, error) {
	n := g.Len()
	if len(order) != n {
		return nil, fmt.Errorf("order visits %d of %d epitopes: %w", len(order), n, ErrInfeasible)
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return nil, fmt.Errorf("order is not a permutation of the epitopes: %w", ErrInfeasible)
		}
		seen[i] = true
	}

	a := &Assembly{
		Peptides: make([]Peptide, 0, n),
		Spacers:  make([]SpacerCandidate, 0, n-1),
	}
	for idx, i := range order {
		a.Peptides = append(a.Peptides, g.Peptides[i])
		if idx+1 < n {
			edge := g.Edge(i, order[idx+1])
			a.Spacers = append(a.Spacers, edge.Spacer)
			a.Cost += edge.Spacer.Cost
		}
	}
	return a, nil
}

// Sequence renders the assembly as the single concatenated polypeptide.
func (a *Assembly) Sequence() string {
	var sb strings.Builder
	for i, p := range a.Peptides {
		sb.WriteString(string(p))
		if i < len(a.Spacers) {
			sb.WriteString(a.Spacers[i].Seq)
		}
	}
	return sb.String()
}

// String renders the beads with their spacers marked, for logging.
// Ex: SIINFEKL-AAY-GILGFVFTL
func (a *Assembly) String() string {
	parts := make([]string, 0, 2*len(a.Peptides)-1)
	for i, p := range a.Peptides {
		parts = append(parts, string(p))
		if i < len(a.Spacers) && a.Spacers[i].Seq != "" {
			parts = append(parts, a.Spacers[i].Seq)
		}
	}
	return strings.Join(parts, "-")
}
