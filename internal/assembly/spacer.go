package assembly

import "fmt"

// CleavageResidues is the curated residue set the default candidate source
// enumerates spacers over. Restricting spacers to residues the proteasome
// likes to cut after keeps the per-junction search tractable without
// losing the candidates that can actually win.
const CleavageResidues = "AGKLRSY"

// CandidateSource enumerates candidate spacer sequences. The zero-length
// spacer (direct fusion) must always be among the candidates. Sources must
// return candidates in a deterministic order.
type CandidateSource interface {
	Candidates(maxLen int) []string
}

// CuratedSource enumerates every sequence over a fixed residue set for
// each length 0..maxLen, shortest first and lexicographic within a length.
type CuratedSource struct {
	Residues string
}

// Candidates implements CandidateSource.
func (s CuratedSource) Candidates(maxLen int) []string {
	residues := s.Residues
	if residues == "" {
		residues = CleavageResidues
	}

	candidates := []string{""}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, prefix := range level {
			for i := 0; i < len(residues); i++ {
				next = append(next, prefix+string(residues[i]))
			}
		}
		candidates = append(candidates, next...)
		level = next
	}
	return candidates
}

// SpacerCandidate is one evaluated spacer between an ordered pair of
// epitopes: its sequence, the cleavage score at the junction boundaries,
// the immunogenicity penalty of the junction windows, and the combined
// cost the solvers minimize.
type SpacerCandidate struct {
	Seq      string
	Cleavage float64
	Immuno   float64
	Cost     float64
}

// SpacerOptimizer finds, for an ordered pair of epitopes, the connecting
// spacer with the lowest combined cost
//
//	alpha*(1-cleavage) + beta*immunogenicity
//
// The immunogenicity penalty is the raw allele-probability-weighted sum of
// binding scores of junction windows exceeding their allele's threshold.
// It is not normalized to [0,1]; alpha and beta weigh the raw terms.
type SpacerOptimizer struct {
	Alleles    []Allele
	Thresholds ThresholdTable
	Cleavage   CleavageScorer
	Binding    BindingScorer
	Source     CandidateSource

	Alpha, Beta float64

	// EpitopeLengths are the window lengths scanned for neo-epitopes.
	// Defaults to {9}.
	EpitopeLengths []int

	// known epitopes, never counted as neo-epitopes
	known map[string]bool
}

// NewSpacerOptimizer prepares an optimizer over the given input epitopes.
// The epitopes themselves are excluded from neo-epitope scoring.
func NewSpacerOptimizer(epitopes []Peptide, alleles []Allele, thresholds ThresholdTable, cleavage CleavageScorer, binding BindingScorer, alpha, beta float64) *SpacerOptimizer {
	known := make(map[string]bool, len(epitopes))
	for _, p := range epitopes {
		known[string(p)] = true
	}

	return &SpacerOptimizer{
		Alleles:        alleles,
		Thresholds:     thresholds,
		Cleavage:       cleavage,
		Binding:        binding,
		Source:         CuratedSource{},
		Alpha:          alpha,
		Beta:           beta,
		EpitopeLengths: []int{9},
		known:          known,
	}
}

// Best searches every candidate spacer of length 0..maxLen between pred
// and succ and returns the one with the minimum combined cost. Ties go to
// the shorter spacer, then the lexicographically smaller sequence, which
// the candidate enumeration order already guarantees.
func (o *SpacerOptimizer) Best(pred, succ Peptide, maxLen int) (SpacerCandidate, error) {
	if err := pred.Validate(); err != nil {
		return SpacerCandidate{}, err
	}
	if err := succ.Validate(); err != nil {
		return SpacerCandidate{}, err
	}

	candidates := o.Source.Candidates(maxLen)
	if len(candidates) == 0 {
		return SpacerCandidate{}, fmt.Errorf("candidate source produced no spacers for max length %d", maxLen)
	}

	best := o.evaluate(pred, succ, candidates[0])
	for _, spacer := range candidates[1:] {
		if c := o.evaluate(pred, succ, spacer); c.Cost < best.Cost {
			best = c
		}
	}
	return best, nil
}

// evaluate scores a single candidate spacer between pred and succ.
func (o *SpacerOptimizer) evaluate(pred, succ Peptide, spacer string) SpacerCandidate {
	fused := string(pred) + spacer + string(succ)

	// cleavage at the two spacer boundaries; a zero-length spacer has a
	// single boundary
	first := o.Cleavage.SiteScore(fused, len(pred)-1)
	cleavage := first
	if len(spacer) > 0 {
		second := o.Cleavage.SiteScore(fused, len(pred)+len(spacer)-1)
		cleavage = (first + second) / 2
	}

	immuno := o.penalty(fused)

	return SpacerCandidate{
		Seq:      spacer,
		Cleavage: cleavage,
		Immuno:   immuno,
		Cost:     o.Alpha*(1-cleavage) + o.Beta*immuno,
	}
}

// penalty aggregates the allele-weighted binding of every window of the
// fused sequence, at each scanned epitope length, that is not one of the
// input epitopes and that exceeds its allele's detection threshold.
func (o *SpacerOptimizer) penalty(fused string) float64 {
	lengths := o.EpitopeLengths
	if len(lengths) == 0 {
		lengths = []int{9}
	}

	total := 0.0
	for _, l := range lengths {
		for start := 0; start+l <= len(fused); start++ {
			window := fused[start : start+l]
			if o.known[window] {
				continue
			}
			for _, a := range o.Alleles {
				score := o.Binding.Affinity(window, a)
				if score > o.Thresholds[a.Name] {
					total += a.Prob * score
				}
			}
		}
	}
	return total
}
