package assembly

import "math"

// matrixCleavage is a position-weight-matrix cleavage predictor. It scores
// the residues in a fixed window around the candidate site (P5..P1 before
// the cut, P1' after it) and squashes the weighted sum
// through a logistic so every method reports a likelihood in (0, 1).
//
// The residue propensities are a compact consensus of the published
// proteasomal preferences: hydrophobic and basic residues favoured at P1,
// proline disfavoured on either side of the cut. The three method names
// differ in how much weight the flanking positions carry.
type matrixCleavage struct {
	// position weights for offsets -4..+1 relative to the cut
	positions [6]float64
	intercept float64
}

// p1Propensity is the per-residue cleavage propensity at the P1 position
// (the residue directly before the cut).
var p1Propensity = map[byte]float64{
	'A': 0.6, 'C': -0.2, 'D': -0.8, 'E': -0.6, 'F': 1.1,
	'G': 0.1, 'H': 0.2, 'I': 0.5, 'K': 0.9, 'L': 1.2,
	'M': 0.7, 'N': -0.3, 'P': -1.6, 'Q': -0.1, 'R': 1.0,
	'S': 0.2, 'T': 0.0, 'V': 0.4, 'W': 0.8, 'Y': 1.1,
}

func newMatrixCleavage(method string) *matrixCleavage {
	switch method {
	case "proteasmm_c":
		// constitutive proteasome, flanks matter more
		return &matrixCleavage{
			positions: [6]float64{0.15, 0.2, 0.3, 0.45, 1.0, 0.5},
			intercept: -0.1,
		}
	case "proteasmm_i":
		// immunoproteasome, stronger P1 dominance
		return &matrixCleavage{
			positions: [6]float64{0.1, 0.1, 0.2, 0.35, 1.2, 0.4},
			intercept: 0.1,
		}
	default: // pcm
		return &matrixCleavage{
			positions: [6]float64{0.1, 0.15, 0.25, 0.4, 1.0, 0.45},
			intercept: 0.0,
		}
	}
}

// SiteScore implements CleavageScorer. Positions outside the fused
// sequence contribute nothing, so sites near either end are still scored.
func (m *matrixCleavage) SiteScore(fused string, pos int) float64 {
	raw := m.intercept
	for i, w := range m.positions {
		at := pos + i - 4 // window covers fused[pos-4 .. pos+1]
		if at < 0 || at >= len(fused) {
			continue
		}
		raw += w * p1Propensity[fused[at]]
	}
	return 1.0 / (1.0 + math.Exp(-raw))
}
