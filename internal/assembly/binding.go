package assembly

import "strings"

// anchorBinding is a SYFPEITHI-style anchor-position scorer. A window is
// scored by how well its second residue and its C terminus match the
// allele's anchor preferences, with small contributions from favourable
// interior residues. Scores land on the familiar SYFPEITHI scale, roughly
// 0..36, so the default detection threshold of 20 is meaningful.
//
// The anchor table covers the common A, B and C loci by allele prefix and
// falls back to a generic hydrophobic motif for everything else. The four
// method names share the anchors and differ only in scale, mirroring how
// the corresponding predictors rank peptides similarly but report
// different units.
type anchorBinding struct {
	scale float64
}

type anchorPrefs struct {
	p2, cterm string // strongly preferred residues
	aux       string // weakly preferred interior residues
}

var anchorTable = map[string]anchorPrefs{
	"A*01": {p2: "TS", cterm: "Y", aux: "DE"},
	"A*02": {p2: "LMIV", cterm: "VLI", aux: "AGK"},
	"A*03": {p2: "LVIM", cterm: "KRY", aux: "AST"},
	"A*11": {p2: "VIM", cterm: "KR", aux: "AST"},
	"A*24": {p2: "YF", cterm: "FLI", aux: "ME"},
	"B*07": {p2: "P", cterm: "LF", aux: "AR"},
	"B*08": {p2: "KR", cterm: "LI", aux: "DK"},
	"B*15": {p2: "QL", cterm: "YF", aux: "SI"},
	"B*27": {p2: "R", cterm: "KRL", aux: "NF"},
	"B*44": {p2: "E", cterm: "YFW", aux: "DI"},
	"C*04": {p2: "YF", cterm: "LF", aux: "PD"},
	"C*07": {p2: "YR", cterm: "YFL", aux: "SP"},
}

var genericAnchors = anchorPrefs{p2: "LMIV", cterm: "VLIFY", aux: "A"}

func newAnchorBinding(method string) *anchorBinding {
	switch method {
	case "smm":
		return &anchorBinding{scale: 0.9}
	case "smmpmbec":
		return &anchorBinding{scale: 0.95}
	case "bimas":
		return &anchorBinding{scale: 1.1}
	default: // syfpeithi
		return &anchorBinding{scale: 1.0}
	}
}

// Affinity implements BindingScorer.
func (b *anchorBinding) Affinity(window string, allele Allele) float64 {
	if len(window) < 8 {
		return 0
	}

	prefs := genericAnchors
	for prefix, p := range anchorTable {
		if strings.HasPrefix(strings.TrimPrefix(allele.Name, "HLA-"), prefix) {
			prefs = p
			break
		}
	}

	score := 0.0
	if strings.IndexByte(prefs.p2, window[1]) >= 0 {
		score += 10
	}
	if strings.IndexByte(prefs.cterm, window[len(window)-1]) >= 0 {
		score += 10
	}
	for i := 2; i < len(window)-1; i++ {
		if strings.IndexByte(prefs.aux, window[i]) >= 0 {
			score += 2
		}
	}
	return b.scale * score
}
