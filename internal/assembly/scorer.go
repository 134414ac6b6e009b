package assembly

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// CleavageScorer predicts proteasomal cleavage. Implementations are pure
// functions of the fused sequence and are safe for concurrent use.
type CleavageScorer interface {
	// SiteScore returns the likelihood, in [0, 1], that the proteasome
	// cleaves directly after position pos of fused (between pos and pos+1).
	SiteScore(fused string, pos int) float64
}

// BindingScorer predicts how strongly a peptide window binds an HLA allele.
// The returned score is compared against the allele's detection threshold;
// higher means stronger predicted binding. Implementations are safe for
// concurrent use.
type BindingScorer interface {
	Affinity(window string, allele Allele) float64
}

// Method registries. The CLI selects a strategy by name once, up front;
// the chosen scorer is then injected into the optimizer so nothing consults
// a global table during a run.
var (
	cleavageMethods = map[string]func() CleavageScorer{
		"pcm":         func() CleavageScorer { return newMatrixCleavage("pcm") },
		"proteasmm_c": func() CleavageScorer { return newMatrixCleavage("proteasmm_c") },
		"proteasmm_i": func() CleavageScorer { return newMatrixCleavage("proteasmm_i") },
	}

	bindingMethods = map[string]func() BindingScorer{
		"syfpeithi": func() BindingScorer { return newAnchorBinding("syfpeithi") },
		"smm":       func() BindingScorer { return newAnchorBinding("smm") },
		"smmpmbec":  func() BindingScorer { return newAnchorBinding("smmpmbec") },
		"bimas":     func() BindingScorer { return newAnchorBinding("bimas") },
	}
)

// CleavageMethod looks up a cleavage prediction method by name.
func CleavageMethod(name string) (CleavageScorer, error) {
	build, ok := cleavageMethods[name]
	if !ok {
		return nil, fmt.Errorf("unknown cleavage method %q, choose one of %v", name, methodNames(cleavageMethods))
	}
	return build(), nil
}

// BindingMethod looks up an epitope binding prediction method by name.
func BindingMethod(name string) (BindingScorer, error) {
	build, ok := bindingMethods[name]
	if !ok {
		return nil, fmt.Errorf("unknown binding method %q, choose one of %v", name, methodNames(bindingMethods))
	}
	return build(), nil
}

func methodNames[T any](methods map[string]func() T) []string {
	names := maps.Keys(methods)
	sort.Strings(names)
	return names
}
