// Package assembly designs string-of-beads polypeptide vaccines. It orders
// a set of epitopes and picks a short spacer for each junction so the
// proteasome liberates the epitopes efficiently while any new peptides
// created at the junctions stay below the HLA binding thresholds.
package assembly

import (
	"errors"
	"fmt"
	"strings"
)

// AminoAcids is the canonical 20-letter amino-acid alphabet.
const AminoAcids = "ACDEFGHIKLMNPQRSTVWY"

var (
	// ErrInvalidAlphabet is returned when a peptide contains a symbol
	// outside the 20-letter amino-acid alphabet.
	ErrInvalidAlphabet = errors.New("invalid amino-acid alphabet")

	// ErrEmptyInput is returned when fewer than two epitopes are supplied:
	// there is no ordering problem to solve.
	ErrEmptyInput = errors.New("fewer than two epitopes")
)

// Peptide is an immutable amino-acid sequence. Two peptides are the same
// epitope iff their sequence strings match.
type Peptide string

// NewPeptide uppercases seq and validates it against the amino-acid alphabet.
func NewPeptide(seq string) (Peptide, error) {
	p := Peptide(strings.ToUpper(strings.TrimSpace(seq)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks every residue against the amino-acid alphabet.
func (p Peptide) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("empty peptide: %w", ErrInvalidAlphabet)
	}
	for i := 0; i < len(p); i++ {
		if !strings.ContainsRune(AminoAcids, rune(p[i])) {
			return fmt.Errorf("peptide %s has unknown residue %q at position %d: %w", string(p), p[i], i, ErrInvalidAlphabet)
		}
	}
	return nil
}

// Allele is an HLA allele with its frequency in the target population.
// Frequencies are relative weights and need not sum to 1.
type Allele struct {
	Name string
	Prob float64
}

// ThresholdTable maps an allele name to the binding score above which a
// peptide counts as immunogenic for that allele.
type ThresholdTable map[string]float64

// NewThresholdTable applies a single detection threshold to every allele.
func NewThresholdTable(alleles []Allele, threshold float64) ThresholdTable {
	table := make(ThresholdTable, len(alleles))
	for _, a := range alleles {
		table[a.Name] = threshold
	}
	return table
}
