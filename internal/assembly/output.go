package assembly

import (
	"fmt"
	"os"
	"sort"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
	"golang.org/x/exp/maps"
)

// outputHeader names the single record in the output file.
const outputHeader = "assembled_spacer_design"

// Write serializes the assembly as a single FASTA record: the design
// header followed by the concatenated epitope/spacer string.
func Write(path string, a *Assembly) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer f.Close()

	w := fasta.NewWriter(f)
	if err := w.Write(seq.NewSequenceString(outputHeader, a.Sequence())); err != nil {
		return fmt.Errorf("failed to write the design: %v", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write the design: %v", err)
	}
	return nil
}

// Summarize logs the chosen order, the spacers and the per-junction costs.
func Summarize(a *Assembly, thresholds ThresholdTable) {
	stderr.Printf("assembled %d epitopes: %s", len(a.Peptides), a)
	for i, s := range a.Spacers {
		spacer := s.Seq
		if spacer == "" {
			spacer = "(direct fusion)"
		}
		stderr.Printf(
			"  %s | %s %s cleavage=%.3f immunogenicity=%.3f cost=%.3f",
			a.Peptides[i], a.Peptides[i+1], spacer, s.Cleavage, s.Immuno, s.Cost,
		)
	}

	alleles := maps.Keys(thresholds)
	sort.Strings(alleles)
	stderr.Printf("total junction cost %.3f over %d allele(s) %v", a.Cost, len(alleles), alleles)
}
