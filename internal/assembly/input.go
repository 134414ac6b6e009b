package assembly

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadPeptides parses an epitope file: one peptide per line, first
// whitespace-delimited token. Blank lines and lines starting with "#",
// "Epitope" or "Sequence" (common export headers) are skipped.
func ReadPeptides(path string) ([]Peptide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open peptide file: %v", err)
	}
	defer f.Close()

	var peptides []Peptide
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "Epitope") || strings.HasPrefix(line, "Sequence") {
			continue
		}

		p, err := NewPeptide(strings.Fields(line)[0])
		if err != nil {
			return nil, err
		}
		peptides = append(peptides, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read peptide file: %v", err)
	}
	return peptides, nil
}

// ReadAlleles parses an allele file: one "allele,frequency" pair per line,
// with comma, semicolon or whitespace as separator. Only class I alleles
// are kept: the segment after "HLA-" has to start with A, B or C.
func ReadAlleles(path string) ([]Allele, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open allele file: %v", err)
	}
	defer f.Close()

	var alleles []Allele
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.ReplaceAll(line, ",", " ")
		line = strings.ReplaceAll(line, ";", " ")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("allele line %q needs a name and a frequency", line)
		}

		name := fields[0]
		locus := name
		if i := strings.LastIndex(name, "HLA-"); i >= 0 {
			locus = name[i+len("HLA-"):]
		}
		if locus == "" || (locus[0] != 'A' && locus[0] != 'B' && locus[0] != 'C') {
			continue
		}

		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("allele %s has a bad frequency %q: %v", name, fields[1], err)
		}
		alleles = append(alleles, Allele{Name: name, Prob: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read allele file: %v", err)
	}
	return alleles, nil
}
