package chem

import (
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Monomer composition tables.  Nucleotides are in monophosphate form, amino
// acids as the free acids; condensation-bond corrections are applied by the
// polymer derivations below.
var (
	dnmpFormulas = map[byte]Formula{
		'A': MustParseFormula("C10H12N5O6P"),
		'C': MustParseFormula("C9H12N3O7P"),
		'G': MustParseFormula("C10H12N5O7P"),
		'T': MustParseFormula("C10H13N2O8P"),
	}

	nmpFormulas = map[byte]Formula{
		'A': MustParseFormula("C10H12N5O7P"),
		'C': MustParseFormula("C9H12N3O8P"),
		'G': MustParseFormula("C10H12N5O8P"),
		'U': MustParseFormula("C9H11N2O9P"),
	}

	aminoAcidFormulas = map[byte]Formula{
		'A': MustParseFormula("C3H7NO2"),
		'R': MustParseFormula("C6H14N4O2"),
		'N': MustParseFormula("C4H8N2O3"),
		'D': MustParseFormula("C4H7NO4"),
		'C': MustParseFormula("C3H7NO2S"),
		'E': MustParseFormula("C5H9NO4"),
		'Q': MustParseFormula("C5H10N2O3"),
		'G': MustParseFormula("C2H5NO2"),
		'H': MustParseFormula("C6H9N3O2"),
		'I': MustParseFormula("C6H13NO2"),
		'L': MustParseFormula("C6H13NO2"),
		'K': MustParseFormula("C6H14N2O2"),
		'M': MustParseFormula("C5H11NO2S"),
		'F': MustParseFormula("C9H11NO2"),
		'P': MustParseFormula("C5H9NO2"),
		'S': MustParseFormula("C3H7NO3"),
		'T': MustParseFormula("C4H9NO3"),
		'W': MustParseFormula("C11H12N2O2"),
		'Y': MustParseFormula("C9H11NO3"),
		'V': MustParseFormula("C5H11NO2"),
	}

	hydroxide = MustParseFormula("OH")
	water     = MustParseFormula("H2O")
)

// countMonomers tallies the monomer composition of seq against the given
// alphabet.  The ambiguity symbol "N" contributes an average-composition
// placeholder: 1/n of every concrete monomer.
func countMonomers(seq string, alphabet map[byte]Formula) (map[byte]float64, error) {
	counts := map[byte]float64{}
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if _, ok := alphabet[b]; ok {
			counts[b]++
			continue
		}
		if b == 'N' {
			frac := 1.0 / float64(len(alphabet))
			for m := range alphabet {
				counts[m] += frac
			}
			continue
		}
		return nil, errors.New(errors.ErrCodeSeqUnknownSymbol, "unknown monomer symbol").
			WithDetail(string(rune(b)))
	}
	return counts, nil
}

// DNAFormula derives the empirical formula of a DNA species from its
// positive-strand sequence.  Per bonded strand one hydroxide is removed per
// phosphodiester bond: length−1 bonds when linear, length when circularity
// closes the loop.  A double-stranded species adds the complementary strand's
// residues and its own bond correction.
func DNAFormula(seq string, circular, doubleStranded bool) (Formula, error) {
	counts, err := countMonomers(seq, dnmpFormulas)
	if err != nil {
		return nil, err
	}
	if doubleStranded {
		counts = map[byte]float64{
			'A': counts['A'] + counts['T'],
			'T': counts['T'] + counts['A'],
			'C': counts['C'] + counts['G'],
			'G': counts['G'] + counts['C'],
		}
	}

	f := Formula{}
	for m, n := range counts {
		f = f.AddScaled(dnmpFormulas[m], n)
	}

	bonds := float64(len(seq) - 1)
	if circular {
		bonds = float64(len(seq))
	}
	if doubleStranded {
		bonds *= 2
	}
	return f.AddScaled(hydroxide, -bonds), nil
}

// DNACharge derives the net charge of a DNA species: one negative charge per
// phosphate, plus one for the free 5' phosphate of a linear strand.
func DNACharge(length int, circular, doubleStranded bool) int {
	charge := -length
	if !circular {
		charge--
	}
	if doubleStranded {
		charge *= 2
	}
	return charge
}

// RNAFormula derives the empirical formula of a linear single-stranded RNA
// from its sequence, removing one hydroxide per phosphodiester bond.
func RNAFormula(seq string) (Formula, error) {
	counts, err := countMonomers(seq, nmpFormulas)
	if err != nil {
		return nil, err
	}
	f := Formula{}
	for m, n := range counts {
		f = f.AddScaled(nmpFormulas[m], n)
	}
	return f.AddScaled(hydroxide, -float64(len(seq)-1)), nil
}

// RNACharge derives the net charge of a linear RNA: one negative charge per
// phosphate plus one for the free 5' phosphate.
func RNACharge(length int) int {
	return -length - 1
}

// ProteinFormula derives the empirical formula of a protein from its amino
// acid sequence, removing one water per peptide bond.
func ProteinFormula(seq string) (Formula, error) {
	counts, err := countMonomers(seq, aminoAcidFormulas)
	if err != nil {
		return nil, err
	}
	f := Formula{}
	for m, n := range counts {
		f = f.AddScaled(aminoAcidFormulas[m], n)
	}
	return f.AddScaled(water, -float64(len(seq)-1)), nil
}

// ProteinCharge estimates the net charge of a protein at physiological pH as
// the count of basic residues (R, K) minus acidic residues (D, E).
func ProteinCharge(seq string) int {
	charge := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'R', 'K':
			charge++
		case 'D', 'E':
			charge--
		}
	}
	return charge
}
