package kb

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
)

// PolymerSpeciesType is a species type with an underlying nucleotide or
// amino-acid sequence that loci can address by coordinate.
type PolymerSpeciesType interface {
	SpeciesType
	// Sequence returns the full polymer sequence, 5' to 3' on the
	// positive strand.
	Sequence() (string, error)
	// Length returns the polymer length in monomers.
	Length() (int, error)
	// IsCircular reports whether coordinates wrap around the origin.
	IsCircular() bool
	// IsDoubleStranded reports whether the polymer carries a complement.
	IsDoubleStranded() bool
	// Subsequence extracts the 1-based inclusive range [start, end] on
	// the given strand, 5' to 3'.
	Subsequence(start, end int, strand seq.Strand) (string, error)
}

// DnaSpeciesType is a chromosome or plasmid whose sequence lives in a
// FASTA file on disk, addressed by the species-type id.
type DnaSpeciesType struct {
	SpeciesTypeBase
	Cell           *Cell
	SequencePath   string
	Circular       bool
	DoubleStranded bool
	Ploidy         int
}

func (d *DnaSpeciesType) Kind() Kind {
	return KindDnaSpeciesType
}

func (d *DnaSpeciesType) IsCircular() bool {
	return d.Circular
}

func (d *DnaSpeciesType) IsDoubleStranded() bool {
	return d.DoubleStranded
}

// Sequence reads the chromosome's record from the FASTA file.  The file is
// opened and closed per call; callers that need repeated access should hold
// on to the result.
func (d *DnaSpeciesType) Sequence() (string, error) {
	return seq.ReadRecord(d.SequencePath, d.ID)
}

// Length returns the chromosome length in base pairs.
func (d *DnaSpeciesType) Length() (int, error) {
	s, err := d.Sequence()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// Subsequence extracts [start, end] on the given strand.  On circular
// chromosomes the range may wrap the origin and may span multiple laps.
func (d *DnaSpeciesType) Subsequence(start, end int, strand seq.Strand) (string, error) {
	s, err := d.Sequence()
	if err != nil {
		return "", err
	}
	return seq.StrandSubsequence(s, start, end, strand, d.Circular)
}

// EmpiricalFormula derives the elemental composition from the sequence,
// accounting for strandedness and circularity.
func (d *DnaSpeciesType) EmpiricalFormula() (chem.Formula, error) {
	s, err := d.Sequence()
	if err != nil {
		return nil, err
	}
	return chem.DNAFormula(s, d.Circular, d.DoubleStranded)
}

// Charge derives the net charge from the length, strandedness and
// circularity.
func (d *DnaSpeciesType) Charge() (float64, error) {
	n, err := d.Length()
	if err != nil {
		return 0, err
	}
	return float64(chem.DNACharge(n, d.Circular, d.DoubleStranded)), nil
}

// MolWt derives the molecular weight from the empirical formula.
func (d *DnaSpeciesType) MolWt() (float64, error) {
	return molWtFromFormula(d)
}
