// Package prokaryote specializes the knowledge-base schema for prokaryotic
// cells: transcription units mapping directly onto the chromosome, genes
// inside them, and the RNA and protein species types whose sequences and
// compositions derive from those coordinates.
package prokaryote

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// RnaType classifies an RNA species.
type RnaType int

const (
	RnaTypeMRna RnaType = iota
	RnaTypeRRna
	RnaTypeTRna
	RnaTypeSRna
	RnaTypeMixed
)

// GeneType classifies a gene locus.
type GeneType int

const (
	GeneTypeMRna GeneType = iota
	GeneTypeRRna
	GeneTypeTRna
	GeneTypeSRna
)

// TranscriptionUnitLocus is a chromosome region transcribed as one unit.
type TranscriptionUnitLocus struct {
	kb.PolymerLocus
	Genes   []*GeneLocus
	Pribnow *kb.PolymerLocus
}

// GeneLocus is a gene inside a transcription unit.
type GeneLocus struct {
	kb.PolymerLocus
	Symbol      string
	Type        GeneType
	IsEssential bool
	Proteins    []*ProteinSpeciesType
}

// RnaSpeciesType is an RNA transcribed from one or more transcription
// units on the chromosome.
type RnaSpeciesType struct {
	kb.SpeciesTypeBase
	Cell               *kb.Cell
	TranscriptionUnits []*TranscriptionUnitLocus
	Type               RnaType
	HalfLife           float64
}

func (r *RnaSpeciesType) Kind() kb.Kind {
	return kb.KindRnaSpeciesType
}

// Sequence transcribes the first transcription unit's DNA sequence.
func (r *RnaSpeciesType) Sequence() (string, error) {
	if len(r.TranscriptionUnits) == 0 {
		return "", errors.Newf(errors.ErrCodeSeqSourceUnavailable,
			"rna %q has no transcription unit", r.ID)
	}
	dna, err := r.TranscriptionUnits[0].Sequence()
	if err != nil {
		return "", err
	}
	return seq.Transcribe(dna), nil
}

// Length returns the transcript length in nucleotides.
func (r *RnaSpeciesType) Length() (int, error) {
	s, err := r.Sequence()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// EmpiricalFormula derives the transcript's elemental composition.
func (r *RnaSpeciesType) EmpiricalFormula() (chem.Formula, error) {
	s, err := r.Sequence()
	if err != nil {
		return nil, err
	}
	return chem.RNAFormula(s)
}

// Charge derives the transcript's net charge, -(L+1).
func (r *RnaSpeciesType) Charge() (float64, error) {
	n, err := r.Length()
	if err != nil {
		return 0, err
	}
	return float64(chem.RNACharge(n)), nil
}

// MolWt derives the molecular weight from the empirical formula.
func (r *RnaSpeciesType) MolWt() (float64, error) {
	formula, err := r.EmpiricalFormula()
	if err != nil {
		return 0, err
	}
	return formula.MolecularWeight()
}

// ProteinSpeciesType is a protein translated from a gene.
type ProteinSpeciesType struct {
	kb.SpeciesTypeBase
	Cell     *kb.Cell
	Gene     *GeneLocus
	HalfLife float64
}

func (p *ProteinSpeciesType) Kind() kb.Kind {
	return kb.KindProteinSpeciesType
}

// translationTable returns the cell's genetic code, defaulting to the
// standard code when the protein is not attached to a knowledge base.
func (p *ProteinSpeciesType) translationTable() int {
	if p.Cell != nil && p.Cell.KnowledgeBase != nil && p.Cell.KnowledgeBase.TranslationTable != 0 {
		return p.Cell.KnowledgeBase.TranslationTable
	}
	return 1
}

// Sequence translates the gene's coding sequence.  The leading codon
// always reads as methionine and the trailing stop is stripped.
func (p *ProteinSpeciesType) Sequence() (string, error) {
	if p.Gene == nil {
		return "", errors.Newf(errors.ErrCodeSeqSourceUnavailable,
			"protein %q has no gene", p.ID)
	}
	cds, err := p.Gene.Sequence()
	if err != nil {
		return "", err
	}
	return seq.TranslateCDS(cds, p.translationTable())
}

// Length returns the protein length in amino acids.
func (p *ProteinSpeciesType) Length() (int, error) {
	s, err := p.Sequence()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

// EmpiricalFormula derives the protein's elemental composition.
func (p *ProteinSpeciesType) EmpiricalFormula() (chem.Formula, error) {
	s, err := p.Sequence()
	if err != nil {
		return nil, err
	}
	return chem.ProteinFormula(s)
}

// Charge derives the protein's net charge from its basic and acidic
// residues.
func (p *ProteinSpeciesType) Charge() (float64, error) {
	s, err := p.Sequence()
	if err != nil {
		return 0, err
	}
	return float64(chem.ProteinCharge(s)), nil
}

// MolWt derives the molecular weight from the empirical formula.
func (p *ProteinSpeciesType) MolWt() (float64, error) {
	formula, err := p.EmpiricalFormula()
	if err != nil {
		return 0, err
	}
	return formula.MolecularWeight()
}
