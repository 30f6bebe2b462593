package prokaryote_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/internal/domain/prokaryote"
	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// newChromosome writes a single-record FASTA fixture and returns a
// double-stranded linear chromosome backed by it.
func newChromosome(t *testing.T, sequence string) *kb.DnaSpeciesType {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chromosome.fna")
	require.NoError(t, os.WriteFile(path, []byte(">chr1\n"+sequence+"\n"), 0o644))
	dna := &kb.DnaSpeciesType{SequencePath: path, DoubleStranded: true}
	dna.ID = "chr1"
	return dna
}

func newCellWithTable(table int) *kb.Cell {
	k := kb.NewKnowledgeBase("kb1", "Test", "0.0.1")
	k.TranslationTable = table
	cell := &kb.Cell{ID: "cell1", KnowledgeBase: k}
	k.Cell = cell
	return cell
}

func TestRnaSpeciesType_Sequence(t *testing.T) {
	t.Parallel()
	dna := newChromosome(t, "ATGAAACGTTAA")
	tu := &prokaryote.TranscriptionUnitLocus{}
	tu.ID = "tu1"
	tu.Polymer = dna
	tu.Start, tu.End, tu.Strand = 1, 12, seq.StrandPositive

	rna := &prokaryote.RnaSpeciesType{TranscriptionUnits: []*prokaryote.TranscriptionUnitLocus{tu}}
	rna.ID = "rna1"

	s, err := rna.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "AUGAAACGUUAA", s)

	n, err := rna.Length()
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	q, err := rna.Charge()
	require.NoError(t, err)
	assert.Equal(t, -13.0, q)

	f, err := rna.EmpiricalFormula()
	require.NoError(t, err)
	mw, err := rna.MolWt()
	require.NoError(t, err)
	wantMw, err := f.MolecularWeight()
	require.NoError(t, err)
	assert.InDelta(t, wantMw, mw, 1e-9)
}

func TestRnaSpeciesType_NoTranscriptionUnit(t *testing.T) {
	t.Parallel()
	rna := &prokaryote.RnaSpeciesType{}
	rna.ID = "rna1"
	_, err := rna.Sequence()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqSourceUnavailable))
}

func TestProteinSpeciesType_PositiveStrand(t *testing.T) {
	t.Parallel()
	dna := newChromosome(t, "ATGAAACGTTAA")
	gene := &prokaryote.GeneLocus{Symbol: "mkr"}
	gene.ID = "gene1"
	gene.Polymer = dna
	gene.Start, gene.End, gene.Strand = 1, 12, seq.StrandPositive

	prot := &prokaryote.ProteinSpeciesType{Cell: newCellWithTable(1), Gene: gene}
	prot.ID = "prot1"

	s, err := prot.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "MKR", s)

	q, err := prot.Charge()
	require.NoError(t, err)
	assert.Equal(t, 2.0, q)

	f, err := prot.EmpiricalFormula()
	require.NoError(t, err)
	assert.True(t, f.Equal(chem.MustParseFormula("C17H35N7O4S")), f.String())
}

func TestProteinSpeciesType_NegativeStrand(t *testing.T) {
	t.Parallel()
	// reverse complement of ATGAAACGTTAA
	dna := newChromosome(t, "TTAACGTTTCAT")
	gene := &prokaryote.GeneLocus{}
	gene.ID = "gene1"
	gene.Polymer = dna
	gene.Start, gene.End, gene.Strand = 1, 12, seq.StrandNegative

	prot := &prokaryote.ProteinSpeciesType{Cell: newCellWithTable(1), Gene: gene}
	prot.ID = "prot1"

	s, err := prot.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "MKR", s)
}

func TestProteinSpeciesType_Table4(t *testing.T) {
	t.Parallel()
	dna := newChromosome(t, "ATGTGATAA")
	gene := &prokaryote.GeneLocus{}
	gene.ID = "gene1"
	gene.Polymer = dna
	gene.Start, gene.End, gene.Strand = 1, 9, seq.StrandPositive

	prot := &prokaryote.ProteinSpeciesType{Cell: newCellWithTable(4), Gene: gene}
	prot.ID = "prot1"

	s, err := prot.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "MW", s)

	// the standard code reads the internal TGA as a stop
	prot.Cell = newCellWithTable(1)
	_, err = prot.Sequence()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqTranslation))
}

func TestProteinSpeciesType_NoGene(t *testing.T) {
	t.Parallel()
	prot := &prokaryote.ProteinSpeciesType{}
	prot.ID = "prot1"
	_, err := prot.Sequence()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqSourceUnavailable))
}

func TestGeneLocus_WithinTranscriptionUnit(t *testing.T) {
	t.Parallel()
	dna := newChromosome(t, "CCATGAAACGTTAACC")
	tu := &prokaryote.TranscriptionUnitLocus{}
	tu.ID = "tu1"
	tu.Polymer = dna
	tu.Start, tu.End, tu.Strand = 1, 16, seq.StrandPositive

	gene := &prokaryote.GeneLocus{Type: prokaryote.GeneTypeMRna}
	gene.ID = "gene1"
	gene.Polymer = dna
	gene.Start, gene.End, gene.Strand = 3, 14, seq.StrandPositive
	tu.Genes = []*prokaryote.GeneLocus{gene}

	s, err := gene.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "ATGAAACGTTAA", s)
	assert.Equal(t, 12, gene.Length())

	// species types registered from the prokaryote layer resolve through
	// the shared pool
	pool := kb.NewPool()
	prot := &prokaryote.ProteinSpeciesType{Gene: gene}
	prot.ID = "prot1"
	pool.AddSpeciesType(prot)
	st, ok := pool.SpeciesType("prot1")
	require.True(t, ok)
	assert.Equal(t, kb.KindProteinSpeciesType, st.Kind())
}
