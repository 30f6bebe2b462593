package kbfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/internal/domain/prokaryote"
	"github.com/Synergetic-ai/wc-kb/internal/infrastructure/kbfile"
	"github.com/Synergetic-ai/wc-kb/internal/testutil"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

const fixtureYAML = `
id: kb_test
name: Test knowledge base
version: "0.0.1"
translation_table: 1
cell:
  id: cell_test
  taxon: Mycoplasma genitalium
  compartments:
    - id: c
      name: Cytosol
      volumetric_fraction: 0.7
      identifiers: "go:GO:0005737"
    - id: m
      name: Membrane
      volumetric_fraction: 0.3
  chromosomes:
    - id: chr1
      sequence_path: chr1.fna
      circular: false
      double_stranded: true
      ploidy: 1
  metabolites:
    - id: atp
      name: ATP
      properties:
        - property: empirical_formula
          value: C10H12N5O13P3
          kind: string
        - property: charge
          value: "-4"
          kind: float
    - id: adp
      name: ADP
      properties:
        - property: empirical_formula
          value: C10H12N5O10P2
          kind: string
        - property: charge
          value: "-3"
          kind: float
    - id: h2o
      properties:
        - property: structure
          value: InChI=1S/H2O/h1H2
          kind: string
  loci:
    - id: gene1
      kind: gene
      polymer: chr1
      start: 3
      end: 14
      strand: "+"
      symbol: abcA
    - id: tu1
      kind: transcription_unit
      polymer: chr1
      start: 1
      end: 16
      strand: "+"
      genes: [gene1]
    - id: prom1
      polymer: chr1
      start: 1
      end: 2
  rnas:
    - id: rna1
      transcription_units: [tu1]
      half_life: 120
  proteins:
    - id: prot1
      gene: gene1
      half_life: 20000
  complexes:
    - id: cplx1
      subunits: "(2) atp + h2o"
  parameters:
    - id: k_cat
      value: 3.5
      units: s^-1
  observables:
    - id: obs1
      expression: "atp[c] + adp[c]"
      units: M
  reactions:
    - id: rxn1
      participants: "[c]: atp ==> adp"
      reversible: false
      rate_laws:
        - direction: forward
          expression: "k_cat * atp[c]"
  concentrations:
    - species: "atp[c]"
      value: 0.005
      units: mM
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chr1.fna"),
		[]byte(">chr1\nCCATGAAACGTTAACC\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kb.yaml"),
		[]byte(fixtureYAML), 0o644))
	return dir
}

func loadFixture(t *testing.T) *kb.KnowledgeBase {
	t.Helper()
	dir := writeFixture(t)
	loader := kbfile.NewLoader(dir, nil)
	k, err := loader.Load(filepath.Join(dir, "kb.yaml"))
	require.NoError(t, err)
	return k
}

func TestLoader_Load_Document(t *testing.T) {
	t.Parallel()
	k := loadFixture(t)

	assert.Equal(t, "kb_test", k.ID)
	assert.Equal(t, "0.0.1", k.Version)
	assert.Equal(t, 1, k.TranslationTable)
	assert.NotEmpty(t, k.RevisionID)

	require.NotNil(t, k.Cell)
	assert.Equal(t, "cell_test", k.Cell.ID)
	assert.Equal(t, "Mycoplasma genitalium", k.Cell.Taxon)
	assert.Len(t, k.Cell.Compartments, 2)
	assert.Len(t, k.Cell.SpeciesTypes, 7) // chromosome, 3 metabolites, rna, protein, complex
	assert.Len(t, k.Cell.Loci, 3)
	assert.Len(t, k.Cell.Reactions, 1)
	assert.Len(t, k.Cell.Observables, 1)
	assert.Len(t, k.Cell.Parameters, 1)
	assert.Len(t, k.Cell.Concentrations, 1)

	cytosol := k.Cell.FindCompartment("c")
	require.NotNil(t, cytosol)
	assert.InDelta(t, 0.7, cytosol.VolumetricFraction, 1e-12)
	require.Len(t, cytosol.Identifiers, 1)
	assert.Equal(t, "go:GO:0005737", cytosol.Identifiers[0].Serialize())
}

func TestLoader_Load_DerivedSequences(t *testing.T) {
	t.Parallel()
	k := loadFixture(t)

	rna, ok := k.Cell.FindSpeciesType("rna1").(*prokaryote.RnaSpeciesType)
	require.True(t, ok)
	transcript, err := rna.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "CCAUGAAACGUUAACC", transcript)
	charge, err := rna.Charge()
	require.NoError(t, err)
	assert.Equal(t, float64(-17), charge)

	prot, ok := k.Cell.FindSpeciesType("prot1").(*prokaryote.ProteinSpeciesType)
	require.True(t, ok)
	peptide, err := prot.Sequence()
	require.NoError(t, err)
	assert.Equal(t, "MKR", peptide)
	require.NotNil(t, prot.Gene)
	assert.Equal(t, "abcA", prot.Gene.Symbol)
	assert.Contains(t, prot.Gene.Proteins, prot)
}

func TestLoader_Load_Grammars(t *testing.T) {
	t.Parallel()
	k := loadFixture(t)

	cplx, ok := k.Cell.FindSpeciesType("cplx1").(*kb.ComplexSpeciesType)
	require.True(t, ok)
	assert.Equal(t, "(2) atp + h2o", kb.SerializeSubunits(cplx.Subunits))
	formula, err := cplx.EmpiricalFormula()
	require.NoError(t, err)
	assert.Equal(t, "C20H26N10O27P6", formula.String())
	charge, err := cplx.Charge()
	require.NoError(t, err)
	assert.Equal(t, float64(-8), charge)

	rxn := k.Cell.FindReaction("rxn1")
	require.NotNil(t, rxn)
	assert.Equal(t, "[c]: atp ==> adp", rxn.Serialize())
	require.Len(t, rxn.RateLaws, 1)
	assert.Equal(t, "rxn1_forward", rxn.RateLaws[0].GenID())
	assert.Equal(t, "k_cat * atp[c]", rxn.RateLaws[0].Expression.Serialize())
	require.Len(t, rxn.RateLaws[0].Expression.Parameters, 1)
	assert.InDelta(t, 3.5, rxn.RateLaws[0].Expression.Parameters[0].Value, 1e-12)

	obs := k.Cell.FindObservable("obs1")
	require.NotNil(t, obs)
	assert.Len(t, obs.Expression.Species, 2)

	conc := k.Cell.Concentrations[0]
	assert.Equal(t, "CONC[atp[c]]", conc.ID())
	assert.Equal(t, kb.Unit("mM"), conc.Units)
}

func TestLoader_Load_LogsSummary(t *testing.T) {
	t.Parallel()
	dir := writeFixture(t)
	logger := testutil.NewMockLogger()
	_, err := kbfile.NewLoader(dir, logger).Load(filepath.Join(dir, "kb.yaml"))
	require.NoError(t, err)
	assert.True(t, logger.HasMessage("info", "loaded knowledge base"))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()
	loader := kbfile.NewLoader(t.TempDir(), nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDocumentInvalid))
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: [unclosed"), 0o644))
	_, err := kbfile.NewLoader(dir, nil).Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDocumentInvalid))
}

func TestLoader_Resolve_Errors(t *testing.T) {
	t.Parallel()

	base := func() *kbfile.Document {
		return &kbfile.Document{
			ID:      "kb_err",
			Version: "0.0.1",
			Cell: kbfile.CellDocument{
				ID:           "cell_err",
				Compartments: []kbfile.CompartmentEntry{{ID: "c"}},
				Metabolites:  []kbfile.SpeciesTypeEntry{{ID: "atp"}},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*kbfile.Document)
		code   errors.ErrorCode
	}{
		{
			name: "protein references undefined gene",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Proteins = []kbfile.ProteinEntry{{ID: "prot1", Gene: "nope"}}
			},
			code: errors.ErrCodeResolution,
		},
		{
			name: "rna references undefined transcription unit",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Rnas = []kbfile.RnaEntry{{ID: "rna1", TranscriptionUnits: []string{"nope"}}}
			},
			code: errors.ErrCodeResolution,
		},
		{
			name: "locus references undefined polymer",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Loci = []kbfile.LocusEntry{{ID: "gene1", Kind: "gene", Polymer: "nope", Start: 1, End: 3}}
			},
			code: errors.ErrCodeResolution,
		},
		{
			name: "locus on non-polymer species type",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Loci = []kbfile.LocusEntry{{ID: "gene1", Kind: "gene", Polymer: "atp", Start: 1, End: 3}}
			},
			code: errors.ErrCodeResolution,
		},
		{
			name: "unknown locus kind",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Chromosomes = []kbfile.ChromosomeEntry{{ID: "chr1", SequencePath: "chr1.fna"}}
				doc.Cell.Loci = []kbfile.LocusEntry{{ID: "x", Kind: "exon", Polymer: "chr1", Start: 1, End: 3}}
			},
			code: errors.ErrCodeDocumentInvalid,
		},
		{
			name: "malformed reaction participants",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Reactions = []kbfile.ReactionEntry{{ID: "rxn1", Participants: "atp >> adp"}}
			},
			code: errors.ErrCodeParticipantInvalid,
		},
		{
			name: "malformed complex subunits",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Complexes = []kbfile.ComplexEntry{{ID: "cplx1", Subunits: "(x) atp"}}
			},
			code: errors.ErrCodeParticipantInvalid,
		},
		{
			name: "observable references unknown identifier",
			mutate: func(doc *kbfile.Document) {
				doc.Cell.Observables = []kbfile.ObservableEntry{{ID: "obs1", Expression: "nope[c]"}}
			},
			code: errors.ErrCodeResolution,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := base()
			tc.mutate(doc)
			_, err := kbfile.NewLoader("", nil).Resolve(doc)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tc.code), "got %v", err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()
	dir := writeFixture(t)
	path := filepath.Join(dir, "copy.yaml")

	doc := &kbfile.Document{
		ID:      "kb_copy",
		Version: "0.0.2",
		Cell: kbfile.CellDocument{
			ID:           "cell_copy",
			Compartments: []kbfile.CompartmentEntry{{ID: "c", VolumetricFraction: 1}},
			Metabolites: []kbfile.SpeciesTypeEntry{{
				ID: "h2o",
				Properties: []kbfile.PropertyEntry{{
					Property: "structure", Value: "InChI=1S/H2O/h1H2", Kind: "string",
				}},
			}},
		},
	}
	require.NoError(t, kbfile.Save(path, doc))

	k, err := kbfile.NewLoader(dir, nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kb_copy", k.ID)
	met, ok := k.Cell.FindSpeciesType("h2o").(*kb.MetaboliteSpeciesType)
	require.True(t, ok)
	formula, err := met.EmpiricalFormula()
	require.NoError(t, err)
	assert.Equal(t, "H2O", formula.String())
}
