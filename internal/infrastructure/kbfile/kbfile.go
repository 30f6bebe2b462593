// Package kbfile reads and writes knowledge-base YAML documents.  A document
// stores entities in their compact textual grammars (species, participants,
// subunits, expressions, identifiers); loading resolves every cross-reference
// through a shared object pool and reports the first inconsistency found.
package kbfile

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/internal/domain/prokaryote"
	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
	"github.com/Synergetic-ai/wc-kb/internal/infrastructure/monitoring/logging"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Document schema
// ─────────────────────────────────────────────────────────────────────────────

// Document is the on-disk YAML form of a knowledge base.
type Document struct {
	ID               string       `yaml:"id"`
	Name             string       `yaml:"name,omitempty"`
	Version          string       `yaml:"version"`
	TranslationTable int          `yaml:"translation_table,omitempty"`
	Cell             CellDocument `yaml:"cell"`
}

// CellDocument holds the cell's entity sections.
type CellDocument struct {
	ID             string               `yaml:"id"`
	Name           string               `yaml:"name,omitempty"`
	Taxon          string               `yaml:"taxon,omitempty"`
	Compartments   []CompartmentEntry   `yaml:"compartments,omitempty"`
	Chromosomes    []ChromosomeEntry    `yaml:"chromosomes,omitempty"`
	Metabolites    []SpeciesTypeEntry   `yaml:"metabolites,omitempty"`
	Rnas           []RnaEntry           `yaml:"rnas,omitempty"`
	Proteins       []ProteinEntry       `yaml:"proteins,omitempty"`
	Complexes      []ComplexEntry       `yaml:"complexes,omitempty"`
	Loci           []LocusEntry         `yaml:"loci,omitempty"`
	Observables    []ObservableEntry    `yaml:"observables,omitempty"`
	Parameters     []ParameterEntry     `yaml:"parameters,omitempty"`
	Reactions      []ReactionEntry      `yaml:"reactions,omitempty"`
	Concentrations []ConcentrationEntry `yaml:"concentrations,omitempty"`
}

type CompartmentEntry struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name,omitempty"`
	VolumetricFraction float64 `yaml:"volumetric_fraction,omitempty"`
	Identifiers        string  `yaml:"identifiers,omitempty"`
	Comments           string  `yaml:"comments,omitempty"`
}

type ChromosomeEntry struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name,omitempty"`
	SequencePath   string `yaml:"sequence_path"`
	Circular       bool   `yaml:"circular,omitempty"`
	DoubleStranded bool   `yaml:"double_stranded,omitempty"`
	Ploidy         int    `yaml:"ploidy,omitempty"`
}

type PropertyEntry struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
	Kind     string `yaml:"kind"`
}

type SpeciesTypeEntry struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name,omitempty"`
	Properties  []PropertyEntry `yaml:"properties,omitempty"`
	Identifiers string          `yaml:"identifiers,omitempty"`
	Comments    string          `yaml:"comments,omitempty"`
}

type RnaEntry struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name,omitempty"`
	TranscriptionUnits []string `yaml:"transcription_units"`
	HalfLife           float64  `yaml:"half_life,omitempty"`
}

type ProteinEntry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name,omitempty"`
	Gene     string  `yaml:"gene"`
	HalfLife float64 `yaml:"half_life,omitempty"`
}

type ComplexEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name,omitempty"`
	Subunits string `yaml:"subunits"`
}

// LocusEntry covers plain polymer loci, transcription units and genes; the
// kind discriminator selects the concrete type.
type LocusEntry struct {
	ID      string   `yaml:"id"`
	Kind    string   `yaml:"kind,omitempty"` // "locus" | "transcription_unit" | "gene"
	Polymer string   `yaml:"polymer"`
	Start   int      `yaml:"start"`
	End     int      `yaml:"end"`
	Strand  string   `yaml:"strand,omitempty"`
	Genes   []string `yaml:"genes,omitempty"`  // transcription units only
	Symbol  string   `yaml:"symbol,omitempty"` // genes only
}

type ObservableEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name,omitempty"`
	Expression string `yaml:"expression"`
	Units      string `yaml:"units,omitempty"`
}

type ParameterEntry struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name,omitempty"`
	Value float64 `yaml:"value"`
	Error float64 `yaml:"error,omitempty"`
	Units string  `yaml:"units,omitempty"`
}

type RateLawEntry struct {
	Direction  string `yaml:"direction"`
	Expression string `yaml:"expression"`
	Units      string `yaml:"units,omitempty"`
}

type ReactionEntry struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name,omitempty"`
	Participants string         `yaml:"participants"`
	Reversible   bool           `yaml:"reversible,omitempty"`
	RateLaws     []RateLawEntry `yaml:"rate_laws,omitempty"`
}

type ConcentrationEntry struct {
	Species string  `yaml:"species"`
	Value   float64 `yaml:"value"`
	Units   string  `yaml:"units,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Loader
// ─────────────────────────────────────────────────────────────────────────────

// Loader reads knowledge-base documents.
type Loader struct {
	// SequenceDir is prepended to relative sequence paths.
	SequenceDir string
	Logger      logging.Logger
}

// NewLoader returns a loader resolving relative sequence paths against dir.
func NewLoader(dir string, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Loader{SequenceDir: dir, Logger: logger.Named("kbfile")}
}

// Load reads and resolves the document at path.
func (l *Loader) Load(path string) (*kb.KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentInvalid, "cannot read knowledge base document").
			WithDetail(path)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDocumentInvalid, "cannot parse knowledge base document").
			WithDetail(path)
	}
	k, err := l.Resolve(&doc)
	if err != nil {
		return nil, err
	}
	l.Logger.Info("loaded knowledge base",
		logging.String("path", path),
		logging.String("kb", k.ID),
		logging.Int("species_types", len(k.Cell.SpeciesTypes)),
		logging.Int("reactions", len(k.Cell.Reactions)))
	return k, nil
}

// Resolve turns a parsed document into a fully cross-linked knowledge base.
// Resolution is ordered: compartments and species types first, then loci,
// then everything referencing them through the grammars.
func (l *Loader) Resolve(doc *Document) (*kb.KnowledgeBase, error) {
	k := kb.NewKnowledgeBase(doc.ID, doc.Name, doc.Version)
	if doc.TranslationTable != 0 {
		k.TranslationTable = doc.TranslationTable
	}
	cell := &kb.Cell{ID: doc.Cell.ID, Name: doc.Cell.Name, Taxon: doc.Cell.Taxon, KnowledgeBase: k}
	k.Cell = cell
	pool := kb.NewPool()

	for _, entry := range doc.Cell.Compartments {
		c := &kb.Compartment{
			ID:                 entry.ID,
			Name:               entry.Name,
			Cell:               cell,
			VolumetricFraction: entry.VolumetricFraction,
			Comments:           entry.Comments,
		}
		ids, err := kb.ParseIdentifiers(entry.Identifiers, pool)
		if err != nil {
			return nil, err
		}
		c.Identifiers = ids
		cell.Compartments = append(cell.Compartments, c)
		pool.AddCompartment(c)
	}

	for _, entry := range doc.Cell.Chromosomes {
		dna := &kb.DnaSpeciesType{
			Cell:           cell,
			SequencePath:   l.sequencePath(entry.SequencePath),
			Circular:       entry.Circular,
			DoubleStranded: entry.DoubleStranded,
			Ploidy:         entry.Ploidy,
		}
		dna.ID = entry.ID
		dna.Name = entry.Name
		cell.SpeciesTypes = append(cell.SpeciesTypes, dna)
		pool.AddSpeciesType(dna)
	}

	for _, entry := range doc.Cell.Metabolites {
		met := &kb.MetaboliteSpeciesType{Cell: cell}
		if err := l.fillSpeciesTypeBase(&met.SpeciesTypeBase, entry, pool); err != nil {
			return nil, err
		}
		cell.SpeciesTypes = append(cell.SpeciesTypes, met)
		pool.AddSpeciesType(met)
	}

	genes, tus, err := l.resolveLoci(doc, cell, pool)
	if err != nil {
		return nil, err
	}

	for _, entry := range doc.Cell.Rnas {
		rna := &prokaryote.RnaSpeciesType{Cell: cell}
		rna.ID = entry.ID
		rna.Name = entry.Name
		rna.HalfLife = entry.HalfLife
		for _, tuID := range entry.TranscriptionUnits {
			tu, ok := tus[tuID]
			if !ok {
				return nil, errors.Newf(errors.ErrCodeResolution,
					"rna %q: transcription unit %q is not defined", entry.ID, tuID)
			}
			rna.TranscriptionUnits = append(rna.TranscriptionUnits, tu)
		}
		cell.SpeciesTypes = append(cell.SpeciesTypes, rna)
		pool.AddSpeciesType(rna)
	}

	for _, entry := range doc.Cell.Proteins {
		prot := &prokaryote.ProteinSpeciesType{Cell: cell, HalfLife: entry.HalfLife}
		prot.ID = entry.ID
		prot.Name = entry.Name
		gene, ok := genes[entry.Gene]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeResolution,
				"protein %q: gene %q is not defined", entry.ID, entry.Gene)
		}
		prot.Gene = gene
		gene.Proteins = append(gene.Proteins, prot)
		cell.SpeciesTypes = append(cell.SpeciesTypes, prot)
		pool.AddSpeciesType(prot)
	}

	// complexes may reference any species type defined above, including
	// other complexes declared earlier in the document
	for _, entry := range doc.Cell.Complexes {
		cplx := &kb.ComplexSpeciesType{Cell: cell}
		cplx.ID = entry.ID
		cplx.Name = entry.Name
		subunits, err := kb.ParseSubunits(entry.Subunits, pool)
		if err != nil {
			return nil, errors.Wrap(err, errors.GetCode(err), "complex "+entry.ID)
		}
		cplx.Subunits = subunits
		cell.SpeciesTypes = append(cell.SpeciesTypes, cplx)
		pool.AddSpeciesType(cplx)
	}

	for _, entry := range doc.Cell.Parameters {
		p := &kb.Parameter{
			ID:    entry.ID,
			Name:  entry.Name,
			Cell:  cell,
			Value: entry.Value,
			Error: entry.Error,
			Units: kb.Unit(entry.Units),
		}
		cell.Parameters = append(cell.Parameters, p)
		pool.AddParameter(p)
	}

	// observables resolve in document order so an observable may reference
	// the ones declared before it
	for _, entry := range doc.Cell.Observables {
		o := &kb.Observable{ID: entry.ID, Name: entry.Name, Cell: cell, Units: kb.Unit(entry.Units)}
		expr, err := kb.ParseObservableExpression(entry.Expression, pool)
		if err != nil {
			return nil, errors.Wrap(err, errors.GetCode(err), "observable "+entry.ID)
		}
		o.Expression = expr
		cell.Observables = append(cell.Observables, o)
		pool.AddObservable(o)
	}

	for _, entry := range doc.Cell.Reactions {
		rxn := &kb.Reaction{ID: entry.ID, Name: entry.Name, Cell: cell, Reversible: entry.Reversible}
		participants, err := kb.ParseParticipants(entry.Participants, pool)
		if err != nil {
			return nil, errors.Wrap(err, errors.GetCode(err), "reaction "+entry.ID)
		}
		rxn.Participants = participants
		for _, rl := range entry.RateLaws {
			direction, err := kb.ParseRateLawDirection(rl.Direction)
			if err != nil {
				return nil, errors.Wrap(err, errors.GetCode(err), "reaction "+entry.ID)
			}
			expr, err := kb.ParseRateLawExpression(rl.Expression, pool)
			if err != nil {
				return nil, errors.Wrap(err, errors.GetCode(err), "reaction "+entry.ID)
			}
			rxn.RateLaws = append(rxn.RateLaws, &kb.RateLaw{
				Reaction:   rxn,
				Direction:  direction,
				Expression: expr,
				Units:      kb.Unit(rl.Units),
			})
		}
		cell.Reactions = append(cell.Reactions, rxn)
	}

	for _, entry := range doc.Cell.Concentrations {
		species, err := kb.ParseSpecies(entry.Species, pool)
		if err != nil {
			return nil, err
		}
		conc := kb.NewConcentration(species, entry.Value)
		conc.Cell = cell
		if entry.Units != "" {
			conc.Units = kb.Unit(entry.Units)
		}
		cell.Concentrations = append(cell.Concentrations, conc)
	}

	return k, nil
}

// resolveLoci builds the cell's loci and returns the gene and transcription
// unit indexes needed by the RNA and protein sections.
func (l *Loader) resolveLoci(doc *Document, cell *kb.Cell, pool *kb.Pool) (map[string]*prokaryote.GeneLocus, map[string]*prokaryote.TranscriptionUnitLocus, error) {
	genes := map[string]*prokaryote.GeneLocus{}
	tus := map[string]*prokaryote.TranscriptionUnitLocus{}

	region := func(entry LocusEntry) (kb.PolymerLocus, error) {
		st, ok := pool.SpeciesType(entry.Polymer)
		if !ok {
			return kb.PolymerLocus{}, errors.Newf(errors.ErrCodeResolution,
				"locus %q: polymer %q is not defined", entry.ID, entry.Polymer)
		}
		polymer, ok := st.(kb.PolymerSpeciesType)
		if !ok {
			return kb.PolymerLocus{}, errors.Newf(errors.ErrCodeResolution,
				"locus %q: species type %q is not a polymer", entry.ID, entry.Polymer)
		}
		strand, err := seq.ParseStrand(entry.Strand)
		if err != nil {
			return kb.PolymerLocus{}, err
		}
		return kb.PolymerLocus{
			ID:      entry.ID,
			Cell:    cell,
			Polymer: polymer,
			Start:   entry.Start,
			End:     entry.End,
			Strand:  strand,
		}, nil
	}

	// genes first so transcription units can collect them
	for _, entry := range doc.Cell.Loci {
		if entry.Kind != "gene" {
			continue
		}
		r, err := region(entry)
		if err != nil {
			return nil, nil, err
		}
		gene := &prokaryote.GeneLocus{PolymerLocus: r, Symbol: entry.Symbol}
		genes[entry.ID] = gene
		cell.Loci = append(cell.Loci, gene)
	}

	for _, entry := range doc.Cell.Loci {
		switch entry.Kind {
		case "gene":
		case "transcription_unit":
			r, err := region(entry)
			if err != nil {
				return nil, nil, err
			}
			tu := &prokaryote.TranscriptionUnitLocus{PolymerLocus: r}
			for _, geneID := range entry.Genes {
				gene, ok := genes[geneID]
				if !ok {
					return nil, nil, errors.Newf(errors.ErrCodeResolution,
						"transcription unit %q: gene %q is not defined", entry.ID, geneID)
				}
				tu.Genes = append(tu.Genes, gene)
			}
			tus[entry.ID] = tu
			cell.Loci = append(cell.Loci, tu)
		case "", "locus":
			r, err := region(entry)
			if err != nil {
				return nil, nil, err
			}
			locus := r
			cell.Loci = append(cell.Loci, &locus)
		default:
			return nil, nil, errors.Newf(errors.ErrCodeDocumentInvalid,
				"locus %q: unknown kind %q", entry.ID, entry.Kind)
		}
	}
	return genes, tus, nil
}

func (l *Loader) sequencePath(path string) string {
	if path == "" || filepath.IsAbs(path) || l.SequenceDir == "" {
		return path
	}
	return filepath.Join(l.SequenceDir, path)
}

func (l *Loader) fillSpeciesTypeBase(base *kb.SpeciesTypeBase, entry SpeciesTypeEntry, pool *kb.Pool) error {
	base.ID = entry.ID
	base.Name = entry.Name
	base.Comments = entry.Comments
	ids, err := kb.ParseIdentifiers(entry.Identifiers, pool)
	if err != nil {
		return err
	}
	base.Identifiers = ids
	for _, p := range entry.Properties {
		base.Properties = append(base.Properties, &kb.SpeciesTypeProperty{
			Property:  p.Property,
			Value:     p.Value,
			ValueKind: kb.ValueKind(p.Kind),
		})
	}
	return nil
}

// Save writes the document form of a knowledge base to path.  Only the
// sections the loader reads are emitted; derived quantities are not stored.
func Save(path string, doc *Document) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDocumentInvalid, "cannot marshal knowledge base document")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeDocumentInvalid, "cannot write knowledge base document").
			WithDetail(path)
	}
	return nil
}
