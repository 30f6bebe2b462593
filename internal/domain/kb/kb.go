package kb

import (
	"github.com/google/uuid"
)

// KnowledgeBase is the root document: identity, schema version and the
// single cell it describes.
type KnowledgeBase struct {
	ID               string
	Name             string
	Version          string
	RevisionID       string
	URL              string
	Branch           string
	TranslationTable int
	Cell             *Cell
	Comments         string
}

// NewKnowledgeBase returns a knowledge base with a fresh revision id and
// the standard genetic code.
func NewKnowledgeBase(id, name, version string) *KnowledgeBase {
	return &KnowledgeBase{
		ID:               id,
		Name:             name,
		Version:          version,
		RevisionID:       uuid.NewString(),
		TranslationTable: 1,
	}
}

// Cell holds every entity describing one cell.
type Cell struct {
	ID             string
	Name           string
	KnowledgeBase  *KnowledgeBase
	Taxon          string
	Compartments   []*Compartment
	SpeciesTypes   []SpeciesType
	Concentrations []*Concentration
	Reactions      []*Reaction
	Observables    []*Observable
	Parameters     []*Parameter
	Loci           []Locus
	References     []*Reference
	Experiments    []*Experiment
	Comments       string
}

// FindCompartment returns the compartment with the given id, or nil.
func (c *Cell) FindCompartment(id string) *Compartment {
	for _, comp := range c.Compartments {
		if comp.ID == id {
			return comp
		}
	}
	return nil
}

// FindSpeciesType returns the species type with the given id, or nil.
func (c *Cell) FindSpeciesType(id string) SpeciesType {
	for _, st := range c.SpeciesTypes {
		if st.Meta().ID == id {
			return st
		}
	}
	return nil
}

// FindReaction returns the reaction with the given id, or nil.
func (c *Cell) FindReaction(id string) *Reaction {
	for _, r := range c.Reactions {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FindObservable returns the observable with the given id, or nil.
func (c *Cell) FindObservable(id string) *Observable {
	for _, o := range c.Observables {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindParameter returns the parameter with the given id, or nil.
func (c *Cell) FindParameter(id string) *Parameter {
	for _, p := range c.Parameters {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// BuildPool registers the cell's compartments, species types, observables
// and parameters in a fresh pool, ready for grammar parsing against the
// cell's contents.
func (c *Cell) BuildPool() *Pool {
	pool := NewPool()
	for _, comp := range c.Compartments {
		pool.AddCompartment(comp)
	}
	for _, st := range c.SpeciesTypes {
		pool.AddSpeciesType(st)
	}
	for _, o := range c.Observables {
		pool.AddObservable(o)
	}
	for _, p := range c.Parameters {
		pool.AddParameter(p)
	}
	return pool
}
