// Package kb defines the knowledge-base schema — compartments, species
// types, species, reactions, rate laws, observables, parameters, loci — and
// the textual grammars that serialize and deserialize the compact notations
// used to curate them ("met1[c]", "(2) a[c] + (3) b[c] ==> x[m]", arithmetic
// rate-law expressions).
package kb

import (
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Kind identifies an entity family inside an object pool.
type Kind string

const (
	KindCompartment            Kind = "Compartment"
	KindMetaboliteSpeciesType  Kind = "MetaboliteSpeciesType"
	KindDnaSpeciesType         Kind = "DnaSpeciesType"
	KindRnaSpeciesType         Kind = "RnaSpeciesType"
	KindProteinSpeciesType     Kind = "ProteinSpeciesType"
	KindComplexSpeciesType     Kind = "ComplexSpeciesType"
	KindSpecies                Kind = "Species"
	KindSpeciesCoefficient     Kind = "SpeciesCoefficient"
	KindSpeciesTypeCoefficient Kind = "SpeciesTypeCoefficient"
	KindObservable             Kind = "Observable"
	KindParameter              Kind = "Parameter"
	KindIdentifier             Kind = "Identifier"
	KindRateLawExpression      Kind = "RateLawExpression"
	KindObservableExpression   Kind = "ObservableExpression"
)

// speciesTypeKinds is the fixed resolution order used when a grammar must
// find a species type by bare id; the first kind containing the id wins.
var speciesTypeKinds = []Kind{
	KindMetaboliteSpeciesType,
	KindDnaSpeciesType,
	KindRnaSpeciesType,
	KindProteinSpeciesType,
	KindComplexSpeciesType,
}

// Pool is the per-parse registry of already-resolved entities, keyed by kind
// and then by canonical string id.  Grammar components read from the pool to
// resolve references and insert newly created leaf entities (Species,
// SpeciesCoefficient, expressions) so that repeated references within and
// across parses resolve to the identical instance.
//
// A Pool has no internal locking: it is a single-writer structure.
// Independent parses may run concurrently only on separate pools.
type Pool struct {
	objects map[Kind]map[string]interface{}
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{objects: map[Kind]map[string]interface{}{}}
}

// Get returns the entity registered under (kind, id), if any.
func (p *Pool) Get(kind Kind, id string) (interface{}, bool) {
	m, ok := p.objects[kind]
	if !ok {
		return nil, false
	}
	obj, ok := m[id]
	return obj, ok
}

// Put registers obj under (kind, id), replacing any previous entry.
func (p *Pool) Put(kind Kind, id string, obj interface{}) {
	m, ok := p.objects[kind]
	if !ok {
		m = map[string]interface{}{}
		p.objects[kind] = m
	}
	m[id] = obj
}

// Count returns the number of entities registered under kind.
func (p *Pool) Count(kind Kind) int {
	return len(p.objects[kind])
}

// Has reports whether an entity is registered under (kind, id).
func (p *Pool) Has(kind Kind, id string) bool {
	_, ok := p.Get(kind, id)
	return ok
}

// AddCompartment registers a compartment under its id.
func (p *Pool) AddCompartment(c *Compartment) {
	p.Put(KindCompartment, c.ID, c)
}

// Compartment resolves a compartment by id.
func (p *Pool) Compartment(id string) (*Compartment, bool) {
	obj, ok := p.Get(KindCompartment, id)
	if !ok {
		return nil, false
	}
	c, ok := obj.(*Compartment)
	return c, ok
}

// AddSpeciesType registers a species type under its own kind and id.
func (p *Pool) AddSpeciesType(st SpeciesType) {
	p.Put(st.Kind(), st.Meta().ID, st)
}

// SpeciesType resolves a bare species-type id across all registered
// species-type kinds in the fixed resolution order.
func (p *Pool) SpeciesType(id string) (SpeciesType, bool) {
	for _, kind := range speciesTypeKinds {
		if obj, ok := p.Get(kind, id); ok {
			if st, ok := obj.(SpeciesType); ok {
				return st, ok
			}
		}
	}
	return nil, false
}

// AddObservable registers an observable under its id.
func (p *Pool) AddObservable(o *Observable) {
	p.Put(KindObservable, o.ID, o)
}

// AddParameter registers a parameter under its id.
func (p *Pool) AddParameter(param *Parameter) {
	p.Put(KindParameter, param.ID, param)
}

// resolveCompartment returns the compartment with the given id or a
// resolution error naming it.
func (p *Pool) resolveCompartment(id string) (*Compartment, *errors.AppError) {
	c, ok := p.Compartment(id)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeResolution, "compartment %q is not defined", id)
	}
	return c, nil
}

// resolveSpeciesType returns the species type with the given id or a
// resolution error naming it.
func (p *Pool) resolveSpeciesType(id string) (SpeciesType, *errors.AppError) {
	st, ok := p.SpeciesType(id)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeResolution, "species type %q is not defined", id)
	}
	return st, nil
}
