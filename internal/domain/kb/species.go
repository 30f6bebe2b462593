package kb

import (
	"regexp"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Species is a species type located in a compartment.
type Species struct {
	SpeciesType SpeciesType
	Compartment *Compartment
}

// GenSpeciesID builds the canonical species id "type_id[compartment_id]".
func GenSpeciesID(speciesTypeID, compartmentID string) string {
	return speciesTypeID + "[" + compartmentID + "]"
}

// ID returns the canonical species id.
func (s *Species) ID() string {
	return GenSpeciesID(s.SpeciesType.Meta().ID, s.Compartment.ID)
}

// Serialize renders the species as its canonical id.
func (s *Species) Serialize() string {
	return s.ID()
}

var speciesPattern = regexp.MustCompile(`^([a-zA-Z0-9_\-]+)\[([a-zA-Z0-9_\-]+)\]$`)

// ParseSpecies parses "type_id[compartment_id]" against the pool.  The
// species type and compartment must already be registered; the resulting
// Species is cached in the pool so repeated references resolve to the same
// instance.
func ParseSpecies(value string, pool *Pool) (*Species, error) {
	match := speciesPattern.FindStringSubmatch(value)
	if match == nil {
		return nil, errors.Newf(errors.ErrCodeStructuralParse,
			"invalid species %q: expected type_id[compartment_id]", value)
	}
	return makeSpecies(match[1], match[2], pool)
}

// makeSpecies resolves the parts and returns the pooled species, creating
// and caching it on first use.
func makeSpecies(speciesTypeID, compartmentID string, pool *Pool) (*Species, error) {
	id := GenSpeciesID(speciesTypeID, compartmentID)
	if cached, ok := pool.Get(KindSpecies, id); ok {
		return cached.(*Species), nil
	}
	st, aerr := pool.resolveSpeciesType(speciesTypeID)
	if aerr != nil {
		return nil, aerr
	}
	c, aerr := pool.resolveCompartment(compartmentID)
	if aerr != nil {
		return nil, aerr
	}
	species := &Species{SpeciesType: st, Compartment: c}
	pool.Put(KindSpecies, id, species)
	return species, nil
}
