package kb

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// SpeciesCoefficient pairs a species with a stoichiometric coefficient.
// Reactants carry negative coefficients, products positive ones.
type SpeciesCoefficient struct {
	Species     *Species
	Coefficient float64
}

// SpeciesTypeCoefficient pairs a species type with a stoichiometric
// coefficient, as used for complex subunits.
type SpeciesTypeCoefficient struct {
	SpeciesType SpeciesType
	Coefficient float64
}

// coefficientPrefix renders a coefficient as the "(n) " prefix of a
// participant term.  A coefficient of exactly one renders as the empty
// string.  Integral coefficients with magnitude under 1000 render in
// decimal; everything else renders in scientific notation.
func coefficientPrefix(coefficient float64, showSign bool) string {
	if !showSign {
		coefficient = math.Abs(coefficient)
	}
	if coefficient == 1 {
		return ""
	}
	if coefficient == math.Trunc(coefficient) && math.Abs(coefficient) < 1000 {
		return fmt.Sprintf("(%d) ", int64(coefficient))
	}
	return fmt.Sprintf("(%e) ", coefficient)
}

// SerializeSpeciesCoefficient renders a participant term.  The compartment
// suffix is emitted only when showCompartment is set; the coefficient's
// sign is emitted only when showSign is set.
func SerializeSpeciesCoefficient(species *Species, coefficient float64, showCompartment, showSign bool) string {
	var target string
	if showCompartment {
		target = species.ID()
	} else {
		target = species.SpeciesType.Meta().ID
	}
	return coefficientPrefix(coefficient, showSign) + target
}

// Serialize renders the term with compartment and sign.
func (sc *SpeciesCoefficient) Serialize() string {
	return SerializeSpeciesCoefficient(sc.Species, sc.Coefficient, true, true)
}

// Serialize renders the subunit term, without sign.
func (stc *SpeciesTypeCoefficient) Serialize() string {
	return coefficientPrefix(stc.Coefficient, true) + stc.SpeciesType.Meta().ID
}

var speciesCoefficientPattern = regexp.MustCompile(
	`(?i)^(?:\((-?\d*\.?\d+(?:e[-+]?\d+)?)\) )?([a-z0-9_\-]+)(?:\[([a-z0-9_\-]+)\])?$`)

// ParseSpeciesCoefficient parses a participant term
// "(coefficient) type_id[compartment_id]".  The coefficient defaults to one
// and the compartment to defaultCompartment; a term without an explicit
// compartment is an error when no default is given.  Terms are cached in
// the pool by their canonical serialization.
func ParseSpeciesCoefficient(value string, pool *Pool, defaultCompartment *Compartment) (*SpeciesCoefficient, error) {
	match := speciesCoefficientPattern.FindStringSubmatch(value)
	if match == nil {
		return nil, errors.Newf(errors.ErrCodeStructuralParse,
			"invalid species coefficient %q", value)
	}
	coefficient := 1.0
	if match[1] != "" {
		var err error
		coefficient, err = strconv.ParseFloat(match[1], 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeStructuralParse,
				"invalid coefficient in %q", value).WithCause(err)
		}
	}
	compartmentID := match[3]
	if compartmentID == "" {
		if defaultCompartment == nil {
			return nil, errors.Newf(errors.ErrCodeStructuralParse,
				"species coefficient %q has no compartment", value)
		}
		compartmentID = defaultCompartment.ID
	}
	species, err := makeSpecies(match[2], compartmentID, pool)
	if err != nil {
		return nil, err
	}
	return makeSpeciesCoefficient(species, coefficient, pool), nil
}

// makeSpeciesCoefficient returns the pooled coefficient term for the given
// species and value, creating and caching it on first use.
func makeSpeciesCoefficient(species *Species, coefficient float64, pool *Pool) *SpeciesCoefficient {
	key := SerializeSpeciesCoefficient(species, coefficient, true, true)
	if cached, ok := pool.Get(KindSpeciesCoefficient, key); ok {
		return cached.(*SpeciesCoefficient)
	}
	sc := &SpeciesCoefficient{Species: species, Coefficient: coefficient}
	pool.Put(KindSpeciesCoefficient, key, sc)
	return sc
}
