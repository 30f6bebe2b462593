package kb

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Reaction participant grammar.
//
// When every participant shares one compartment the reaction serializes in
// local form, with the compartment factored out front:
//
//	[c]: (2) atp + h2o ==> adp + pi + h
//
// Otherwise it serializes in global form, with a compartment on every term:
//
//	atp[c] + h2o[c] ==> adp[e] + pi[e] + h[e]
//
// Local form permits an empty side; global form requires both sides.

const (
	idChars    = `[a-z0-9_\-]+`
	coeffChars = `\(\d*\.?\d+(?:e[-+]?\d+)?\) `
	localTerm  = `(?:` + coeffChars + `)?` + idChars
	globalTerm = localTerm + `\[` + idChars + `\]`
	localSide  = localTerm + `(?: \+ ` + localTerm + `)*`
	globalSide = globalTerm + `(?: \+ ` + globalTerm + `)*`
)

var (
	localParticipantsPattern = regexp.MustCompile(
		`(?i)^\[(` + idChars + `)\]: (?:(` + localSide + `) )?==> ?(` + localSide + `)?$`)
	globalParticipantsPattern = regexp.MustCompile(
		`(?i)^(` + globalSide + `) ==> (` + globalSide + `)$`)
	participantTermPattern = regexp.MustCompile(
		`(?i)^(?:\((\d*\.?\d+(?:e[-+]?\d+)?)\) )?(` + idChars + `)(?:\[(` + idChars + `)\])?$`)
	subunitTermPattern = regexp.MustCompile(
		`(?i)^(?:\((\d*\.?\d+(?:e[-+]?\d+)?)\) )?(` + idChars + `)$`)
)

// SerializeParticipants renders a participant list.  Reactants are the
// participants with negative coefficients, products the rest; the rendered
// coefficients are unsigned.
func SerializeParticipants(participants []*SpeciesCoefficient) string {
	if len(participants) == 0 {
		return ""
	}
	local := true
	compartment := participants[0].Species.Compartment
	for _, p := range participants[1:] {
		if p.Species.Compartment != compartment {
			local = false
			break
		}
	}
	var lhs, rhs []string
	for _, p := range participants {
		term := SerializeSpeciesCoefficient(p.Species, p.Coefficient, !local, false)
		if p.Coefficient < 0 {
			lhs = append(lhs, term)
		} else {
			rhs = append(rhs, term)
		}
	}
	body := strings.Join(lhs, " + ") + " ==> " + strings.Join(rhs, " + ")
	if local {
		return "[" + compartment.ID + "]: " + body
	}
	return body
}

// ParseParticipants parses a participant list in local or global form.
// Reactant coefficients come back negative.  Terms are resolved and cached
// through the pool.
func ParseParticipants(value string, pool *Pool) ([]*SpeciesCoefficient, error) {
	if match := localParticipantsPattern.FindStringSubmatch(value); match != nil {
		compartment, aerr := pool.resolveCompartment(match[1])
		if aerr != nil {
			return nil, aerr
		}
		return parseParticipantSides(match[2], match[3], pool, compartment)
	}
	if match := globalParticipantsPattern.FindStringSubmatch(value); match != nil {
		return parseParticipantSides(match[1], match[2], pool, nil)
	}
	return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
		"Incorrectly formatted participants: %s", value)
}

func parseParticipantSides(lhs, rhs string, pool *Pool, defaultCompartment *Compartment) ([]*SpeciesCoefficient, error) {
	var participants []*SpeciesCoefficient
	seen := map[*SpeciesCoefficient]bool{}
	for _, side := range []struct {
		terms  string
		negate bool
	}{{lhs, true}, {rhs, false}} {
		if strings.TrimSpace(side.terms) == "" {
			continue
		}
		for _, term := range strings.Split(side.terms, " + ") {
			p, err := parseParticipantTerm(term, pool, defaultCompartment, side.negate)
			if err != nil {
				return nil, err
			}
			if !seen[p] {
				seen[p] = true
				participants = append(participants, p)
			}
		}
	}
	return participants, nil
}

func parseParticipantTerm(term string, pool *Pool, defaultCompartment *Compartment, negate bool) (*SpeciesCoefficient, error) {
	match := participantTermPattern.FindStringSubmatch(term)
	if match == nil {
		return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
			"Incorrectly formatted participants: %s", term)
	}
	coefficient := 1.0
	if match[1] != "" {
		var err error
		coefficient, err = strconv.ParseFloat(match[1], 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
				"Incorrectly formatted participants: %s", term).WithCause(err)
		}
	}
	if negate {
		coefficient = -coefficient
	}
	compartmentID := match[3]
	if compartmentID == "" {
		if defaultCompartment == nil {
			return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
				"Incorrectly formatted participants: %s", term)
		}
		compartmentID = defaultCompartment.ID
	}
	species, err := makeSpecies(match[2], compartmentID, pool)
	if err != nil {
		return nil, err
	}
	return makeSpeciesCoefficient(species, coefficient, pool), nil
}

// SerializeSubunits renders a complex subunit list, sorted by species-type
// id, joined by " + ".
func SerializeSubunits(subunits []*SpeciesTypeCoefficient) string {
	sorted := make([]*SpeciesTypeCoefficient, len(subunits))
	copy(sorted, subunits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SpeciesType.Meta().ID < sorted[j].SpeciesType.Meta().ID
	})
	parts := make([]string, len(sorted))
	for n, s := range sorted {
		parts[n] = s.Serialize()
	}
	return strings.Join(parts, " + ")
}

// ParseSubunits parses a " + "-separated complex subunit list of
// "(coefficient) type_id" terms.  The coefficient defaults to one.
func ParseSubunits(value string, pool *Pool) ([]*SpeciesTypeCoefficient, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var subunits []*SpeciesTypeCoefficient
	for _, term := range strings.Split(value, " + ") {
		match := subunitTermPattern.FindStringSubmatch(term)
		if match == nil {
			return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
				"Incorrectly formatted participants: %s", value)
		}
		coefficient := 1.0
		if match[1] != "" {
			var err error
			coefficient, err = strconv.ParseFloat(match[1], 64)
			if err != nil {
				return nil, errors.Newf(errors.ErrCodeParticipantInvalid,
					"Incorrectly formatted participants: %s", value).WithCause(err)
			}
		}
		st, aerr := pool.resolveSpeciesType(match[2])
		if aerr != nil {
			return nil, aerr
		}
		subunits = append(subunits, makeSpeciesTypeCoefficient(st, coefficient, pool))
	}
	return subunits, nil
}

// makeSpeciesTypeCoefficient returns the pooled subunit term for the given
// species type and value, creating and caching it on first use.
func makeSpeciesTypeCoefficient(st SpeciesType, coefficient float64, pool *Pool) *SpeciesTypeCoefficient {
	stc := &SpeciesTypeCoefficient{SpeciesType: st, Coefficient: coefficient}
	key := stc.Serialize()
	if cached, ok := pool.Get(KindSpeciesTypeCoefficient, key); ok {
		return cached.(*SpeciesTypeCoefficient)
	}
	pool.Put(KindSpeciesTypeCoefficient, key, stc)
	return stc
}

// balanced reports whether participants conserve each element, used by the
// validator for mass-balance checks.  Participants whose species types
// cannot derive a formula are skipped.
func balancedParticipants(participants []*SpeciesCoefficient) bool {
	totals := map[string]float64{}
	for _, p := range participants {
		f, err := p.Species.SpeciesType.EmpiricalFormula()
		if err != nil {
			return true
		}
		for el, n := range f {
			totals[el] += p.Coefficient * n
		}
	}
	for _, n := range totals {
		if math.Abs(n) > 1e-6 {
			return false
		}
	}
	return true
}
