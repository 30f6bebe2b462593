package kb

import (
	"regexp"
	"strconv"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Expression grammar.
//
// Expressions are stored verbatim and scanned for referenced entities:
// species tokens carry a compartment suffix ("met1[c]"), bare tokens
// resolve first as observables and then as parameters, and numeric tokens
// are constants.  Operators (including both "^" and "**") are not
// validated, only skipped over.
//
// Signed-exponent literals ("1e-3") must scan before the identifier
// pattern: the identifier pattern alone would stop at the sign and leave
// a dangling "1e" token.

var (
	expressionTokenPattern = regexp.MustCompile(`(?i)[0-9]+(?:\.[0-9]+)?e[+-][0-9]+|[a-z0-9_]+(?:\[[a-z0-9_\-]+\])?`)
	numericTokenPattern    = regexp.MustCompile(`^[0-9]+$`)
	speciesTokenPattern    = regexp.MustCompile(`(?i)^[a-z0-9_]+\[[a-z0-9_\-]+\]$`)
)

// ObservableExpression is a parsed arithmetic expression over species and
// other observables.
type ObservableExpression struct {
	Expression  string
	Species     []*Species
	Observables []*Observable
}

// RateLawExpression is a parsed arithmetic expression over species,
// observables and parameters.
type RateLawExpression struct {
	Expression  string
	Species     []*Species
	Observables []*Observable
	Parameters  []*Parameter
}

// Observable is a named, observable quantity defined by an expression over
// species and other observables.
type Observable struct {
	ID         string
	Name       string
	Cell       *Cell
	Expression *ObservableExpression
	Units      Unit
}

// isNumericToken reports whether a scanned token is a numeric constant,
// including exponent forms such as "2e3".
func isNumericToken(token string) bool {
	if numericTokenPattern.MatchString(token) {
		return true
	}
	_, err := strconv.ParseFloat(token, 64)
	return err == nil
}

// expressionRefs collects the entities referenced by an expression, each
// recorded once in first-appearance order.
type expressionRefs struct {
	species     []*Species
	observables []*Observable
	parameters  []*Parameter
}

// scanExpression resolves every identifier token in value against the pool.
// Parameters resolve only when withParameters is set; an observable
// expression referencing a parameter is an error.
func scanExpression(value string, pool *Pool, withParameters bool) (*expressionRefs, error) {
	refs := &expressionRefs{}
	seenSpecies := map[*Species]bool{}
	seenObservables := map[*Observable]bool{}
	seenParameters := map[*Parameter]bool{}
	for _, token := range expressionTokenPattern.FindAllString(value, -1) {
		switch {
		case speciesTokenPattern.MatchString(token):
			species, err := ParseSpecies(token, pool)
			if err != nil {
				return nil, err
			}
			if !seenSpecies[species] {
				seenSpecies[species] = true
				refs.species = append(refs.species, species)
			}
		case isNumericToken(token):
			// constant
		default:
			if obj, ok := pool.Get(KindObservable, token); ok {
				o := obj.(*Observable)
				if !seenObservables[o] {
					seenObservables[o] = true
					refs.observables = append(refs.observables, o)
				}
				continue
			}
			if withParameters {
				if obj, ok := pool.Get(KindParameter, token); ok {
					param := obj.(*Parameter)
					if !seenParameters[param] {
						seenParameters[param] = true
						refs.parameters = append(refs.parameters, param)
					}
					continue
				}
			}
			return nil, errors.Newf(errors.ErrCodeResolution,
				"unknown identifier %q in expression %q", token, value)
		}
	}
	return refs, nil
}

// ParseObservableExpression parses an expression over species and
// observables, caching the result in the pool by its raw text.
func ParseObservableExpression(value string, pool *Pool) (*ObservableExpression, error) {
	if cached, ok := pool.Get(KindObservableExpression, value); ok {
		return cached.(*ObservableExpression), nil
	}
	refs, err := scanExpression(value, pool, false)
	if err != nil {
		return nil, err
	}
	expr := &ObservableExpression{
		Expression:  value,
		Species:     refs.species,
		Observables: refs.observables,
	}
	pool.Put(KindObservableExpression, value, expr)
	return expr, nil
}

// ParseRateLawExpression parses an expression over species, observables
// and parameters, caching the result in the pool by its raw text.
func ParseRateLawExpression(value string, pool *Pool) (*RateLawExpression, error) {
	if cached, ok := pool.Get(KindRateLawExpression, value); ok {
		return cached.(*RateLawExpression), nil
	}
	refs, err := scanExpression(value, pool, true)
	if err != nil {
		return nil, err
	}
	expr := &RateLawExpression{
		Expression:  value,
		Species:     refs.species,
		Observables: refs.observables,
		Parameters:  refs.parameters,
	}
	pool.Put(KindRateLawExpression, value, expr)
	return expr, nil
}

// Serialize returns the raw expression text.
func (e *ObservableExpression) Serialize() string { return e.Expression }

// Serialize returns the raw expression text.
func (e *RateLawExpression) Serialize() string { return e.Expression }
