package kb

import (
	"strconv"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// ValueKind selects how a SpeciesTypeProperty's stored string value is
// interpreted.
type ValueKind string

const (
	ValueKindBoolean ValueKind = "boolean"
	ValueKindString  ValueKind = "string"
	ValueKindInteger ValueKind = "integer"
	ValueKindFloat   ValueKind = "float"
)

// Property names with schema-level meaning.  Species-type derivations read
// these before falling back to computation.
const (
	PropertyEmpiricalFormula = "empirical_formula"
	PropertyCharge           = "charge"
	PropertyStructure        = "structure"
)

// SpeciesTypeProperty is a typed key/value annotation on a species type.
// The value is stored as text and decoded on demand according to ValueKind.
type SpeciesTypeProperty struct {
	ID          string
	Property    string
	Value       string
	ValueKind   ValueKind
	Evidence    []*Evidence
	References  []*Reference
	Identifiers []*Identifier
	Comments    string
}

var valueDecoders = map[ValueKind]func(string) (interface{}, error){
	ValueKindBoolean: func(s string) (interface{}, error) { return strconv.ParseBool(s) },
	ValueKindString:  func(s string) (interface{}, error) { return s, nil },
	ValueKindInteger: func(s string) (interface{}, error) { return strconv.Atoi(s) },
	ValueKindFloat:   func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
}

// GetValue decodes the stored value according to the property's kind.
// The dynamic type of the result is bool, string, int or float64.
func (p *SpeciesTypeProperty) GetValue() (interface{}, error) {
	decode, ok := valueDecoders[p.ValueKind]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeValueKindUnknown,
			"property %q has unknown value kind %q", p.Property, string(p.ValueKind))
	}
	v, err := decode(p.Value)
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeValueKindUnknown,
			"property %q: value %q is not a valid %s", p.Property, p.Value, string(p.ValueKind)).
			WithCause(err)
	}
	return v, nil
}
