package kb

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
)

// SpeciesType is a molecular species definition independent of location.
// Implementations derive their elemental composition, net charge and
// molecular weight from stored properties or from sequence.
type SpeciesType interface {
	// Meta exposes the shared annotation fields.
	Meta() *SpeciesTypeBase
	// Kind names the pool family the type registers under.
	Kind() Kind
	// EmpiricalFormula derives the elemental composition.
	EmpiricalFormula() (chem.Formula, error)
	// Charge derives the net charge.  Returned as float64 so that
	// coefficient-weighted sums over complexes stay uniform.
	Charge() (float64, error)
	// MolWt derives the molecular weight in daltons.
	MolWt() (float64, error)
}

// SpeciesTypeBase carries the fields common to every species type.
type SpeciesTypeBase struct {
	ID          string
	Name        string
	Properties  []*SpeciesTypeProperty
	Evidence    []*Evidence
	References  []*Reference
	Identifiers []*Identifier
	Comments    string
}

// Meta returns the base itself, satisfying the SpeciesType interface for
// embedding types.
func (b *SpeciesTypeBase) Meta() *SpeciesTypeBase {
	return b
}

// FindProperty returns the first property with the given name, or nil.
func (b *SpeciesTypeBase) FindProperty(name string) *SpeciesTypeProperty {
	for _, p := range b.Properties {
		if p.Property == name {
			return p
		}
	}
	return nil
}

// molWtFromFormula is the shared molecular-weight derivation: compute the
// empirical formula, then sum atomic weights.
func molWtFromFormula(st SpeciesType) (float64, error) {
	formula, err := st.EmpiricalFormula()
	if err != nil {
		return 0, err
	}
	return formula.MolecularWeight()
}
