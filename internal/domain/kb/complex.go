package kb

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
)

// ComplexSpeciesType is a macromolecular complex assembled from subunit
// species types with stoichiometric coefficients.  Its composition, charge
// and weight are coefficient-weighted sums over the subunits, recursing
// through nested complexes.
type ComplexSpeciesType struct {
	SpeciesTypeBase
	Cell             *Cell
	Subunits         []*SpeciesTypeCoefficient
	FormationProcess string
}

func (c *ComplexSpeciesType) Kind() Kind {
	return KindComplexSpeciesType
}

// EmpiricalFormula sums the subunit formulas weighted by coefficient.
func (c *ComplexSpeciesType) EmpiricalFormula() (chem.Formula, error) {
	total := chem.Formula{}
	for _, subunit := range c.Subunits {
		f, err := subunit.SpeciesType.EmpiricalFormula()
		if err != nil {
			return nil, err
		}
		total = total.AddScaled(f, subunit.Coefficient)
	}
	return total, nil
}

// Charge sums the subunit charges weighted by coefficient.
func (c *ComplexSpeciesType) Charge() (float64, error) {
	var total float64
	for _, subunit := range c.Subunits {
		q, err := subunit.SpeciesType.Charge()
		if err != nil {
			return 0, err
		}
		total += subunit.Coefficient * q
	}
	return total, nil
}

// MolWt derives the molecular weight from the summed empirical formula.
func (c *ComplexSpeciesType) MolWt() (float64, error) {
	return molWtFromFormula(c)
}
