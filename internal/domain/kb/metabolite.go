package kb

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// MetaboliteSpeciesType is a small molecule.  Composition and charge are
// taken from stored properties when present, and otherwise derived from the
// stored structure (InChI or SMILES).
type MetaboliteSpeciesType struct {
	SpeciesTypeBase
	Cell *Cell
	Type string
}

func (m *MetaboliteSpeciesType) Kind() Kind {
	return KindMetaboliteSpeciesType
}

// Structure returns the parsed InChI or SMILES structure property, or an
// error when the metabolite has none.
func (m *MetaboliteSpeciesType) Structure() (*chem.Structure, error) {
	p := m.FindProperty(PropertyStructure)
	if p == nil {
		return nil, errors.Newf(errors.ErrCodeNoComputationBasis,
			"metabolite %q has no structure", m.ID)
	}
	v, err := p.GetValue()
	if err != nil {
		return nil, err
	}
	text, ok := v.(string)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeStructureInvalid,
			"metabolite %q: structure property must be a string", m.ID)
	}
	return chem.ParseStructure(text)
}

// EmpiricalFormula returns the stored empirical_formula property when
// present, otherwise the formula of the stored structure.
func (m *MetaboliteSpeciesType) EmpiricalFormula() (chem.Formula, error) {
	if p := m.FindProperty(PropertyEmpiricalFormula); p != nil {
		v, err := p.GetValue()
		if err != nil {
			return nil, err
		}
		text, ok := v.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrCodeFormulaInvalid,
				"metabolite %q: empirical_formula property must be a string", m.ID)
		}
		return chem.ParseFormula(text)
	}
	structure, err := m.Structure()
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNoComputationBasis) {
			return nil, errors.Newf(errors.ErrCodeNoComputationBasis,
				"metabolite %q has neither a stored formula nor a structure", m.ID)
		}
		return nil, err
	}
	return structure.Formula, nil
}

// Charge returns the stored charge property when present, otherwise the
// charge of the stored structure.
func (m *MetaboliteSpeciesType) Charge() (float64, error) {
	if p := m.FindProperty(PropertyCharge); p != nil {
		v, err := p.GetValue()
		if err != nil {
			return 0, err
		}
		switch c := v.(type) {
		case int:
			return float64(c), nil
		case float64:
			return c, nil
		default:
			return 0, errors.Newf(errors.ErrCodeValueKindUnknown,
				"metabolite %q: charge property must be numeric", m.ID)
		}
	}
	structure, err := m.Structure()
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNoComputationBasis) {
			return 0, errors.Newf(errors.ErrCodeNoComputationBasis,
				"metabolite %q has neither a stored charge nor a structure", m.ID)
		}
		return 0, err
	}
	return float64(structure.Charge), nil
}

// MolWt derives the molecular weight from the empirical formula.
func (m *MetaboliteSpeciesType) MolWt() (float64, error) {
	return molWtFromFormula(m)
}
