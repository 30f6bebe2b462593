package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/chem"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

func TestParseFormula_Glucose(t *testing.T) {
	t.Parallel()
	f, err := chem.ParseFormula("C6H12O6")
	require.NoError(t, err)
	assert.Equal(t, chem.Formula{"C": 6, "H": 12, "O": 6}, f)
}

func TestParseFormula_ImplicitCounts(t *testing.T) {
	t.Parallel()
	f, err := chem.ParseFormula("C10H12N5O6P")
	require.NoError(t, err)
	assert.Equal(t, 1.0, f["P"])
	assert.Equal(t, 5.0, f["N"])
}

func TestParseFormula_TwoLetterElement(t *testing.T) {
	t.Parallel()
	f, err := chem.ParseFormula("C8H7NO3Zn")
	require.NoError(t, err)
	assert.Equal(t, 1.0, f["Zn"])
}

func TestParseFormula_Empty(t *testing.T) {
	t.Parallel()
	f, err := chem.ParseFormula("")
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestParseFormula_Invalid(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"6C", "c6h12", "(CH3)2"} {
		_, err := chem.ParseFormula(s)
		assert.Error(t, err, s)
		assert.True(t, errors.IsCode(err, errors.ErrCodeFormulaInvalid), s)
	}
}

func TestFormula_Arithmetic(t *testing.T) {
	t.Parallel()
	water := chem.MustParseFormula("H2O")
	glucose := chem.MustParseFormula("C6H12O6")

	sum := glucose.Add(water)
	assert.True(t, sum.Equal(chem.MustParseFormula("C6H14O7")))

	// cancellation drops the element entirely
	none := water.Sub(water)
	assert.Empty(t, none)

	scaled := water.Scale(3)
	assert.True(t, scaled.Equal(chem.MustParseFormula("H6O3")))

	// inputs are never mutated
	assert.True(t, water.Equal(chem.MustParseFormula("H2O")))
}

func TestFormula_MolecularWeight(t *testing.T) {
	t.Parallel()
	glucose := chem.MustParseFormula("C6H12O6")
	mw, err := glucose.MolecularWeight()
	require.NoError(t, err)
	assert.InDelta(t, 180.156, mw, 1e-6)
}

func TestFormula_MolecularWeight_UnknownElement(t *testing.T) {
	t.Parallel()
	_, err := chem.Formula{"Xx": 1}.MolecularWeight()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownElement))
}

func TestFormula_String_HillOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "C6H12O6", chem.MustParseFormula("O6C6H12").String())
	assert.Equal(t, "CH4", chem.Formula{"C": 1, "H": 4}.String())
	assert.Equal(t, "HO", chem.Formula{"O": 1, "H": 1}.String())
	assert.Equal(t, "C10H12N5O6P", chem.MustParseFormula("C10H12N5O6P").String())
}
