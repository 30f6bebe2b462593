package kb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/kb"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// newTestPool returns a pool with compartments "c" and "m" and metabolites
// "met1", "met2" and "1met1" registered.
func newTestPool() *kb.Pool {
	pool := kb.NewPool()
	pool.AddCompartment(&kb.Compartment{ID: "c"})
	pool.AddCompartment(&kb.Compartment{ID: "m"})
	for _, id := range []string{"met1", "met2", "1met1"} {
		met := &kb.MetaboliteSpeciesType{}
		met.ID = id
		pool.AddSpeciesType(met)
	}
	return pool
}

func TestParseSpecies_RoundTrip(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	species, err := kb.ParseSpecies("met1[c]", pool)
	require.NoError(t, err)
	assert.Equal(t, "met1[c]", species.Serialize())
	assert.Equal(t, "met1", species.SpeciesType.Meta().ID)
	assert.Equal(t, "c", species.Compartment.ID)
}

func TestParseSpecies_Cached(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	first, err := kb.ParseSpecies("met1[c]", pool)
	require.NoError(t, err)
	second, err := kb.ParseSpecies("met1[c]", pool)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, pool.Count(kb.KindSpecies))

	other, err := kb.ParseSpecies("met1[m]", pool)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, pool.Count(kb.KindSpecies))
}

func TestParseSpecies_Errors(t *testing.T) {
	t.Parallel()
	pool := newTestPool()

	_, err := kb.ParseSpecies("met1", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeStructuralParse))

	_, err = kb.ParseSpecies("unknown[c]", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResolution))

	_, err = kb.ParseSpecies("met1[x]", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResolution))
}

func TestSerializeSpeciesCoefficient(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	species, err := kb.ParseSpecies("met1[c]", pool)
	require.NoError(t, err)

	cases := []struct {
		coefficient     float64
		showCompartment bool
		showSign        bool
		want            string
	}{
		{1, true, true, "met1[c]"},
		{1, false, true, "met1"},
		{2, true, true, "(2) met1[c]"},
		{-2, true, true, "(-2) met1[c]"},
		{-2, true, false, "(2) met1[c]"},
		{1.5, true, true, "(1.500000e+00) met1[c]"},
		{2000, true, true, "(2.000000e+03) met1[c]"},
		{-1, false, false, "met1"},
	}
	for _, c := range cases {
		got := kb.SerializeSpeciesCoefficient(species, c.coefficient, c.showCompartment, c.showSign)
		assert.Equal(t, c.want, got)
	}
}

func TestParseSpeciesCoefficient(t *testing.T) {
	t.Parallel()
	pool := newTestPool()

	sc, err := kb.ParseSpeciesCoefficient("(2) met1[c]", pool, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sc.Coefficient)
	assert.Equal(t, "(2) met1[c]", sc.Serialize())

	// default compartment fills in a missing suffix
	c, _ := pool.Compartment("c")
	sc, err = kb.ParseSpeciesCoefficient("met2", pool, c)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sc.Coefficient)
	assert.Equal(t, "met2[c]", sc.Species.ID())

	// no compartment and no default is an error
	_, err = kb.ParseSpeciesCoefficient("met2", pool, nil)
	require.Error(t, err)
}

func TestParseSpeciesCoefficient_Cached(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	first, err := kb.ParseSpeciesCoefficient("(2) met1[c]", pool, nil)
	require.NoError(t, err)
	second, err := kb.ParseSpeciesCoefficient("(2) met1[c]", pool, nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, pool.Count(kb.KindSpeciesCoefficient))
	assert.Equal(t, 1, pool.Count(kb.KindSpecies))

	third, err := kb.ParseSpeciesCoefficient("(3) met1[c]", pool, nil)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, pool.Count(kb.KindSpeciesCoefficient))
	assert.Equal(t, 1, pool.Count(kb.KindSpecies))
}

func TestParseParticipants_LocalForm(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	participants, err := kb.ParseParticipants("[c]: (2) 1met1 ==> met2", pool)
	require.NoError(t, err)
	require.Len(t, participants, 2)

	assert.Equal(t, -2.0, participants[0].Coefficient)
	assert.Equal(t, "1met1[c]", participants[0].Species.ID())
	assert.Equal(t, 1.0, participants[1].Coefficient)
	assert.Equal(t, "met2[c]", participants[1].Species.ID())

	assert.Equal(t, "[c]: (2) 1met1 ==> met2", kb.SerializeParticipants(participants))
}

func TestParseParticipants_LocalFormEmptySides(t *testing.T) {
	t.Parallel()
	pool := newTestPool()

	participants, err := kb.ParseParticipants("[c]: ==> met2", pool)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, 1.0, participants[0].Coefficient)

	participants, err = kb.ParseParticipants("[c]: (2) 1met1 ==> ", pool)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, -2.0, participants[0].Coefficient)
	assert.Equal(t, "[c]: (2) 1met1 ==> ", kb.SerializeParticipants(participants))
}

func TestParseParticipants_GlobalForm(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	value := "(2) met1[c] + met2[c] ==> met2[m]"
	participants, err := kb.ParseParticipants(value, pool)
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, -2.0, participants[0].Coefficient)
	assert.Equal(t, -1.0, participants[1].Coefficient)
	assert.Equal(t, 1.0, participants[2].Coefficient)
	assert.Equal(t, value, kb.SerializeParticipants(participants))
}

func TestParseParticipants_Malformed(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	cases := []string{
		"==> 1met1[c]",
		"met2[c] ==>",
		"met2[c] ==> ",
		"[x: met1 ==> met2",
		"met1 + ==> met2",
		"not an equation",
	}
	for _, value := range cases {
		_, err := kb.ParseParticipants(value, pool)
		require.Error(t, err, value)
		assert.True(t, errors.IsCode(err, errors.ErrCodeParticipantInvalid), value)
		assert.Contains(t, err.Error(), "Incorrectly formatted participants: "+value)
	}
}

func TestParseParticipants_UnknownCompartment(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	_, err := kb.ParseParticipants("[x]: met1 ==> met2", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResolution))
}

func TestParseParticipants_ScientificCoefficient(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	value := "[c]: (2.000000e+03) met1 ==> met2"
	participants, err := kb.ParseParticipants(value, pool)
	require.NoError(t, err)
	assert.Equal(t, -2000.0, participants[0].Coefficient)
	assert.Equal(t, value, kb.SerializeParticipants(participants))
}

func TestSerializeParticipants_Empty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", kb.SerializeParticipants(nil))
}

func TestSubunits_RoundTrip(t *testing.T) {
	t.Parallel()
	pool := newTestPool()
	subunits, err := kb.ParseSubunits("(2) met2 + met1", pool)
	require.NoError(t, err)
	require.Len(t, subunits, 2)

	// serialization sorts by species type id
	assert.Equal(t, "met1 + (2) met2", kb.SerializeSubunits(subunits))
}

func TestParseSubunits_Errors(t *testing.T) {
	t.Parallel()
	pool := newTestPool()

	_, err := kb.ParseSubunits("met1 & met2", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeParticipantInvalid))

	_, err = kb.ParseSubunits("unknown", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeResolution))
}

func TestIdentifiers_RoundTrip(t *testing.T) {
	t.Parallel()
	pool := kb.NewPool()
	ids, err := kb.ParseIdentifiers("chebi:CHEBI:17234, kegg:C00031", pool)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "chebi", ids[0].Namespace)
	assert.Equal(t, "CHEBI:17234", ids[0].ID)
	assert.Equal(t, "chebi:CHEBI:17234, kegg:C00031", kb.SerializeIdentifiers(ids))

	// repeated identifiers resolve to the pooled instance
	again, err := kb.ParseIdentifiers("chebi:CHEBI:17234", pool)
	require.NoError(t, err)
	assert.Same(t, ids[0], again[0])
}

func TestParseIdentifiers_Invalid(t *testing.T) {
	t.Parallel()
	pool := kb.NewPool()
	_, err := kb.ParseIdentifiers("no-colon-here", pool)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeIdentifierInvalid))
}
