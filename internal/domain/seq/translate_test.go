package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

func TestTranslateCDS_StandardCode(t *testing.T) {
	t.Parallel()
	protein, err := seq.TranslateCDS("ATGAAACGTTAA", 1)
	require.NoError(t, err)
	assert.Equal(t, "MKR", protein)
}

func TestTranslateCDS_AlternativeStartReadsAsMethionine(t *testing.T) {
	t.Parallel()
	protein, err := seq.TranslateCDS("TTGAAATAA", 1)
	require.NoError(t, err)
	assert.Equal(t, "MK", protein)
}

func TestTranslateCDS_LowercaseInput(t *testing.T) {
	t.Parallel()
	protein, err := seq.TranslateCDS("atgaaacgttaa", 1)
	require.NoError(t, err)
	assert.Equal(t, "MKR", protein)
}

func TestTranslateCDS_Table4ReadsTGAAsTryptophan(t *testing.T) {
	t.Parallel()
	protein, err := seq.TranslateCDS("ATGTGATAA", 4)
	require.NoError(t, err)
	assert.Equal(t, "MW", protein)

	// in the standard code the same sequence has an internal stop
	_, err = seq.TranslateCDS("ATGTGATAA", 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqTranslation))
}

func TestTranslateCDS_Errors(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"bad length":     "ATGAA",
		"too short":      "ATG",
		"no start codon": "CCCAAATAA",
		"no stop codon":  "ATGAAACGT",
		"internal stop":  "ATGTAACGTTAA",
	}
	for name, dna := range cases {
		dna := dna
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := seq.TranslateCDS(dna, 1)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeSeqTranslation))
		})
	}
}

func TestTable_Unsupported(t *testing.T) {
	t.Parallel()
	_, err := seq.Table(99)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqTranslation))
}
