package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

const chromosome = "AATGCCC"

func TestSubsequence_Linear(t *testing.T) {
	t.Parallel()
	s, err := seq.Subsequence(chromosome, 1, 3, false)
	require.NoError(t, err)
	assert.Equal(t, "AAT", s)

	s, err = seq.Subsequence(chromosome, 1, 7, false)
	require.NoError(t, err)
	assert.Equal(t, chromosome, s)
}

func TestSubsequence_LinearOutOfRange(t *testing.T) {
	t.Parallel()
	cases := []struct{ start, end int }{
		{0, 3},
		{3, 8},
		{5, 3},
		{-1, 2},
	}
	for _, c := range cases {
		_, err := seq.Subsequence(chromosome, c.start, c.end, false)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeSeqRange))
	}
}

func TestSubsequence_CircularWrapsOrigin(t *testing.T) {
	t.Parallel()
	s, err := seq.Subsequence(chromosome, 7, 8, true)
	require.NoError(t, err)
	assert.Equal(t, "CA", s)

	s, err = seq.Subsequence(chromosome, 4, 8, true)
	require.NoError(t, err)
	assert.Equal(t, "GCCCA", s)

	s, err = seq.Subsequence(chromosome, 5, 9, true)
	require.NoError(t, err)
	assert.Equal(t, "CCCAA", s)
}

func TestSubsequence_CircularEndBeforeStart(t *testing.T) {
	t.Parallel()
	// end < start reads forward around the circle
	s, err := seq.Subsequence(chromosome, 5, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "CCCAA", s)
}

func TestSubsequence_CircularMultipleLaps(t *testing.T) {
	t.Parallel()
	s, err := seq.Subsequence(chromosome, 3, 23, true)
	require.NoError(t, err)
	assert.Equal(t, "TGCCCAATGCCCAATGCCCAA", s)
	assert.Len(t, s, 21)
}

func TestSubsequence_CircularNonPositiveCoordinates(t *testing.T) {
	t.Parallel()
	s, err := seq.Subsequence(chromosome, 0, 1, true)
	require.NoError(t, err)
	assert.Equal(t, "CA", s)

	s, err = seq.Subsequence(chromosome, -2, 1, true)
	require.NoError(t, err)
	assert.Equal(t, "CCCA", s)
}

func TestStrandSubsequence_NegativeStrand(t *testing.T) {
	t.Parallel()
	s, err := seq.StrandSubsequence(chromosome, 1, 3, seq.StrandNegative, false)
	require.NoError(t, err)
	assert.Equal(t, "ATT", s)
}

func TestReverseComplement(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ACGT", seq.ReverseComplement("ACGT"))
	assert.Equal(t, "GGGCATT", seq.ReverseComplement(chromosome))
	assert.Equal(t, "NAC", seq.ReverseComplement("GTN"))
}

func TestTranscribe(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "AAUGCCC", seq.Transcribe(chromosome))
	assert.Equal(t, "acgu", seq.Transcribe("acgt"))
}

func TestGetDirection(t *testing.T) {
	t.Parallel()
	d, err := seq.GetDirection(seq.StrandPositive, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, seq.DirectionForward, d)

	d, err = seq.GetDirection(seq.StrandPositive, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, seq.DirectionReverse, d)

	d, err = seq.GetDirection(seq.StrandNegative, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, seq.DirectionReverse, d)

	d, err = seq.GetDirection(seq.StrandNegative, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, seq.DirectionForward, d)
}

func TestGetDirection_SinglePosition(t *testing.T) {
	t.Parallel()
	_, err := seq.GetDirection(seq.StrandPositive, 3, 3)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSeqDirection))
}

func TestFivePrimeThreePrime(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, seq.FivePrime(seq.StrandPositive, 1, 5))
	assert.Equal(t, 5, seq.ThreePrime(seq.StrandPositive, 1, 5))
	assert.Equal(t, 5, seq.FivePrime(seq.StrandNegative, 1, 5))
	assert.Equal(t, 1, seq.ThreePrime(seq.StrandNegative, 1, 5))
}

func TestParseStrand(t *testing.T) {
	t.Parallel()
	s, err := seq.ParseStrand("+")
	require.NoError(t, err)
	assert.Equal(t, seq.StrandPositive, s)

	s, err = seq.ParseStrand("negative")
	require.NoError(t, err)
	assert.Equal(t, seq.StrandNegative, s)

	_, err = seq.ParseStrand("?")
	assert.Error(t, err)
}
