// Package seq implements the polymer coordinate and sequence engine: 1-based
// coordinate arithmetic over optionally circular, optionally double-stranded
// polymers, strand complementation, transcription, codon translation, and
// FASTA-backed sequence sourcing.
package seq

import (
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Strand identifies one strand of a (possibly double-stranded) polymer.
type Strand int

const (
	StrandPositive Strand = 1
	StrandNegative Strand = -1
)

func (s Strand) String() string {
	if s == StrandNegative {
		return "-"
	}
	return "+"
}

// ParseStrand converts the textual strand markers "+"/"-" (also accepted:
// "positive"/"negative") to a Strand value.
func ParseStrand(v string) (Strand, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "+", "positive", "":
		return StrandPositive, nil
	case "-", "negative":
		return StrandNegative, nil
	}
	return 0, errors.New(errors.ErrCodeStructuralParse, "invalid strand").WithDetail(v)
}

// Direction is the reading direction of a locus relative to polymer
// numbering.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionReverse
)

func (d Direction) String() string {
	if d == DirectionReverse {
		return "reverse"
	}
	return "forward"
}

// GetDirection derives the reading direction from the strand and the
// coordinate order.  The direction of a single position is undefined.
func GetDirection(strand Strand, start, end int) (Direction, error) {
	if start == end {
		return 0, errors.New(errors.ErrCodeSeqDirection,
			"direction is undefined when start equals end")
	}
	if (strand == StrandPositive) == (end > start) {
		return DirectionForward, nil
	}
	return DirectionReverse, nil
}

// FivePrime returns the 5' coordinate of a strand-aware locus: start on the
// positive strand, end on the negative strand.
func FivePrime(strand Strand, start, end int) int {
	if strand == StrandNegative {
		return end
	}
	return start
}

// ThreePrime returns the 3' coordinate of a strand-aware locus.
func ThreePrime(strand Strand, start, end int) int {
	if strand == StrandNegative {
		return start
	}
	return end
}

var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G', 'N': 'N',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Unrecognized symbols pass through unchanged.
func ReverseComplement(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[len(s)-1-i]
		if c, ok := complement[b]; ok {
			b = c
		}
		out[i] = b
	}
	return string(out)
}

// Transcribe converts a DNA coding-strand sequence to RNA (T → U).
func Transcribe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'T':
			return 'U'
		case 't':
			return 'u'
		}
		return r
	}, s)
}

// Subsequence extracts the 1-based inclusive range [start, end] from a
// polymer's positive strand.  For a linear polymer the range must lie within
// the sequence.  For a circular polymer any integer coordinates are legal:
// positions wrap modulo the length, and ranges longer than the polymer read
// around the circle as many times as needed.
func Subsequence(sequence string, start, end int, circular bool) (string, error) {
	n := len(sequence)
	if n == 0 {
		return "", errors.New(errors.ErrCodeSeqRange, "empty sequence")
	}

	if !circular {
		if start < 1 || end > n || start > end {
			return "", errors.Newf(errors.ErrCodeSeqRange,
				"start and end coordinates (%d, %d) must lie within a linear polymer of length %d",
				start, end, n)
		}
		return sequence[start-1 : end], nil
	}

	for end < start {
		// wraparound request: read from start forward around the circle
		end += n
	}
	var sb strings.Builder
	sb.Grow(end - start + 1)
	for pos := start; pos <= end; pos++ {
		idx := (pos - 1) % n
		if idx < 0 {
			idx += n
		}
		sb.WriteByte(sequence[idx])
	}
	return sb.String(), nil
}

// StrandSubsequence extracts [start, end] from the requested strand: the
// negative strand yields the reverse complement of the positive-strand slice.
func StrandSubsequence(sequence string, start, end int, strand Strand, circular bool) (string, error) {
	s, err := Subsequence(sequence, start, end, circular)
	if err != nil {
		return "", err
	}
	if strand == StrandNegative {
		s = ReverseComplement(s)
	}
	return s, nil
}
