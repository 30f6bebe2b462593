package kb

import (
	"github.com/Synergetic-ai/wc-kb/internal/domain/seq"
)

// Locus is any named region of a polymer.  Concrete loci embed
// PolymerLocus and expose it through Region.
type Locus interface {
	LocusID() string
	Region() *PolymerLocus
}

// PolymerLocus is a 1-based inclusive coordinate range [Start, End] on a
// strand of a polymer.  Coordinates are always given on the positive
// strand; a negative-strand locus reads as the reverse complement.
type PolymerLocus struct {
	ID          string
	Name        string
	Cell        *Cell
	Polymer     PolymerSpeciesType
	Start       int
	End         int
	Strand      seq.Strand
	Evidence    []*Evidence
	References  []*Reference
	Identifiers []*Identifier
	Comments    string
}

func (l *PolymerLocus) LocusID() string {
	return l.ID
}

// Region returns the locus itself, satisfying the Locus interface for
// embedding types.
func (l *PolymerLocus) Region() *PolymerLocus {
	return l
}

// Sequence extracts the locus sequence from the polymer, 5' to 3' on the
// locus strand.
func (l *PolymerLocus) Sequence() (string, error) {
	return l.Polymer.Subsequence(l.Start, l.End, l.Strand)
}

// Length returns the locus length in monomers.
func (l *PolymerLocus) Length() int {
	if l.End >= l.Start {
		return l.End - l.Start + 1
	}
	return l.Start - l.End + 1
}

// Direction reports whether the locus reads forward or reverse relative to
// its coordinates.  A zero-length locus has no direction.
func (l *PolymerLocus) Direction() (seq.Direction, error) {
	return seq.GetDirection(l.Strand, l.Start, l.End)
}

// FivePrime returns the coordinate of the locus's 5' end.
func (l *PolymerLocus) FivePrime() int {
	return seq.FivePrime(l.Strand, l.Start, l.End)
}

// ThreePrime returns the coordinate of the locus's 3' end.
func (l *PolymerLocus) ThreePrime() int {
	return seq.ThreePrime(l.Strand, l.Start, l.End)
}
