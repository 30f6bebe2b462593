package seq

import (
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// TranslationTable is an NCBI genetic-code table: codon to amino acid, with
// '*' marking stop codons, plus the set of alternative start codons.
type TranslationTable struct {
	ID     int
	Codons map[string]byte
	Starts map[string]bool
}

// standardCode is NCBI translation table 1.
var standardCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// translationTables holds the supported genetic codes.  Table 4 (mold,
// protozoan, and mycoplasma/spiroplasma) reads TGA as tryptophan and accepts
// an extended start-codon set.
var translationTables = map[int]*TranslationTable{
	1: {
		ID:     1,
		Codons: standardCode,
		Starts: map[string]bool{"TTG": true, "CTG": true, "ATG": true},
	},
	4: {
		ID:     4,
		Codons: overrideCodons(standardCode, map[string]byte{"TGA": 'W'}),
		Starts: map[string]bool{
			"TTA": true, "TTG": true, "CTG": true, "ATT": true,
			"ATC": true, "ATA": true, "ATG": true, "GTG": true,
		},
	},
}

func overrideCodons(base map[string]byte, overrides map[string]byte) map[string]byte {
	out := make(map[string]byte, len(base))
	for c, aa := range base {
		out[c] = aa
	}
	for c, aa := range overrides {
		out[c] = aa
	}
	return out
}

// Table returns the translation table with the given NCBI id.
func Table(id int) (*TranslationTable, error) {
	t, ok := translationTables[id]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeSeqTranslation, "unsupported translation table %d", id)
	}
	return t, nil
}

// TranslateCDS translates a DNA coding sequence to a protein sequence using
// the translation table with the given id.  The sequence must be a whole
// number of codons, begin with a start codon (always read as methionine) and
// end with a stop codon, which is stripped; an internal stop codon is an
// error.
func TranslateCDS(dna string, tableID int) (string, error) {
	t, err := Table(tableID)
	if err != nil {
		return "", err
	}
	dna = strings.ToUpper(dna)
	if len(dna) < 6 || len(dna)%3 != 0 {
		return "", errors.Newf(errors.ErrCodeSeqTranslation,
			"coding sequence length %d is not a whole number of codons", len(dna))
	}

	if !t.Starts[dna[:3]] {
		return "", errors.New(errors.ErrCodeSeqTranslation, "coding sequence does not begin with a start codon").
			WithDetail(dna[:3])
	}

	n := len(dna)/3 - 1
	out := make([]byte, 0, n)
	out = append(out, 'M')
	for i := 1; i < n; i++ {
		codon := dna[i*3 : i*3+3]
		aa, ok := t.Codons[codon]
		if !ok {
			return "", errors.New(errors.ErrCodeSeqTranslation, "unrecognized codon").WithDetail(codon)
		}
		if aa == '*' {
			return "", errors.Newf(errors.ErrCodeSeqTranslation, "internal stop codon at position %d", i*3+1)
		}
		out = append(out, aa)
	}

	last := dna[len(dna)-3:]
	if aa, ok := t.Codons[last]; !ok || aa != '*' {
		return "", errors.New(errors.ErrCodeSeqTranslation, "coding sequence does not end with a stop codon").
			WithDetail(last)
	}
	return string(out), nil
}
