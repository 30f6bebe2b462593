// Package chem implements the formula/mass/charge derivation engine for the
// knowledge base: empirical-formula arithmetic, molecular-weight computation
// from atomic weights, and narrow readers for stored structure notations
// (InChI layers and explicit-hydrogen SMILES).
package chem

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Formula is an empirical formula: a mapping from element symbol to atom
// count.  Counts are float64 because polymer derivations distribute ambiguous
// monomers (e.g. the base "N") fractionally across the concrete monomers.
//
// Formula values are treated as immutable; all arithmetic returns new maps.
type Formula map[string]float64

// formulaTermPattern matches one element-count term, e.g. "C10", "Zn", "H".
var formulaTermPattern = regexp.MustCompile(`([A-Z][a-z]?)(\d*\.?\d*)`)

// ParseFormula parses an empirical formula string such as "C10H12N5O6P" or
// "C8H7N1O3Zn1".  An empty string yields an empty formula.
func ParseFormula(s string) (Formula, error) {
	f := Formula{}
	rest := strings.TrimSpace(s)
	for len(rest) > 0 {
		m := formulaTermPattern.FindStringSubmatch(rest)
		if m == nil || !strings.HasPrefix(rest, m[0]) {
			return nil, errors.New(errors.ErrCodeFormulaInvalid, "invalid empirical formula").
				WithDetail(s)
		}
		count := 1.0
		if m[2] != "" {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeFormulaInvalid, "invalid element count").
					WithDetail(s)
			}
			count = v
		}
		f[m[1]] += count
		rest = rest[len(m[0]):]
	}
	return f, nil
}

// MustParseFormula parses a formula and panics on error.  Intended for
// package-level constant tables of known-good formulas.
func MustParseFormula(s string) Formula {
	f, err := ParseFormula(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Clone returns an independent copy of the formula.
func (f Formula) Clone() Formula {
	out := make(Formula, len(f))
	for el, n := range f {
		out[el] = n
	}
	return out
}

// Add returns the element-wise sum of f and g.
func (f Formula) Add(g Formula) Formula {
	return f.AddScaled(g, 1)
}

// Sub returns the element-wise difference f − g.
func (f Formula) Sub(g Formula) Formula {
	return f.AddScaled(g, -1)
}

// AddScaled returns f + k·g, dropping elements whose count cancels to zero.
func (f Formula) AddScaled(g Formula, k float64) Formula {
	out := f.Clone()
	for el, n := range g {
		out[el] += k * n
		if math.Abs(out[el]) < 1e-9 {
			delete(out, el)
		}
	}
	return out
}

// Scale returns k·f.
func (f Formula) Scale(k float64) Formula {
	return Formula{}.AddScaled(f, k)
}

// Equal reports whether f and g have the same element counts within a small
// tolerance.
func (f Formula) Equal(g Formula) bool {
	for el, n := range f {
		if math.Abs(n-g[el]) > 1e-9 {
			return false
		}
	}
	for el, n := range g {
		if _, ok := f[el]; !ok && math.Abs(n) > 1e-9 {
			return false
		}
	}
	return true
}

// MolecularWeight returns the molecular weight implied by the formula, in
// g/mol.  Unknown element symbols are an error.
func (f Formula) MolecularWeight() (float64, error) {
	var mw float64
	for el, n := range f {
		w, ok := AtomicWeight(el)
		if !ok {
			return 0, errors.New(errors.ErrCodeUnknownElement, "unknown element").WithDetail(el)
		}
		mw += n * w
	}
	return mw, nil
}

// String renders the formula in Hill order: carbon first, hydrogen second,
// all other elements alphabetically.  Unit counts are omitted; fractional
// counts are rendered with up to six significant digits.
func (f Formula) String() string {
	elems := make([]string, 0, len(f))
	for el := range f {
		if el != "C" && el != "H" {
			elems = append(elems, el)
		}
	}
	sort.Strings(elems)
	if _, ok := f["H"]; ok {
		elems = append([]string{"H"}, elems...)
	}
	if _, ok := f["C"]; ok {
		elems = append([]string{"C"}, elems...)
	}

	var sb strings.Builder
	for _, el := range elems {
		n := f[el]
		sb.WriteString(el)
		if math.Abs(n-1) < 1e-9 {
			continue
		}
		if math.Abs(n-math.Round(n)) < 1e-9 {
			fmt.Fprintf(&sb, "%d", int64(math.Round(n)))
		} else {
			fmt.Fprintf(&sb, "%.6g", n)
		}
	}
	return sb.String()
}
