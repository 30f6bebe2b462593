package chem

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Structure is a parsed view of a stored structure notation: the atomic
// composition and the net charge it implies.  The readers extract only the
// formula and charge layers and treat the rest of the notation as opaque.
type Structure struct {
	Formula Formula
	Charge  int
}

// ParseStructure dispatches on the notation: strings starting with "InChI="
// are read as InChI, everything else as explicit-hydrogen SMILES.
func ParseStructure(value string) (*Structure, error) {
	if strings.HasPrefix(value, "InChI=") {
		return ParseInChI(value)
	}
	return ParseSMILES(value)
}

// ParseInChI extracts the composition and net charge of an InChI string from
// its formula, charge (/q) and protonation (/p) layers.  The proton layer
// adjusts both the hydrogen count and the charge: "/p-2" removes two protons.
// Multi-component formulas ("2H2O.Na") are summed.
func ParseInChI(value string) (*Structure, error) {
	layers := strings.Split(value, "/")
	if len(layers) < 2 || !strings.HasPrefix(layers[0], "InChI=") {
		return nil, errors.New(errors.ErrCodeStructureInvalid, "not an InChI string").WithDetail(value)
	}

	formula := Formula{}
	for _, comp := range strings.Split(layers[1], ".") {
		if comp == "" {
			continue
		}
		mult := 1.0
		i := 0
		for i < len(comp) && comp[i] >= '0' && comp[i] <= '9' {
			i++
		}
		if i > 0 {
			n, err := strconv.Atoi(comp[:i])
			if err != nil {
				return nil, errors.New(errors.ErrCodeStructureInvalid, "invalid formula component").WithDetail(comp)
			}
			mult = float64(n)
		}
		f, err := ParseFormula(comp[i:])
		if err != nil {
			return nil, err
		}
		formula = formula.AddScaled(f, mult)
	}

	charge := 0
	protons := 0
	for _, layer := range layers[2:] {
		if len(layer) < 2 {
			continue
		}
		switch layer[0] {
		case 'q':
			n, err := sumChargeLayer(layer[1:])
			if err != nil {
				return nil, errors.New(errors.ErrCodeStructureInvalid, "invalid charge layer").WithDetail(layer)
			}
			charge += n
		case 'p':
			n, err := sumChargeLayer(layer[1:])
			if err != nil {
				return nil, errors.New(errors.ErrCodeStructureInvalid, "invalid protonation layer").WithDetail(layer)
			}
			protons += n
		}
	}

	if protons != 0 {
		formula = formula.AddScaled(Formula{"H": 1}, float64(protons))
		charge += protons
	}
	return &Structure{Formula: formula, Charge: charge}, nil
}

// sumChargeLayer sums a /q or /p layer body.  Multi-component structures
// separate per-component values with ";", empty slots meaning zero.
func sumChargeLayer(body string) (int, error) {
	total := 0
	for _, part := range strings.Split(body, ";") {
		if part == "" {
			continue
		}
		// a leading multiplier such as "2*+1" applies to stereo-parent
		// components
		mult := 1
		if star := strings.IndexByte(part, '*'); star > 0 {
			n, err := strconv.Atoi(part[:star])
			if err != nil {
				return 0, err
			}
			mult = n
			part = part[star+1:]
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, err
		}
		total += mult * n
	}
	return total, nil
}

// organicSubset lists the atoms that may appear outside brackets in SMILES.
// Two-letter symbols must be checked before their one-letter prefixes.
var organicSubset = []string{"Cl", "Br", "B", "C", "N", "O", "P", "S", "F", "I"}

// ParseSMILES counts atoms and formal charges in an explicit-hydrogen SMILES
// string.  Implicit-hydrogen completion would require a full valence model,
// so stored structures that rely on implicit hydrogens should be curated as
// InChI instead; here the hydrogens present in the notation are what you get.
func ParseSMILES(value string) (*Structure, error) {
	if value == "" {
		return nil, errors.New(errors.ErrCodeStructureInvalid, "empty structure string")
	}

	formula := Formula{}
	charge := 0
	i := 0
	for i < len(value) {
		c := value[i]
		switch {
		case c == '[':
			end := strings.IndexByte(value[i:], ']')
			if end < 0 {
				return nil, errors.New(errors.ErrCodeStructureInvalid, "unterminated bracket atom").WithDetail(value)
			}
			q, err := countBracketAtom(value[i+1:i+end], formula)
			if err != nil {
				return nil, err.WithDetail(value)
			}
			charge += q
			i += end + 1
		case c >= 'A' && c <= 'Z':
			matched := false
			for _, sym := range organicSubset {
				if strings.HasPrefix(value[i:], sym) {
					formula[sym]++
					i += len(sym)
					matched = true
					break
				}
			}
			if !matched {
				return nil, errors.New(errors.ErrCodeStructureInvalid, "unrecognized atom symbol").
					WithDetail(value[i:])
			}
		case c == 'b' || c == 'c' || c == 'n' || c == 'o' || c == 'p' || c == 's':
			// aromatic organic-subset atom
			formula[strings.ToUpper(string(c))]++
			i++
		case c == '%':
			// two-digit ring-closure label
			i += 3
		case c >= '0' && c <= '9' || c == '(' || c == ')' ||
			c == '-' || c == '=' || c == '#' || c == '$' || c == ':' ||
			c == '/' || c == '\\' || c == '.' || c == '*' || c == '~':
			i++
		default:
			return nil, errors.New(errors.ErrCodeStructureInvalid, "unexpected character in SMILES").
				WithDetail(string(c))
		}
	}
	return &Structure{Formula: formula, Charge: charge}, nil
}

// countBracketAtom parses the interior of a SMILES bracket atom ("[O-]",
// [C@@H], "[13CH4]", "[Zn+2]"), adding its atoms to formula and returning
// its formal charge.
func countBracketAtom(body string, formula Formula) (int, *errors.AppError) {
	i := 0
	// isotope label
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	if i >= len(body) {
		return 0, errors.New(errors.ErrCodeStructureInvalid, "bracket atom has no symbol")
	}

	var symbol string
	if body[i] >= 'A' && body[i] <= 'Z' {
		symbol = string(body[i])
		i++
		// inside a bracket an uppercase-lowercase pair is always a
		// two-letter element symbol ("Co", "Cl", "Zn")
		if i < len(body) && body[i] >= 'a' && body[i] <= 'z' {
			symbol += string(body[i])
			i++
			if _, ok := AtomicWeight(symbol); !ok {
				return 0, errors.New(errors.ErrCodeStructureInvalid, "unrecognized element symbol").
					WithDetail(symbol)
			}
		}
	} else if unicode.IsLower(rune(body[i])) {
		symbol = strings.ToUpper(string(body[i]))
		i++
	} else {
		return 0, errors.New(errors.ErrCodeStructureInvalid, "bracket atom has no symbol")
	}
	formula[symbol]++

	charge := 0
	for i < len(body) {
		switch body[i] {
		case '@':
			i++
		case 'H':
			i++
			n := 1
			j := i
			for j < len(body) && body[j] >= '0' && body[j] <= '9' {
				j++
			}
			if j > i {
				n, _ = strconv.Atoi(body[i:j])
				i = j
			}
			formula["H"] += float64(n)
		case '+', '-':
			sign := 1
			if body[i] == '-' {
				sign = -1
			}
			i++
			j := i
			for j < len(body) && body[j] >= '0' && body[j] <= '9' {
				j++
			}
			if j > i {
				n, _ := strconv.Atoi(body[i:j])
				charge += sign * n
				i = j
			} else {
				charge += sign
				// repeated signs ("--", "++") accumulate
			}
		default:
			// atom class or other annotation
			i++
		}
	}
	return charge, nil
}
