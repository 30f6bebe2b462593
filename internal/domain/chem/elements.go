package chem

// atomicWeights maps element symbols to standard atomic weights (conventional
// abridged values, g/mol).  The set covers the elements that occur in cellular
// biochemistry plus the common trace metals found in cofactors.
var atomicWeights = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.973762,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Mo": 95.95,
	"I":  126.904,
	"W":  183.84,
}

// AtomicWeight returns the standard atomic weight of the element with the
// given symbol and whether the symbol is known.
func AtomicWeight(symbol string) (float64, bool) {
	w, ok := atomicWeights[symbol]
	return w, ok
}
