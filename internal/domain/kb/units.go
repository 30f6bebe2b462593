package kb

import (
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Unit labels the unit of a measured or computed quantity.
type Unit string

const (
	UnitDimensionless Unit = "dimensionless"
	UnitMolar         Unit = "M"
	UnitMilliMolar    Unit = "mM"
	UnitMicroMolar    Unit = "uM"
	UnitPerSecond     Unit = "s^-1"
	UnitMolPerLiter   Unit = "mol/l"
	UnitGramPerLiter  Unit = "g/l"
	UnitSecond        Unit = "s"
	UnitKelvin        Unit = "K"
)

var unitDimensions = map[Unit]string{
	UnitDimensionless: "dimensionless",
	UnitMolar:         "concentration",
	UnitMilliMolar:    "concentration",
	UnitMicroMolar:    "concentration",
	UnitMolPerLiter:   "concentration",
	UnitGramPerLiter:  "density",
	UnitPerSecond:     "frequency",
	UnitSecond:        "time",
	UnitKelvin:        "temperature",
}

// Dimension reports the physical dimension of a registered unit.
func (u Unit) Dimension() (string, error) {
	dim, ok := unitDimensions[u]
	if !ok {
		return "", errors.Newf(errors.CodeInvalidParam, "unknown unit %q", string(u))
	}
	return dim, nil
}
