package kb

// Concentration is a measured concentration of a species.
type Concentration struct {
	Cell       *Cell
	Species    *Species
	Value      float64
	Units      Unit
	Evidence   []*Evidence
	References []*Reference
	Comments   string
}

// NewConcentration returns a concentration in the default unit, molar.
func NewConcentration(species *Species, value float64) *Concentration {
	return &Concentration{Species: species, Value: value, Units: UnitMolar}
}

// ID returns the canonical concentration id "CONC[species_id]".
func (c *Concentration) ID() string {
	return "CONC[" + c.Species.ID() + "]"
}

// Serialize renders the concentration as its canonical id.
func (c *Concentration) Serialize() string {
	return c.ID()
}
