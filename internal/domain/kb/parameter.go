package kb

// Parameter is a named numeric constant with units, referenced from
// rate-law expressions by bare id.
type Parameter struct {
	ID          string
	Name        string
	Cell        *Cell
	Value       float64
	Error       float64
	Units       Unit
	References  []*Reference
	Identifiers []*Identifier
	Comments    string
}
