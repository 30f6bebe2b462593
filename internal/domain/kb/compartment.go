package kb

// Compartment is a physical or logical region of the cell.  Species ids
// qualify their species type with the compartment: "met1[c]".
type Compartment struct {
	ID                 string
	Name               string
	Cell               *Cell
	VolumetricFraction float64
	References         []*Reference
	Identifiers        []*Identifier
	Comments           string
}
