package kb

// Reference is a citation attached to an entity or to a piece of evidence.
type Reference struct {
	ID       string
	Name     string
	Authors  string
	Title    string
	Journal  string
	Volume   string
	Pages    string
	Year     int
	Comments string
}

// Experiment groups the evidence obtained under one experimental protocol.
type Experiment struct {
	ID          string
	Name        string
	Design      string
	Species     string
	Temperature float64
	PH          float64
	References  []*Reference
	Comments    string
}

// Evidence is a single experimental observation supporting a property
// value or an entity annotation.
type Evidence struct {
	ID         string
	Cell       *Cell
	Value      string
	Units      Unit
	Experiment *Experiment
	References []*Reference
	Comments   string
}
