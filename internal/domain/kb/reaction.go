package kb

import (
	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Reaction is a chemical transformation over located species.  Reactant
// participants carry negative coefficients, products positive ones.
type Reaction struct {
	ID           string
	Name         string
	Cell         *Cell
	Participants []*SpeciesCoefficient
	Reversible   bool
	RateLaws     []*RateLaw
	Evidence     []*Evidence
	References   []*Reference
	Identifiers  []*Identifier
	Comments     string
}

// Serialize renders the participant list in local or global form.
func (r *Reaction) Serialize() string {
	return SerializeParticipants(r.Participants)
}

// IsBalanced reports whether the participants conserve each element.
// Participants whose species types cannot derive a formula are skipped.
func (r *Reaction) IsBalanced() bool {
	return balancedParticipants(r.Participants)
}

// RateLawDirection distinguishes the forward and backward rate laws of a
// reversible reaction.
type RateLawDirection int

const (
	RateLawBackward RateLawDirection = -1
	RateLawForward  RateLawDirection = 1
)

func (d RateLawDirection) String() string {
	if d == RateLawBackward {
		return "backward"
	}
	return "forward"
}

// ParseRateLawDirection parses "forward" or "backward".
func ParseRateLawDirection(v string) (RateLawDirection, error) {
	switch v {
	case "forward":
		return RateLawForward, nil
	case "backward":
		return RateLawBackward, nil
	default:
		return 0, errors.Newf(errors.CodeInvalidParam, "invalid rate law direction %q", v)
	}
}

// RateLaw is the kinetics of one direction of a reaction.
type RateLaw struct {
	Reaction   *Reaction
	Direction  RateLawDirection
	Expression *RateLawExpression
	Units      Unit
	References []*Reference
	Comments   string
}

// GenID builds the canonical rate-law id "reaction_id_direction".
func (rl *RateLaw) GenID() string {
	return rl.Reaction.ID + "_" + rl.Direction.String()
}
