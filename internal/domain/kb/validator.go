package kb

import (
	"math"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Validator checks a knowledge base for structural consistency: required
// fields, unique ids, sane coordinate ranges and well-formed references.
type Validator struct {
	// CheckBalance additionally verifies elemental balance of every
	// reaction whose participants can all derive formulas.
	CheckBalance bool
}

// Run validates the knowledge base and returns the accumulated findings,
// or nil when the document is valid.
func (v *Validator) Run(k *KnowledgeBase) []error {
	var findings []error
	report := func(code errors.ErrorCode, format string, args ...interface{}) {
		findings = append(findings, errors.Newf(code, format, args...))
	}

	if k.ID == "" {
		report(errors.ErrCodeValidationFailed, "knowledge base id must not be empty")
	}
	if k.Version == "" {
		report(errors.ErrCodeValidationFailed, "knowledge base version must not be empty")
	}
	if k.Cell == nil {
		report(errors.ErrCodeValidationFailed, "knowledge base has no cell")
		return findings
	}
	cell := k.Cell

	compartmentIDs := map[string]bool{}
	for _, c := range cell.Compartments {
		if c.ID == "" {
			report(errors.ErrCodeValidationFailed, "compartment id must not be empty")
			continue
		}
		if compartmentIDs[c.ID] {
			report(errors.ErrCodeValidationFailed, "duplicate compartment id %q", c.ID)
		}
		compartmentIDs[c.ID] = true
		if c.VolumetricFraction < 0 || c.VolumetricFraction > 1 {
			report(errors.ErrCodeValidationFailed,
				"compartment %q: volumetric fraction %v outside [0, 1]", c.ID, c.VolumetricFraction)
		}
	}

	speciesTypeIDs := map[string]bool{}
	for _, st := range cell.SpeciesTypes {
		id := st.Meta().ID
		if id == "" {
			report(errors.ErrCodeValidationFailed, "species type id must not be empty")
			continue
		}
		if speciesTypeIDs[id] {
			report(errors.ErrCodeValidationFailed, "duplicate species type id %q", id)
		}
		speciesTypeIDs[id] = true
		for _, p := range st.Meta().Properties {
			if _, err := p.GetValue(); err != nil {
				report(errors.ErrCodeValidationFailed,
					"species type %q: %v", id, err)
			}
		}
	}

	reactionIDs := map[string]bool{}
	for _, r := range cell.Reactions {
		if r.ID == "" {
			report(errors.ErrCodeValidationFailed, "reaction id must not be empty")
			continue
		}
		if reactionIDs[r.ID] {
			report(errors.ErrCodeValidationFailed, "duplicate reaction id %q", r.ID)
		}
		reactionIDs[r.ID] = true
		for _, p := range r.Participants {
			if p.Species == nil {
				report(errors.ErrCodeValidationFailed,
					"reaction %q: participant without species", r.ID)
				continue
			}
			if p.Coefficient == 0 || math.IsNaN(p.Coefficient) || math.IsInf(p.Coefficient, 0) {
				report(errors.ErrCodeValidationFailed,
					"reaction %q: participant %s has invalid coefficient %v",
					r.ID, p.Species.ID(), p.Coefficient)
			}
		}
		for _, rl := range r.RateLaws {
			if rl.Expression == nil || rl.Expression.Expression == "" {
				report(errors.ErrCodeValidationFailed,
					"reaction %q: rate law %s has no expression", r.ID, rl.Direction)
			}
			if !r.Reversible && rl.Direction == RateLawBackward {
				report(errors.ErrCodeValidationFailed,
					"reaction %q: backward rate law on irreversible reaction", r.ID)
			}
		}
		if v.CheckBalance && !r.IsBalanced() {
			report(errors.ErrCodeValidationFailed, "reaction %q is not mass balanced", r.ID)
		}
	}

	for _, o := range cell.Observables {
		if o.ID == "" {
			report(errors.ErrCodeValidationFailed, "observable id must not be empty")
			continue
		}
		if o.Expression == nil || o.Expression.Expression == "" {
			report(errors.ErrCodeValidationFailed, "observable %q has no expression", o.ID)
		}
	}

	for _, p := range cell.Parameters {
		if p.ID == "" {
			report(errors.ErrCodeValidationFailed, "parameter id must not be empty")
		}
	}

	for _, l := range cell.Loci {
		v.validateLocus(l.Region(), report)
	}

	return findings
}

func (v *Validator) validateLocus(l *PolymerLocus, report func(errors.ErrorCode, string, ...interface{})) {
	if l.ID == "" {
		report(errors.ErrCodeValidationFailed, "locus id must not be empty")
		return
	}
	if l.Polymer == nil {
		report(errors.ErrCodeValidationFailed, "locus %q has no polymer", l.ID)
		return
	}
	if l.Start < 1 || l.End < 1 {
		report(errors.ErrCodeValidationFailed,
			"locus %q: coordinates are 1-based, got [%d, %d]", l.ID, l.Start, l.End)
	}
	if !l.Polymer.IsCircular() && l.End < l.Start {
		report(errors.ErrCodeValidationFailed,
			"locus %q: end %d before start %d on a linear polymer", l.ID, l.End, l.Start)
	}
}
