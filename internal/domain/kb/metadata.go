package kb

// NestedMetadata aggregates the provenance attached to a species type and
// to everything hanging off it.  Each bucket holds *Reference, *Identifier
// and comment string entries in encounter order.
type NestedMetadata struct {
	Own         []interface{}
	Properties  []interface{}
	Evidence    []interface{}
	Experiments []interface{}
}

// NestedMetadata walks the species type's own annotations, its properties,
// their evidence and the evidence's experiments, collecting references,
// identifiers and non-empty comments per level.
func (b *SpeciesTypeBase) NestedMetadata() *NestedMetadata {
	meta := &NestedMetadata{}
	for _, ref := range b.References {
		meta.Own = append(meta.Own, ref)
	}
	if b.Comments != "" {
		meta.Own = append(meta.Own, b.Comments)
	}

	var evidence []*Evidence
	evidence = append(evidence, b.Evidence...)
	for _, p := range b.Properties {
		for _, ref := range p.References {
			meta.Properties = append(meta.Properties, ref)
		}
		for _, id := range p.Identifiers {
			meta.Properties = append(meta.Properties, id)
		}
		if p.Comments != "" {
			meta.Properties = append(meta.Properties, p.Comments)
		}
		evidence = append(evidence, p.Evidence...)
	}

	seenExperiments := map[*Experiment]bool{}
	for _, ev := range evidence {
		for _, ref := range ev.References {
			meta.Evidence = append(meta.Evidence, ref)
		}
		if ev.Comments != "" {
			meta.Evidence = append(meta.Evidence, ev.Comments)
		}
		exp := ev.Experiment
		if exp == nil || seenExperiments[exp] {
			continue
		}
		seenExperiments[exp] = true
		for _, ref := range exp.References {
			meta.Experiments = append(meta.Experiments, ref)
		}
		if exp.Comments != "" {
			meta.Experiments = append(meta.Experiments, exp.Comments)
		}
	}
	return meta
}
