// In-place term merging.
package ontology

// MergeTerms merges the equivalent terms into rep: their identifiers are
// registered as alternates of rep (duplicates skipped) and their graph
// vertices are collapsed onto rep's, redirecting edges while skipping
// duplicates and self-edges. Afterwards the merged terms no longer exist
// in this ontology; their identifiers resolve to rep via
// TermIncludingAlternatives on ontologies whose alternate index has not
// been built yet.
func (o *Ontology) MergeTerms(rep *Term, eq []*Term) error {
	known := make(map[TermID]struct{}, len(rep.Alternatives))
	for _, alt := range rep.Alternatives {
		known[alt] = struct{}{}
	}

	ids := make([]TermID, 0, len(eq))
	for _, t := range eq {
		ids = append(ids, t.ID)
		if _, dup := known[t.ID]; dup {
			continue
		}
		known[t.ID] = struct{}{}
		rep.AddAlternative(t.ID)
	}
	return o.graph.MergeVertices(rep.ID, ids)
}
