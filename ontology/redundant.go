// Redundant-relation detection.
package ontology

// RedundantRelation names one direct parent relation that adds no
// reachability: the parent is already reachable through the term's other
// parents.
type RedundantRelation struct {
	// Term is the child carrying the redundant relation.
	Term TermID

	// Parent is the redundant direct parent.
	Parent TermID
}

// FindARedundantRelation returns one direct parent of the term whose
// relation is redundant, or false when every parent contributes
// reachability. A parent p is redundant when the ancestors of the
// remaining parents already cover the term's entire ancestor set (minus
// the term itself); the check compares set sizes, which suffices because
// the remaining parents' ancestors are always a subset of the term's.
func (o *Ontology) FindARedundantRelation(t *Term) (TermID, bool) {
	parents := o.Parents(t.ID)
	if len(parents) < 2 {
		return TermID{}, false
	}
	all := o.Ancestors(t.ID)

	for _, p := range parents {
		others := make(map[TermID]struct{})
		for _, p2 := range parents {
			if p2 == p {
				continue
			}
			for a := range o.Ancestors(p2) {
				others[a] = struct{}{}
			}
		}
		if len(others) == len(all)-1 {
			return p, true
		}
	}
	return TermID{}, false
}

// FindRedundantRelations scans every term of the ontology and collects
// one redundant parent relation per affected term, in graph insertion
// order.
func (o *Ontology) FindRedundantRelations() []RedundantRelation {
	var out []RedundantRelation
	for _, t := range o.Terms() {
		if p, ok := o.FindARedundantRelation(t); ok {
			out = append(out, RedundantRelation{Term: t.ID, Parent: p})
		}
	}
	return out
}
