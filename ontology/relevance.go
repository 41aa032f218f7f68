// Relevance filtering and derived sub-ontologies.
package ontology

import "errors"

var (
	// ErrSubsetNotFound indicates a relevant-subset name no term of the
	// catalog defines.
	ErrSubsetNotFound = errors.New("ontology: subset not found")

	// ErrSubontologyNotFound indicates a relevant-subontology name no
	// term of the ontology carries.
	ErrSubontologyNotFound = errors.New("ontology: subontology not found")
)

// SetRelevantSubset restricts relevance to terms belonging to the named
// subset. An unknown name clears any previous restriction and returns
// ErrSubsetNotFound.
func (o *Ontology) SetRelevantSubset(name string) error {
	o.relevantSubset = nil
	s, ok := o.subsets[name]
	if !ok {
		return ErrSubsetNotFound
	}
	o.relevantSubset = &s
	return nil
}

// RelevantSubset returns the configured relevant subset, or nil.
func (o *Ontology) RelevantSubset() *Subset { return o.relevantSubset }

// SetRelevantSubontology restricts relevance to the subontology rooted
// at the term with the given name. An unknown name leaves the previous
// restriction untouched and returns ErrSubontologyNotFound.
func (o *Ontology) SetRelevantSubontology(name string) error {
	for _, t := range o.Terms() {
		if t.Name == name {
			o.relevantSubontology = t
			return nil
		}
	}
	return ErrSubontologyNotFound
}

// RelevantSubontology returns the identifier of the configured
// subontology root, falling back to the ontology root when none is set.
func (o *Ontology) RelevantSubontology() TermID {
	if o.relevantSubontology != nil {
		return o.relevantSubontology.ID
	}
	return o.root.ID
}

// isRelevant applies both restrictions to a term: subset membership and
// reachability from the subontology root. Unset restrictions pass.
func (o *Ontology) isRelevant(t *Term) bool {
	if o.relevantSubset != nil && !t.InSubset(o.relevantSubset.Name) {
		return false
	}
	if o.relevantSubontology != nil {
		if t.ID != o.relevantSubontology.ID && !o.ExistsPath(o.relevantSubontology.ID, t.ID) {
			return false
		}
	}
	return true
}

// IsRelevantTerm reports whether the term passes the configured subset
// and subontology restrictions. Without restrictions every term is
// relevant.
func (o *Ontology) IsRelevantTerm(t *Term) bool { return o.isRelevant(t) }

// IsRelevantTermID reports whether the identifier names a term of this
// ontology that passes the configured restrictions.
func (o *Ontology) IsRelevantTermID(id TermID) bool {
	t := o.Term(id)
	if t == nil {
		return false
	}
	return o.isRelevant(t)
}

// FilterRelevant returns the identifiers of ids that name relevant
// terms, preserving order.
func (o *Ontology) FilterRelevant(ids []TermID) []TermID {
	var out []TermID
	for _, id := range ids {
		if o.IsRelevantTermID(id) {
			out = append(out, id)
		}
	}
	return out
}

// OntologyOfRelevantTerms derives the ontology spanned by the relevant
// terms: the term graph is reduced to exactly the relevant vertices
// while preserving their pairwise reachability, and redundant shortcut
// edges are eliminated. The derived ontology shares the catalog and gets
// its own root (the origin's root when it survived, a re-determined one
// otherwise).
func (o *Ontology) OntologyOfRelevantTerms() (*Ontology, error) {
	var relevant []TermID
	for _, tid := range o.graph.Vertices() {
		t := o.Term(tid)
		if t == nil {
			continue
		}
		if o.isRelevant(t) {
			relevant = append(relevant, tid)
		}
	}
	return o.derive(o.graph.PathMaintainingSubGraph(relevant, nil))
}

// InducedGraph derives the sub-ontology induced by the given terms and
// all of their ancestors: the vertex set is closed upwards and every
// edge between included terms is kept.
func (o *Ontology) InducedGraph(ids []TermID) (*Ontology, error) {
	member := make(map[TermID]struct{})
	o.WalkToSource(ids, func(v TermID) bool {
		member[v] = struct{}{}
		return true
	})

	include := make([]TermID, 0, len(member))
	for _, tid := range o.graph.Vertices() {
		if _, ok := member[tid]; ok {
			include = append(include, tid)
		}
	}
	return o.derive(o.graph.SubGraph(include, nil))
}
