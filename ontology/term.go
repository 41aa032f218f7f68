package ontology

// ParentTermID names one declared parent of a term together with the
// kind of the relation.
type ParentTermID struct {
	// Related is the parent term.
	Related TermID

	// Relation is the kind of the parent relation.
	Relation RelationType
}

// Subset names a term grouping (an OBO "subsetdef"), e.g. goslim_generic.
type Subset struct {
	// Name identifies the subset; two subsets are the same grouping when
	// their names are equal.
	Name string

	// Description is free text and carries no semantics.
	Description string
}

// Term is one catalog entry: identity, descriptive fields, declared
// parent relations, subset memberships, alternate identifiers and the
// obsolete flag. Terms are produced by a parser and treated as largely
// immutable afterwards; only the alternates list grows, when terms are
// merged.
type Term struct {
	// ID is the primary identifier.
	ID TermID

	// Name is the human-readable label.
	Name string

	// Namespace is the subontology the term belongs to, e.g.
	// biological_process.
	Namespace string

	// Definition is the textual definition.
	Definition string

	// Parents lists the declared parent relations.
	Parents []ParentTermID

	// Subsets lists the subsets the term is a member of.
	Subsets []Subset

	// Alternatives lists alternate (secondary) identifiers that resolve
	// to this term.
	Alternatives []TermID

	// Obsolete marks terms that are retired from the ontology.
	Obsolete bool
}

// AddAlternative records id as an alternate identifier of the term. The
// caller is responsible for not adding duplicates.
func (t *Term) AddAlternative(id TermID) {
	t.Alternatives = append(t.Alternatives, id)
}

// InSubset reports whether the term is a member of the subset with the
// given name.
func (t *Term) InSubset(name string) bool {
	for _, s := range t.Subsets {
		if s.Name == name {
			return true
		}
	}
	return false
}
