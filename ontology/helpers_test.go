package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontologizer/ontologizerlib/ontology"
)

// tid builds a GO-prefixed identifier.
func tid(n int32) ontology.TermID { return ontology.NewTermID("GO", n) }

// newTerm builds a term with is_a parents.
func newTerm(id int32, name string, parents ...int32) *ontology.Term {
	t := &ontology.Term{ID: tid(id), Name: name}
	for _, p := range parents {
		t.Parents = append(t.Parents, ontology.ParentTermID{Related: tid(p), Relation: ontology.RelationIsA})
	}
	return t
}

// build creates an ontology from the given terms, failing the test on
// any construction error.
func build(t *testing.T, terms ...*ontology.Term) *ontology.Ontology {
	t.Helper()
	o, _, err := ontology.Create(ontology.NewTermContainer(terms))
	require.NoError(t, err)
	return o
}

// fixtureTerms is a small single-rooted ontology used across tests:
//
//	1 cellular process
//	├── 2 metabolism ──────┬── 4 energy pathway (part_of)
//	│                      └── 5 cell division ── 6 budding
//	└── 3 growth ─────────────┘ (5 is also a child of 3)
func fixtureTerms() []*ontology.Term {
	t4 := newTerm(4, "energy pathway")
	t4.Parents = []ontology.ParentTermID{{Related: tid(2), Relation: ontology.RelationPartOf}}
	return []*ontology.Term{
		newTerm(1, "cellular process"),
		newTerm(2, "metabolism", 1),
		newTerm(3, "growth", 1),
		t4,
		newTerm(5, "cell division", 2, 3),
		newTerm(6, "budding", 5),
	}
}

func fixture(t *testing.T) *ontology.Ontology {
	t.Helper()
	return build(t, fixtureTerms()...)
}
