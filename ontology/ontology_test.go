package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontologizer/ontologizerlib/ontology"
)

// goTriple is the classic three-namespace catalog plus one child term.
func goTriple() []*ontology.Term {
	return []*ontology.Term{
		newTerm(100, "Molecular_Function"),
		newTerm(200, "biological_process"),
		newTerm(300, "cellular_component"),
		newTerm(201, "growth", 200),
	}
}

func TestCreateSingleRoot(t *testing.T) {
	require := require.New(t)
	o := fixture(t)

	require.Equal(tid(1), o.Root().ID)
	require.Equal("cellular process", o.Root().Name)
	require.True(o.IsRoot(tid(1)))
	require.False(o.IsArtificialRoot(tid(1)), "a catalog term adopted as root is not artificial")
	require.Equal([]ontology.TermID{tid(1)}, o.Level1Terms())
	require.Equal(6, o.TermCount())
}

func TestCreateGeneOntologyRoot(t *testing.T) {
	require := require.New(t)
	o := build(t, goTriple()...)

	root := o.Root()
	require.Equal(tid(0), root.ID)
	require.Equal("Gene Ontology", root.Name, "the GO triple is recognized case-insensitively")
	require.True(o.IsArtificialRoot(root.ID))
	require.Len(o.Level1Terms(), 3)
	require.Equal(5, o.TermCount(), "four catalog terms plus the synthesized root")

	// Root edges carry the unknown relation
	for _, p := range o.ParentsWithRelation(tid(100)) {
		require.Equal(root.ID, p.Related)
		require.Equal(ontology.RelationUnknown, p.Relation)
	}

	// The artificial root resolves like any term
	require.Same(root, o.Term(tid(0)))
	require.Same(root, o.LookupTerm("GO:0000000"))
	require.Len(o.Terms(), 5)
}

func TestCreateGenericArtificialRoot(t *testing.T) {
	require := require.New(t)
	o := build(t, newTerm(1, "anatomy"), newTerm(2, "physiology"))

	require.Equal("root", o.Root().Name)
	require.True(o.IsArtificialRoot(o.Root().ID))
	require.ElementsMatch([]ontology.TermID{tid(1), tid(2)}, o.Level1Terms())
}

func TestCreateBuildReport(t *testing.T) {
	require := require.New(t)
	selfish := newTerm(7, "selfish", 7, 1)
	dangling := newTerm(8, "dangling", 99, 1)
	terms := append(fixtureTerms(), selfish, dangling)

	o, report, err := ontology.Create(ontology.NewTermContainer(terms))
	require.NoError(err)

	require.Equal([]ontology.TermID{tid(7)}, report.SelfLoops)
	require.Equal([]ontology.SkippedEdge{{Term: tid(8), Parent: tid(99)}}, report.SkippedEdges)

	// The offending relations left no edges behind
	require.Equal([]ontology.TermID{tid(1)}, o.Parents(tid(7)))
	require.Equal([]ontology.TermID{tid(1)}, o.Parents(tid(8)))
	require.Equal(tid(1), o.Root().ID, "root fixing is unaffected")
}

func TestCreateCollapsesDuplicateParentDeclarations(t *testing.T) {
	require := require.New(t)
	o := build(t, newTerm(1, "top"), newTerm(2, "child", 1, 1))
	require.Equal([]ontology.TermID{tid(1)}, o.Parents(tid(2)))
}

func TestCreateSkipsObsoleteTopLevelTerms(t *testing.T) {
	require := require.New(t)
	retired := newTerm(9, "retired")
	retired.Obsolete = true
	terms := append(fixtureTerms(), retired)

	o, _, err := ontology.Create(ontology.NewTermContainer(terms))
	require.NoError(err)
	require.Equal([]ontology.TermID{tid(1)}, o.Level1Terms(), "obsolete terms never become level-1")
	require.Equal(tid(1), o.Root().ID)
}

func TestCreateErrors(t *testing.T) {
	require := require.New(t)

	_, _, err := ontology.Create(nil)
	require.ErrorIs(err, ontology.ErrNilCatalog)

	_, _, err = ontology.Create(ontology.NewTermContainer(nil))
	require.ErrorIs(err, ontology.ErrEmptyCatalog)

	// The only top-level candidate is obsolete, leaving no root
	dead := newTerm(1, "dead")
	dead.Obsolete = true
	_, _, err = ontology.Create(ontology.NewTermContainer([]*ontology.Term{dead, newTerm(2, "child", 1)}))
	require.ErrorIs(err, ontology.ErrNoRootTerm)
}

func TestTermResolution(t *testing.T) {
	require := require.New(t)
	o := fixture(t)

	require.Equal("metabolism", o.Term(tid(2)).Name)
	require.Nil(o.Term(tid(42)), "unknown identifier")

	require.Equal("metabolism", o.LookupTerm("GO:0000002").Name)
	require.Nil(o.LookupTerm("GO:0000042"))
	require.Nil(o.LookupTerm("not-an-id"))
}

func TestTermIncludingAlternatives(t *testing.T) {
	require := require.New(t)
	terms := fixtureTerms()
	terms[1].Alternatives = []ontology.TermID{tid(42)}
	o := build(t, terms...)

	require.Equal("metabolism", o.TermIncludingAlternatives("GO:0000002").Name, "primary identifiers resolve directly")
	require.Equal("metabolism", o.TermIncludingAlternatives("GO:0000042").Name, "alternate identifiers resolve via the index")
	require.Nil(o.TermIncludingAlternatives("GO:0000099"))
	require.Nil(o.TermIncludingAlternatives("bogus"))
}

func TestMaximumTermID(t *testing.T) {
	require := require.New(t)
	require.Equal(int32(6), fixture(t).MaximumTermID())
}

func TestAvailableSubsets(t *testing.T) {
	require := require.New(t)
	terms := fixtureTerms()
	terms[1].Subsets = []ontology.Subset{{Name: "goslim_generic", Description: "Generic slim"}}
	terms[3].Subsets = []ontology.Subset{{Name: "goslim_generic"}, {Name: "goslim_yeast"}}
	o := build(t, terms...)

	subsets := o.AvailableSubsets()
	require.Len(subsets, 2)
	require.Equal("goslim_generic", subsets[0].Name)
	require.Equal("Generic slim", subsets[0].Description, "the first definition wins")
	require.Equal("goslim_yeast", subsets[1].Name)
}

func TestTermsAndLeaves(t *testing.T) {
	require := require.New(t)
	o := fixture(t)

	all := o.Terms()
	require.Len(all, 6)
	require.Equal(tid(1), all[0].ID, "graph insertion order")

	require.Equal([]ontology.TermID{tid(4), tid(6)}, o.LeafTermIDs())
	leaves := o.LeafTerms()
	require.Len(leaves, 2)
	require.Equal("energy pathway", leaves[0].Name)
}

func TestTermsInTopologicalOrder(t *testing.T) {
	require := require.New(t)
	o := fixture(t)

	order, err := o.TermsInTopologicalOrder()
	require.NoError(err)
	require.Len(order, 6)
	require.Equal(tid(1), order[0], "the root comes first")

	pos := make(map[ontology.TermID]int)
	for i, id := range order {
		pos[id] = i
	}
	require.Less(pos[tid(2)], pos[tid(5)])
	require.Less(pos[tid(3)], pos[tid(5)])
	require.Less(pos[tid(5)], pos[tid(6)])
}

func TestSlimGraphView(t *testing.T) {
	require := require.New(t)
	o := fixture(t)

	slim := o.SlimGraphView()
	require.Equal(6, slim.VertexCount())

	i5, ok := slim.Index(tid(5))
	require.True(ok)
	i2, _ := slim.Index(tid(2))
	i3, _ := slim.Index(tid(3))
	require.Equal([]int{i2, i3}, slim.ParentsOf(i5))
}
