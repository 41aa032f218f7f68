// Ontology construction and term resolution.
package ontology

import (
	"errors"
	"strings"
	"sync"

	"github.com/ontologizer/ontologizerlib/dag"
)

var (
	// ErrNilCatalog indicates construction from a nil TermMap.
	ErrNilCatalog = errors.New("ontology: nil term catalog")

	// ErrEmptyCatalog indicates construction from a catalog without terms.
	ErrEmptyCatalog = errors.New("ontology: empty term catalog")

	// ErrNoRootTerm indicates a term graph in which no root could be
	// determined, e.g. because every top-level candidate is obsolete.
	ErrNoRootTerm = errors.New("ontology: no root term")
)

// artificialRootID is the numeric part of a synthesized root identifier.
const artificialRootID = 0

// goLevel1Names are the top-level term names that identify the classic
// Gene Ontology triple (compared case-insensitively).
var goLevel1Names = map[string]struct{}{
	"molecular_function": {},
	"biological_process": {},
	"cellular_component": {},
}

// SkippedEdge records one parent relation that was dropped during
// construction because the parent is missing from the catalog.
type SkippedEdge struct {
	// Term is the child declaring the relation.
	Term TermID

	// Parent is the missing related term.
	Parent TermID
}

// BuildReport accounts for everything Create silently repaired instead
// of failing on.
type BuildReport struct {
	// SelfLoops lists terms declaring themselves as their own parent,
	// once per such declaration.
	SelfLoops []TermID

	// SkippedEdges lists parent relations pointing outside the catalog.
	SkippedEdges []SkippedEdge
}

// Ontology is the term DAG: one vertex per term, one parent→term edge
// per declared relation, with a fixed root on top. Queries are
// read-only; the only mutation after construction is MergeTerms.
// Derived ontologies share the term catalog with their origin.
type Ontology struct {
	graph   *dag.Graph[TermID, RelationType]
	termMap TermMap

	root   *Term
	level1 []TermID

	subsets     map[string]Subset
	subsetOrder []string

	relevantSubset      *Subset
	relevantSubontology *Term

	altOnce sync.Once
	altIDs  *TermPropertyMap[TermID]
}

// Create builds an Ontology from the term catalog tm. Every term becomes
// a vertex; every declared parent relation becomes an edge from the
// parent to the term. Self-referencing relations and relations to terms
// missing from the catalog are skipped and accounted for in the returned
// BuildReport. Duplicate declarations of the same parent collapse into a
// single edge.
//
// When more than one non-obsolete term has no parents, an artificial
// root is synthesized above all of them; a single such term becomes the
// root directly. Returns ErrNoRootTerm when no root can be determined.
func Create(tm TermMap) (*Ontology, *BuildReport, error) {
	if tm == nil {
		return nil, nil, ErrNilCatalog
	}
	if tm.Len() == 0 {
		return nil, nil, ErrEmptyCatalog
	}

	o := &Ontology{
		graph:   dag.New[TermID, RelationType](),
		termMap: tm,
		subsets: make(map[string]Subset),
	}
	report := &BuildReport{}

	for _, t := range tm.Terms() {
		o.graph.AddVertex(t.ID)
		for _, s := range t.Subsets {
			o.registerSubset(s)
		}
	}

	for _, t := range tm.Terms() {
		for _, p := range t.Parents {
			switch {
			case p.Related == t.ID:
				report.SelfLoops = append(report.SelfLoops, t.ID)
			case tm.Get(p.Related) == nil:
				report.SkippedEdges = append(report.SkippedEdges, SkippedEdge{Term: t.ID, Parent: p.Related})
			case o.graph.HasEdge(p.Related, t.ID):
				// Duplicate declaration of the same parent.
			default:
				_ = o.graph.AddEdge(p.Related, t.ID, p.Relation)
			}
		}
	}

	o.assignLevel1TermsAndFixRoot()
	if o.root == nil {
		return nil, nil, ErrNoRootTerm
	}
	return o, report, nil
}

// registerSubset records a subset definition, first definition wins.
func (o *Ontology) registerSubset(s Subset) {
	if _, ok := o.subsets[s.Name]; ok {
		return
	}
	o.subsets[s.Name] = s
	o.subsetOrder = append(o.subsetOrder, s.Name)
}

// assignLevel1TermsAndFixRoot determines the top-level terms (zero
// in-degree, not obsolete) and fixes the root: several top-level terms
// get an artificial root synthesized above them, a single one becomes
// the root itself unless a root is already set.
func (o *Ontology) assignLevel1TermsAndFixRoot() {
	o.level1 = nil
	for _, tid := range o.graph.Vertices() {
		if o.graph.InDegree(tid) != 0 {
			continue
		}
		if t := o.termMap.Get(tid); t != nil && t.Obsolete {
			continue
		}
		o.level1 = append(o.level1, tid)
	}

	switch {
	case len(o.level1) > 1:
		name := "root"
		if o.isGeneOntologyTriple() {
			name = "Gene Ontology"
		}
		root := &Term{
			ID:      NewTermID(o.level1[0].Prefix, artificialRootID),
			Name:    name,
			Subsets: o.AvailableSubsets(),
		}
		o.root = root
		o.graph.AddVertex(root.ID)
		for _, l1 := range o.level1 {
			_ = o.graph.AddEdge(root.ID, l1, RelationUnknown)
		}
	case len(o.level1) == 1 && o.root == nil:
		o.root = o.termMap.Get(o.level1[0])
	}
}

// isGeneOntologyTriple reports whether the top-level terms are exactly
// the three classic GO namespaces, compared by name case-insensitively.
func (o *Ontology) isGeneOntologyTriple() bool {
	if len(o.level1) != len(goLevel1Names) {
		return false
	}
	seen := make(map[string]struct{}, len(goLevel1Names))
	for _, tid := range o.level1 {
		t := o.termMap.Get(tid)
		if t == nil {
			return false
		}
		name := strings.ToLower(t.Name)
		if _, ok := goLevel1Names[name]; !ok {
			return false
		}
		seen[name] = struct{}{}
	}
	return len(seen) == len(goLevel1Names)
}

// derive wraps a derived term graph into a new Ontology sharing the
// catalog and subset definitions. The origin's root is carried over when
// its vertex survived in g; otherwise the root is re-determined.
func (o *Ontology) derive(g *dag.Graph[TermID, RelationType]) (*Ontology, error) {
	d := &Ontology{
		graph:       g,
		termMap:     o.termMap,
		subsets:     o.subsets,
		subsetOrder: o.subsetOrder,
	}
	if o.root != nil && g.HasVertex(o.root.ID) {
		d.root = o.root
	}
	d.assignLevel1TermsAndFixRoot()
	if d.root == nil {
		return nil, ErrNoRootTerm
	}
	return d, nil
}

// Root returns the root term. For an artificial root this term is not
// part of the catalog.
func (o *Ontology) Root() *Term { return o.root }

// IsRoot reports whether id identifies the root term.
func (o *Ontology) IsRoot(id TermID) bool {
	return o.root != nil && id == o.root.ID
}

// IsArtificialRoot reports whether id identifies a synthesized root, one
// that sits above the top-level terms rather than being one of them.
func (o *Ontology) IsArtificialRoot(id TermID) bool {
	if !o.IsRoot(id) {
		return false
	}
	for _, l1 := range o.level1 {
		if l1 == id {
			return false
		}
	}
	return true
}

// Level1Terms returns the top-level terms, the non-obsolete terms that
// had no parents before root fixing.
func (o *Ontology) Level1Terms() []TermID {
	out := make([]TermID, len(o.level1))
	copy(out, o.level1)
	return out
}

// AvailableSubsets returns all subset definitions collected from the
// catalog, in first-seen order.
func (o *Ontology) AvailableSubsets() []Subset {
	out := make([]Subset, 0, len(o.subsetOrder))
	for _, name := range o.subsetOrder {
		out = append(out, o.subsets[name])
	}
	return out
}

// TermCount returns the number of terms in the graph, an artificial root
// included.
func (o *Ontology) TermCount() int { return o.graph.VertexCount() }

// MaximumTermID returns the largest numeric identifier over the catalog,
// or -1 for a catalog that contributed no terms.
func (o *Ontology) MaximumTermID() int32 {
	max := int32(-1)
	for _, t := range o.termMap.Terms() {
		if t.ID.ID > max {
			max = t.ID.ID
		}
	}
	return max
}

// Term returns the term with the given primary identifier, or nil when
// the identifier is unknown or its vertex is not part of this ontology's
// graph (e.g. after the term was merged away or excluded by derivation).
func (o *Ontology) Term(id TermID) *Term {
	if o.IsRoot(id) {
		return o.root
	}
	t := o.termMap.Get(id)
	if t == nil || !o.graph.HasVertex(id) {
		return nil
	}
	return t
}

// LookupTerm resolves the canonical string form of a primary identifier,
// e.g. "GO:0008150". Returns nil for malformed or unknown identifiers.
func (o *Ontology) LookupTerm(s string) *Term {
	id, err := ParseTermID(s)
	if err != nil {
		return nil
	}
	return o.Term(id)
}

// TermIncludingAlternatives resolves the string form of a primary or
// alternate identifier. The alternate-identifier index is built lazily
// on the first lookup that misses the primary namespace, and at most
// once.
func (o *Ontology) TermIncludingAlternatives(s string) *Term {
	if t := o.LookupTerm(s); t != nil {
		return t
	}
	id, err := ParseTermID(s)
	if err != nil {
		return nil
	}
	o.altOnce.Do(func() {
		o.altIDs = NewTermPropertyMap(o.termMap, AltIDKeys)
	})
	primary, ok := o.altIDs.Get(id)
	if !ok {
		return nil
	}
	return o.Term(primary)
}

// Terms returns all terms of this ontology in graph insertion order, an
// artificial root included.
func (o *Ontology) Terms() []*Term {
	out := make([]*Term, 0, o.graph.VertexCount())
	for _, tid := range o.graph.Vertices() {
		if t := o.Term(tid); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// LeafTermIDs returns the identifiers of all terms without children.
func (o *Ontology) LeafTermIDs() []TermID {
	var out []TermID
	for _, tid := range o.graph.Vertices() {
		if o.graph.OutDegree(tid) == 0 {
			out = append(out, tid)
		}
	}
	return out
}

// LeafTerms returns all terms without children.
func (o *Ontology) LeafTerms() []*Term {
	ids := o.LeafTermIDs()
	out := make([]*Term, 0, len(ids))
	for _, tid := range ids {
		if t := o.Term(tid); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// TermsInTopologicalOrder returns the term identifiers so that every
// parent precedes all of its descendants. Returns dag.ErrCycleDetected
// for a cyclic term graph.
func (o *Ontology) TermsInTopologicalOrder() ([]TermID, error) {
	return o.graph.TopologicalOrder()
}

// SlimGraphView returns a flattened, integer-indexed snapshot of the
// term graph for index-based enrichment computations.
func (o *Ontology) SlimGraphView() *dag.Slim[TermID] {
	return dag.NewSlim(o.graph)
}
