// Structural queries: neighborhood, reachability, walks and term levels.
package ontology

import "github.com/ontologizer/ontologizerlib/dag"

// TermVisitor receives one term identifier per visited vertex during a
// walk. Returning false aborts the walk.
type TermVisitor func(id TermID) bool

// Parents returns the direct parents of the term. The root has no
// parents.
func (o *Ontology) Parents(id TermID) []TermID {
	if o.IsRoot(id) {
		return nil
	}
	return o.graph.Parents(id)
}

// ParentsWithRelation returns the direct parents of the term together
// with the kind of each relation. Edges synthesized during root fixing
// carry RelationUnknown.
func (o *Ontology) ParentsWithRelation(id TermID) []ParentTermID {
	if o.IsRoot(id) {
		return nil
	}
	edges := o.graph.InEdges(id)
	out := make([]ParentTermID, 0, len(edges))
	for _, e := range edges {
		out = append(out, ParentTermID{Related: e.Source, Relation: e.Data})
	}
	return out
}

// Children returns the direct children of the term.
func (o *Ontology) Children(id TermID) []TermID {
	return o.graph.Children(id)
}

// DirectRelation returns the kind of the direct relation parent→term, or
// false when no such edge exists.
func (o *Ontology) DirectRelation(parent, term TermID) (RelationType, bool) {
	e, ok := o.graph.Edge(parent, term)
	if !ok {
		return RelationUnknown, false
	}
	return e.Data, true
}

// Siblings returns the terms sharing at least one parent with the term,
// the term itself excluded. Order follows the parents and their child
// lists; each sibling appears once.
func (o *Ontology) Siblings(id TermID) []TermID {
	var out []TermID
	seen := map[TermID]struct{}{id: {}}
	for _, p := range o.Parents(id) {
		for _, c := range o.graph.Children(p) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// ExistsPath reports whether dst is reachable from src along the
// parent→child direction, i.e. whether src is an ancestor of dst or the
// same term. A path to the root exists only from the root itself.
func (o *Ontology) ExistsPath(src, dst TermID) bool {
	if o.IsRoot(dst) {
		return o.IsRoot(src)
	}
	return o.graph.ExistsPath(src, dst)
}

// WalkToSource walks breadth-first from the given terms towards the
// root, following edges child→parent. The start terms themselves are
// visited; identifiers without a vertex are skipped.
func (o *Ontology) WalkToSource(ids []TermID, visit TermVisitor) {
	o.graph.BFS(ids, true, func(v TermID) bool { return visit(v) })
}

// WalkToSourceFollowing is WalkToSource restricted to edges whose
// relation kind maps to one of the given meanings.
func (o *Ontology) WalkToSourceFollowing(ids []TermID, visit TermVisitor, meanings ...RelationMeaning) {
	allowed := make(map[RelationMeaning]struct{}, len(meanings))
	for _, m := range meanings {
		allowed[m] = struct{}{}
	}
	follow := func(e *dag.Edge[TermID, RelationType]) bool {
		_, ok := allowed[e.Data.Meaning()]
		return ok
	}
	o.graph.BFSFiltered(ids, true, follow, func(v TermID) bool { return visit(v) })
}

// WalkToSinks walks breadth-first from the given terms towards the
// leaves, following edges parent→child.
func (o *Ontology) WalkToSinks(ids []TermID, visit TermVisitor) {
	o.graph.BFS(ids, false, func(v TermID) bool { return visit(v) })
}

// Ancestors returns the set of terms from which the term is reachable,
// the term itself included. On a rooted ontology the set contains the
// root for every term in the graph.
func (o *Ontology) Ancestors(id TermID) map[TermID]struct{} {
	return o.graph.Ancestors(id)
}

// Descendants returns the set of terms reachable from the term, the term
// itself included.
func (o *Ontology) Descendants(id TermID) map[TermID]struct{} {
	set := make(map[TermID]struct{})
	o.graph.BFS([]TermID{id}, false, func(v TermID) bool {
		set[v] = struct{}{}
		return true
	})
	return set
}

// TermsOfInducedGraph returns the ancestor set of the term, restricted
// to terms below rootID when rootID is not the ontology root: only
// ancestors that are rootID itself or reachable from rootID are kept.
// Passing the ontology root leaves the set unrestricted.
func (o *Ontology) TermsOfInducedGraph(rootID, id TermID) map[TermID]struct{} {
	set := make(map[TermID]struct{})
	restricted := !o.IsRoot(rootID)
	o.WalkToSource([]TermID{id}, func(v TermID) bool {
		if restricted && v != rootID && !o.ExistsPath(rootID, v) {
			return true
		}
		set[v] = struct{}{}
		return true
	})
	return set
}

// SharedParents returns the common ancestors of two terms, in the order
// the upward walk from t2 discovers them. Both terms count as their own
// ancestors, so SharedParents(t, t) starts with t.
func (o *Ontology) SharedParents(t1, t2 TermID) []TermID {
	upper1 := o.Ancestors(t1)
	var out []TermID
	o.WalkToSource([]TermID{t2}, func(v TermID) bool {
		if _, ok := upper1[v]; ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// TermLevels computes the level of every term in ids, the length of the
// longest path from the root. With a relevant subset or a relevant
// subontology (other than the root) configured, levels are computed on
// the reduced ontology of relevant terms instead, mirroring what a
// relevance-filtered view displays.
func (o *Ontology) TermLevels(ids map[TermID]struct{}) (*TermLevels, error) {
	g, root := o.graph, o.root
	if (o.relevantSubontology != nil && !o.IsRoot(o.relevantSubontology.ID)) || o.relevantSubset != nil {
		ro, err := o.OntologyOfRelevantTerms()
		if err != nil {
			return nil, err
		}
		g, root = ro.graph, ro.root
	}

	levels := newTermLevels()
	err := g.LongestPaths(root.ID, nil, func(v TermID, _ []TermID, dist int) bool {
		if _, ok := ids[v]; ok {
			levels.putLevel(v, dist)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}
