// Subgraph extraction: induced subgraphs, naive transitive closure and
// the reachability-preserving (path-maintaining) reduction.
package dag

import "fmt"

// SubGraph returns a new graph containing the given vertices and, for
// each of them, exactly the incident edges whose other endpoint is also
// included. The optional keep predicate excludes edges by payload
// independent of endpoint membership (nil keeps all). Vertices absent
// from the receiver are ignored. Edge payloads are shared with the
// receiver.
// Complexity: O(V + E) over the included vertices and their edges.
func (g *Graph[V, E]) SubGraph(include []V, keep func(data E) bool) *Graph[V, E] {
	sub := New[V, E]()
	member := make(map[V]struct{}, len(include))
	for _, v := range include {
		if _, ok := g.vertices[v]; !ok {
			continue
		}
		member[v] = struct{}{}
		sub.AddVertex(v)
	}

	// Scanning only the in-edges adds each retained edge exactly once.
	for _, v := range sub.Vertices() {
		for _, e := range g.vertices[v].in {
			if keep != nil && !keep(e.Data) {
				continue
			}
			if _, ok := member[e.Source]; !ok {
				continue
			}
			_ = sub.AddEdge(e.Source, v, e.Data)
		}
	}
	return sub
}

// TransitiveClosure returns a new graph over the given vertex subset with
// an edge u→v for every ordered pair where v is reachable from u in the
// receiver. The closure is reflexive (every vertex reaches itself) and
// its edges carry zero-valued payloads. One BFS per vertex; intended for
// small subsets.
// Complexity: O(|include| * (V + E)).
func (g *Graph[V, E]) TransitiveClosure(include []V) *Graph[V, E] {
	closure := New[V, E]()
	member := make(map[V]struct{}, len(include))
	for _, v := range include {
		if _, ok := g.vertices[v]; !ok {
			continue
		}
		member[v] = struct{}{}
		closure.AddVertex(v)
	}

	var zero E
	for _, src := range closure.Vertices() {
		g.BFS([]V{src}, false, func(v V) bool {
			if _, ok := member[v]; ok {
				_ = closure.AddEdge(src, v, zero)
			}
			return true
		})
	}
	return closure
}

// RemoveVertexMaintainConnectivity removes v but keeps the reachability of
// the remaining graph intact: every in-neighbor of v is connected directly
// to every out-neighbor. When such a shortcut collides with an existing
// edge, the existing edge is replaced. The merge function combines the
// payloads of the two collapsed edges (and of a replaced existing edge,
// when present); a nil merge yields zero-valued payloads.
// Complexity: O(indeg(v) * outdeg(v)) shortcut insertions.
func (g *Graph[V, E]) RemoveVertexMaintainConnectivity(v V, merge EdgeMerger[E]) error {
	va, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("%w: maintain-connectivity removal of %v", ErrVertexNotFound, v)
	}

	// Snapshot both lists: shortcut insertion mutates neighbor lists.
	in := make([]*Edge[V, E], len(va.in))
	copy(in, va.in)
	out := make([]*Edge[V, E], len(va.out))
	copy(out, va.out)

	for _, i := range in {
		for _, o := range out {
			existing, hasExisting := g.Edge(i.Source, o.Dest)

			var data E
			if merge != nil {
				collapsed := make([]E, 0, 3)
				collapsed = append(collapsed, i.Data, o.Data)
				if hasExisting {
					collapsed = append(collapsed, existing.Data)
				}
				data = merge(collapsed)
			}

			if hasExisting {
				_ = g.RemoveConnections(i.Source, o.Dest)
			}
			_ = g.AddEdge(i.Source, o.Dest, data)
		}
	}

	g.RemoveVertex(v)
	return nil
}

// PathMaintainingSubGraph reduces the graph to the given vertex subset
// while preserving exactly the pairwise reachability of the receiver
// restricted to that subset (a transitive reduction over the subset).
//
// The reduction proceeds in two phases. First the graph is compacted to
// the subset: every excluded vertex is removed while reconnecting its
// in-neighbors to its out-neighbors, merging payloads via merge. Then
// redundant parent edges are eliminated to a fixed point: an edge p→v is
// redundant when the union of the upward-reachable sets of v's other
// parents covers everything above v except v itself — a size delta of
// exactly one certifies that p contributes no alternate path. Surviving
// edges carry the payloads of the compacted graph.
// Complexity: dominated by the fixed point, O(rounds * Σ_v indeg(v) * (V + E)).
func (g *Graph[V, E]) PathMaintainingSubGraph(include []V, merge EdgeMerger[E]) *Graph[V, E] {
	present := make([]V, 0, len(include))
	member := make(map[V]struct{}, len(include))
	for _, v := range include {
		if _, ok := g.vertices[v]; !ok {
			continue
		}
		if _, dup := member[v]; dup {
			continue
		}
		member[v] = struct{}{}
		present = append(present, v)
	}

	// Phase 1: compact a copy down to the subset, preserving reachability.
	closure := g.Clone()
	for _, v := range g.Vertices() {
		if _, ok := member[v]; !ok {
			_ = closure.RemoveVertexMaintainConnectivity(v, merge)
		}
	}

	// Phase 2: drop redundant parent edges until a full pass removes none.
	for {
		reduced := New[V, E]()
		for _, v := range present {
			reduced.AddVertex(v)
		}

		droppedAny := false
		for _, v := range present {
			vUpper := closure.Ancestors(v)
			parents := closure.Parents(v)

			for _, p := range parents {
				// Upward set reachable through the other parents only.
				pUpper := make(map[V]struct{})
				for _, p2 := range parents {
					if p2 == p {
						continue
					}
					for a := range closure.Ancestors(p2) {
						pUpper[a] = struct{}{}
					}
				}

				if len(pUpper) != len(vUpper)-1 {
					e, _ := closure.Edge(p, v)
					_ = reduced.AddEdge(p, v, e.Data)
				} else {
					droppedAny = true
				}
			}
		}

		if !droppedAny {
			return reduced
		}
		closure = reduced
	}
}
