// Vertex merging and structural copying.
package dag

import "fmt"

// redirect records an edge to be re-attached to the representative.
type redirect[V comparable, E any] struct {
	neighbor V
	data     E
}

// MergeVertices merges each vertex in eq into the representative rep:
// every incoming and outgoing edge of an equivalent vertex is redirected
// onto rep, then the equivalent vertex is deleted. A redirect is skipped
// when rep already has an edge to the same neighbor in the same direction
// (the first-seen payload wins) and when it would create a self-edge on
// rep. rep itself appearing in eq is ignored.
// Complexity: O(Σ deg(eq) * deg(rep)).
func (g *Graph[V, E]) MergeVertices(rep V, eq []V) error {
	if _, ok := g.vertices[rep]; !ok {
		return fmt.Errorf("%w: merge representative %v", ErrVertexNotFound, rep)
	}

	for _, v2 := range eq {
		if v2 == rep {
			continue
		}
		va2, ok := g.vertices[v2]
		if !ok {
			return fmt.Errorf("%w: merge candidate %v", ErrVertexNotFound, v2)
		}

		// Detach v2's edges from the neighbor-side lists, remembering the
		// first payload seen per distinct neighbor and direction.
		newIn := make([]redirect[V, E], 0, len(va2.in))
		seenIn := make(map[V]struct{}, len(va2.in))
		for _, e := range va2.in {
			src := g.vertices[e.Source]
			src.out = dropEdge(src.out, e)
			if _, dup := seenIn[e.Source]; dup {
				continue
			}
			seenIn[e.Source] = struct{}{}
			newIn = append(newIn, redirect[V, E]{neighbor: e.Source, data: e.Data})
		}

		newOut := make([]redirect[V, E], 0, len(va2.out))
		seenOut := make(map[V]struct{}, len(va2.out))
		for _, e := range va2.out {
			dst := g.vertices[e.Dest]
			dst.in = dropEdge(dst.in, e)
			if _, dup := seenOut[e.Dest]; dup {
				continue
			}
			seenOut[e.Dest] = struct{}{}
			newOut = append(newOut, redirect[V, E]{neighbor: e.Dest, data: e.Data})
		}

		for _, r := range newIn {
			if r.neighbor == rep || g.HasEdge(r.neighbor, rep) {
				continue
			}
			_ = g.AddEdge(r.neighbor, rep, r.data)
		}
		for _, r := range newOut {
			if r.neighbor == rep || g.HasEdge(rep, r.neighbor) {
				continue
			}
			_ = g.AddEdge(rep, r.neighbor, r.data)
		}

		g.dropVertexEntry(v2)
	}
	return nil
}

// Clone returns a structural copy of the graph: vertices and edges are
// duplicated, edge payloads are shared. Changes to the structure of the
// copy do not affect the original.
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	cp := New[V, E]()
	for _, v := range g.Vertices() {
		cp.AddVertex(v)
	}
	for _, v := range g.Vertices() {
		for _, e := range g.vertices[v].out {
			_ = cp.AddEdge(e.Source, e.Dest, e.Data)
		}
	}
	return cp
}
