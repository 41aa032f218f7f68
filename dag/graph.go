// Vertex lifecycle and degree/adjacency queries.
//
// Determinism: Vertices() returns vertices in insertion order; Parents()
// and Children() follow the per-vertex edge-list order.
package dag

// AddVertex inserts a vertex if missing. Adding an existing vertex is a
// no-op.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(v V) {
	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = &vertexAttrs[V, E]{}
	g.order = append(g.order, v)
}

// HasVertex reports whether v is part of the graph.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.vertices[v]
	return ok
}

// RemoveVertex removes all edges incident to v and then v itself. Removing
// an absent vertex is a no-op.
// Complexity: O(deg(v) * deg(neighbor)) for the edge-list removals.
func (g *Graph[V, E]) RemoveVertex(v V) {
	va, ok := g.vertices[v]
	if !ok {
		return
	}

	// RemoveConnections drops both directions between a pair, so draining
	// the in list may also shrink the out list (and vice versa).
	for len(va.in) > 0 {
		last := va.in[len(va.in)-1]
		_ = g.RemoveConnections(last.Source, last.Dest)
	}
	for len(va.out) > 0 {
		last := va.out[len(va.out)-1]
		_ = g.RemoveConnections(last.Source, last.Dest)
	}

	g.dropVertexEntry(v)
}

// dropVertexEntry deletes the catalog entry for v, leaving a tombstone in
// the order slice. The slice is compacted once tombstones dominate, which
// keeps enumeration linear under heavy removal (subgraph compaction).
func (g *Graph[V, E]) dropVertexEntry(v V) {
	delete(g.vertices, v)
	g.stale++
	if g.stale*2 > len(g.order) {
		g.compactOrder()
	}
}

// compactOrder rewrites the order slice without tombstones or duplicates.
// A removed and re-added vertex appears twice until compaction; only its
// last entry reflects the current insertion, so that one is kept.
func (g *Graph[V, E]) compactOrder() {
	last := lastLiveIndex(g.vertices, g.order)
	kept := g.order[:0]
	for i, v := range g.order {
		if li, ok := last[v]; ok && li == i {
			kept = append(kept, v)
		}
	}
	g.order = kept
	g.stale = 0
}

// lastLiveIndex maps every live vertex to the index of its most recent
// entry in order.
func lastLiveIndex[V comparable, E any](vertices map[V]*vertexAttrs[V, E], order []V) map[V]int {
	last := make(map[V]int, len(vertices))
	for i, v := range order {
		if _, ok := vertices[v]; ok {
			last[v] = i
		}
	}
	return last
}

// Vertices returns all vertices in insertion order. A vertex that was
// removed and added again counts as newly inserted and appears at the
// position of its re-insertion, not its original one.
// Complexity: O(len(order)).
func (g *Graph[V, E]) Vertices() []V {
	last := lastLiveIndex(g.vertices, g.order)
	out := make([]V, 0, len(g.vertices))
	for i, v := range g.order {
		if li, ok := last[v]; ok && li == i {
			out = append(out, v)
		}
	}
	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of edges.
// Complexity: O(V).
func (g *Graph[V, E]) EdgeCount() int {
	sum := 0
	for _, va := range g.vertices {
		sum += len(va.out)
	}
	return sum
}

// InDegree returns the number of incoming edges of v, or -1 if v is not a
// vertex of the graph.
func (g *Graph[V, E]) InDegree(v V) int {
	va, ok := g.vertices[v]
	if !ok {
		return -1
	}
	return len(va.in)
}

// OutDegree returns the number of outgoing edges of v, or -1 if v is not a
// vertex of the graph.
func (g *Graph[V, E]) OutDegree(v V) int {
	va, ok := g.vertices[v]
	if !ok {
		return -1
	}
	return len(va.out)
}

// InEdges returns the edges whose destination is v, in insertion order.
// The returned slice is a copy; the edges themselves are shared and must
// be treated as read-only.
func (g *Graph[V, E]) InEdges(v V) []*Edge[V, E] {
	va, ok := g.vertices[v]
	if !ok {
		return nil
	}
	out := make([]*Edge[V, E], len(va.in))
	copy(out, va.in)
	return out
}

// OutEdges returns the edges whose source is v, in insertion order.
// The returned slice is a copy; the edges themselves are shared and must
// be treated as read-only.
func (g *Graph[V, E]) OutEdges(v V) []*Edge[V, E] {
	va, ok := g.vertices[v]
	if !ok {
		return nil
	}
	out := make([]*Edge[V, E], len(va.out))
	copy(out, va.out)
	return out
}

// Parents returns the sources of v's incoming edges, in edge order.
func (g *Graph[V, E]) Parents(v V) []V {
	va, ok := g.vertices[v]
	if !ok {
		return nil
	}
	out := make([]V, len(va.in))
	for i, e := range va.in {
		out[i] = e.Source
	}
	return out
}

// Children returns the destinations of v's outgoing edges, in edge order.
func (g *Graph[V, E]) Children(v V) []V {
	va, ok := g.vertices[v]
	if !ok {
		return nil
	}
	out := make([]V, len(va.out))
	for i, e := range va.out {
		out[i] = e.Dest
	}
	return out
}
