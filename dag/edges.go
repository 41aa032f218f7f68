// Edge lifecycle and queries: AddEdge, HasEdge, Edge lookup and the
// symmetric RemoveConnections.
package dag

import "fmt"

// AddEdge creates a directed edge src→dst carrying data. Both endpoints
// must already be vertices of the graph; otherwise ErrVertexNotFound is
// returned. AddEdge performs no duplicate detection — re-adding an
// existing pair stores a second edge, which the deletion path later
// treats as a consistency violation. Callers that cannot rule out
// duplicates must check HasEdge first.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(src, dst V, data E) error {
	vaSrc, okSrc := g.vertices[src]
	vaDst, okDst := g.vertices[dst]
	if !okSrc {
		return fmt.Errorf("%w: edge source %v", ErrVertexNotFound, src)
	}
	if !okDst {
		return fmt.Errorf("%w: edge destination %v", ErrVertexNotFound, dst)
	}

	e := &Edge[V, E]{Source: src, Dest: dst, Data: data}
	vaSrc.out = append(vaSrc.out, e)
	vaDst.in = append(vaDst.in, e)
	return nil
}

// HasEdge reports whether a directed edge src→dst exists. A missing
// source vertex yields false.
// Complexity: O(outdeg(src)).
func (g *Graph[V, E]) HasEdge(src, dst V) bool {
	_, ok := g.Edge(src, dst)
	return ok
}

// Edge returns the edge connecting src to dst. As multi-edges are not
// supported this is unique. The boolean is false when no such edge (or no
// such source vertex) exists; a miss is not an error.
// Complexity: O(outdeg(src)).
func (g *Graph[V, E]) Edge(src, dst V) (*Edge[V, E], bool) {
	va, ok := g.vertices[src]
	if !ok {
		return nil, false
	}
	for _, e := range va.out {
		if e.Dest == dst {
			return e, true
		}
	}
	return nil, false
}

// RemoveConnections removes the edges between the unordered pair
// {src, dst} in both directions. Removing a non-existent connection is a
// no-op. Both vertices must be part of the graph.
//
// The stored-graph invariant permits at most one edge per ordered pair;
// discovering more than one during removal panics, as the graph is in an
// inconsistent state that no caller can recover from.
// Complexity: O(deg(src) + deg(dst)).
func (g *Graph[V, E]) RemoveConnections(src, dst V) error {
	vaSrc, okSrc := g.vertices[src]
	vaDst, okDst := g.vertices[dst]
	if !okSrc || !okDst {
		return fmt.Errorf("%w: removing connections %v–%v", ErrVertexNotFound, src, dst)
	}

	g.removeDirected(vaSrc, vaDst, src, dst)
	if src != dst {
		g.removeDirected(vaDst, vaSrc, dst, src)
	}
	return nil
}

// removeDirected drops the (unique) edge src→dst from both endpoint lists.
func (g *Graph[V, E]) removeDirected(vaSrc, vaDst *vertexAttrs[V, E], src, dst V) {
	var found *Edge[V, E]
	n := 0
	for _, e := range vaSrc.out {
		if e.Dest == dst {
			found = e
			n++
		}
	}
	if n > 1 {
		panic(fmt.Sprintf("dag: found %d edges %v→%v during deletion, expected at most one", n, src, dst))
	}
	if found == nil {
		return
	}
	vaSrc.out = dropEdge(vaSrc.out, found)
	vaDst.in = dropEdge(vaDst.in, found)
}

// dropEdge removes e (by identity) from list, preserving order.
func dropEdge[V comparable, E any](list []*Edge[V, E], e *Edge[V, E]) []*Edge[V, E] {
	for i, cur := range list {
		if cur == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
