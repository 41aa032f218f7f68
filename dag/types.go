// Package dag declares the Graph and Edge types, sentinel errors, and the
// callback signatures shared by the path algorithms.
package dag

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not part of the graph.
	ErrVertexNotFound = errors.New("dag: vertex not found")

	// ErrNegativeWeight indicates a weighter produced a negative weight for
	// an algorithm that requires non-negative weights.
	ErrNegativeWeight = errors.New("dag: negative edge weight")

	// ErrNegativeCycle indicates that Bellman–Ford relaxation did not reach
	// a fixed point within |V| rounds, which can only happen on cyclic
	// input with effectively negative weights.
	ErrNegativeCycle = errors.New("dag: negative-weight cycle detected")

	// ErrCycleDetected indicates the graph is not acyclic where a DAG was
	// required (topological ordering).
	ErrCycleDetected = errors.New("dag: graph contains a cycle")
)

// Edge is a directed connection Source→Dest with an attached payload.
// At most one edge may exist per ordered vertex pair; the engine does not
// deduplicate on insert, so duplicate avoidance is the caller's
// responsibility.
type Edge[V comparable, E any] struct {
	// Source is the origin vertex.
	Source V

	// Dest is the destination vertex.
	Dest V

	// Data is the payload attached to this edge (e.g. a relation type).
	Data E
}

// EdgeWeighter maps an edge to an integer weight. A nil EdgeWeighter is
// interpreted as constant weight 1 by all path algorithms.
type EdgeWeighter[V comparable, E any] func(src, dst V, data E) int

// EdgeMerger combines the payloads of edges that collapse into a single
// edge during connectivity-maintaining vertex removal. A nil EdgeMerger
// yields the zero value of E.
type EdgeMerger[E any] func(data []E) E

// DistanceVisitor receives one result per vertex reached by a path
// algorithm: the vertex, the reconstructed path from the source (source
// first), and the final distance. Returning false stops result delivery.
type DistanceVisitor[V comparable] func(v V, path []V, dist int) bool

// vertexAttrs holds the per-vertex edge lists. Both lists preserve
// insertion order; every edge appears exactly once in its source's out
// list and once in its destination's in list.
type vertexAttrs[V comparable, E any] struct {
	in  []*Edge[V, E]
	out []*Edge[V, E]
}

// Graph is a directed graph with vertices of type V and edge payloads of
// type E. The zero value is not usable; construct with New.
type Graph[V comparable, E any] struct {
	vertices map[V]*vertexAttrs[V, E]

	// order records vertex insertion order. Removed vertices leave a
	// tombstone that enumeration skips; stale counts tombstones so the
	// slice can be compacted once they dominate.
	order []V
	stale int
}

// New creates an empty graph.
// Complexity: O(1).
func New[V comparable, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: make(map[V]*vertexAttrs[V, E]),
	}
}
