// Package dag provides the generic directed-graph engine underlying the
// ontology layer: vertex/edge storage, multi-source breadth-first
// traversal, weighted shortest- and longest-path algorithms, subgraph
// extraction, transitive reduction, and vertex merging.
//
// Overview:
//
//   - Graph[V, E] stores, per vertex, its ordered lists of incoming and
//     outgoing edges. Insertion order of vertices is preserved, so every
//     enumeration (Vertices, traversal seeds, relaxation sweeps) is
//     deterministic for a fixed construction sequence.
//   - Edges carry an arbitrary payload E (a relation type in the ontology
//     layer). Multi-edges are not stored deliberately: AddEdge does not
//     deduplicate, but the deletion path treats more than one edge per
//     ordered pair as a fatal consistency violation.
//   - Traversal uses plain closure visitors: a visitor returning false
//     aborts the walk immediately. No separate cancellation token exists.
//
// Algorithms:
//
//   - BFS / BFSFiltered: multi-source, forward or reversed, with an
//     optional edge-follow predicate. O(V + E).
//   - ShortestPaths: Dijkstra with a min-heap and lazy decrease-key;
//     non-negative weights only, ErrNegativeWeight fails fast.
//     O((V + E) log V).
//   - ShortestPathsBF / LongestPaths: Bellman–Ford relaxation with early
//     fixed-point exit; longest paths negate weights and distances.
//     O(V * E), with ErrNegativeCycle as a defensive guard on malformed
//     (cyclic) input.
//   - SubGraph / TransitiveClosure / PathMaintainingSubGraph: induced
//     subgraphs, naive reflexive closure, and a reachability-preserving
//     reduction over a vertex subset.
//   - MergeVertices: redirects all edges of equivalent vertices onto a
//     representative, first-seen payload wins.
//
// Concurrency model:
//
//   - Construction and mutation are single-threaded by contract. After
//     construction, any number of goroutines may run read operations
//     concurrently as long as no mutation is in flight. The graph holds
//     no internal locks; callers serialize mutations externally.
package dag
