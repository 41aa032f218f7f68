// Single-source path algorithms: Dijkstra for non-negative weights and
// Bellman–Ford relaxation for general weights (shortest and longest).
package dag

import (
	"container/heap"
	"fmt"
)

// pathInfo carries the per-vertex relaxation state shared by both
// algorithms: the best known distance and the predecessor on that path.
type pathInfo[V comparable] struct {
	dist      int
	parent    V
	hasParent bool
}

// ShortestPaths computes shortest paths from source to every reachable
// vertex using Dijkstra's algorithm with a min-heap and lazy decrease-key.
// Edges are followed forward, or backward when reverse is true. A nil
// weight function assigns every edge weight 1; a weight function
// producing a negative weight aborts with ErrNegativeWeight.
//
// After the search completes, visit receives one result per reached
// vertex (the source included, at distance 0) with the reconstructed
// path; results are delivered in graph insertion order, and the visitor
// may return false to stop delivery early.
// Complexity: O((V + E) log V).
func (g *Graph[V, E]) ShortestPaths(source V, reverse bool, weight EdgeWeighter[V, E], visit DistanceVisitor[V]) error {
	if _, ok := g.vertices[source]; !ok {
		return fmt.Errorf("%w: shortest-path source %v", ErrVertexNotFound, source)
	}

	info := make(map[V]*pathInfo[V], len(g.vertices))
	settled := make(map[V]struct{}, len(g.vertices))

	pq := make(distPQ[V], 0, len(g.vertices))
	heap.Init(&pq)
	heap.Push(&pq, &distItem[V]{v: source, dist: 0})
	info[source] = &pathInfo[V]{}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem[V])
		if _, done := settled[item.v]; done {
			// Stale heap entry left behind by lazy decrease-key.
			continue
		}
		settled[item.v] = struct{}{}

		va := g.vertices[item.v]
		edges := va.out
		if reverse {
			edges = va.in
		}
		for _, e := range edges {
			next := e.Dest
			if reverse {
				next = e.Source
			}
			w := weightOf(e, weight)
			if w < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.Source, e.Dest, w)
			}

			cand := item.dist + w
			cur, seen := info[next]
			if seen && cur.dist <= cand {
				continue
			}
			if !seen {
				cur = &pathInfo[V]{}
				info[next] = cur
			}
			cur.dist = cand
			cur.parent = item.v
			cur.hasParent = true
			heap.Push(&pq, &distItem[V]{v: next, dist: cand})
		}
	}

	g.emitDistances(info, 1, visit)
	return nil
}

// ShortestPathsBF computes shortest paths from source via Bellman–Ford
// relaxation. Unlike ShortestPaths it tolerates negative edge weights, as
// long as the graph is acyclic. A nil weight function assigns weight 1.
// Results are delivered like ShortestPaths.
//
// Relaxation runs for at most |V| rounds and exits as soon as a round
// changes nothing; a final round that still relaxes an edge proves a
// negative-weight cycle and yields ErrNegativeCycle rather than a silent
// wrong answer.
// Complexity: O(V * E), typically far less on shallow DAGs.
func (g *Graph[V, E]) ShortestPathsBF(source V, weight EdgeWeighter[V, E], visit DistanceVisitor[V]) error {
	return g.bellmanFord(source, 1, weight, visit)
}

// LongestPaths computes longest paths from source by negating the weights
// before Bellman–Ford relaxation and negating the resulting distances
// back. The ontology layer uses this for term-level assignment (the level
// of a term is the longest root-to-term distance).
func (g *Graph[V, E]) LongestPaths(source V, weight EdgeWeighter[V, E], visit DistanceVisitor[V]) error {
	return g.bellmanFord(source, -1, weight, visit)
}

// bellmanFord relaxes all out-edges of all discovered vertices for up to
// |V| rounds, multiplying each weight by multiplier (-1 turns shortest
// into longest). Distances handed to the visitor are multiplied back.
func (g *Graph[V, E]) bellmanFord(source V, multiplier int, weight EdgeWeighter[V, E], visit DistanceVisitor[V]) error {
	if _, ok := g.vertices[source]; !ok {
		return fmt.Errorf("%w: relaxation source %v", ErrVertexNotFound, source)
	}

	info := make(map[V]*pathInfo[V], len(g.vertices))
	info[source] = &pathInfo[V]{}

	order := g.Vertices()
	changed := false
	for round := 0; round < len(order); round++ {
		changed = false
		for _, u := range order {
			uInfo, discovered := info[u]
			if !discovered {
				continue
			}
			for _, e := range g.vertices[u].out {
				w := weightOf(e, weight) * multiplier
				cand := uInfo.dist + w

				vInfo, seen := info[e.Dest]
				if !seen {
					info[e.Dest] = &pathInfo[V]{dist: cand, parent: u, hasParent: true}
					changed = true
					continue
				}
				if vInfo.dist > cand {
					vInfo.dist = cand
					vInfo.parent = u
					vInfo.hasParent = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	if changed {
		return ErrNegativeCycle
	}

	g.emitDistances(info, multiplier, visit)
	return nil
}

// emitDistances reconstructs, for every reached vertex, the path from the
// source by following the stored parents, and hands (vertex, path,
// distance*multiplier) to the visitor in graph insertion order. A false
// visitor return stops delivery.
func (g *Graph[V, E]) emitDistances(info map[V]*pathInfo[V], multiplier int, visit DistanceVisitor[V]) {
	for _, v := range g.Vertices() {
		vInfo, ok := info[v]
		if !ok {
			continue
		}

		// Walk the parent chain back to the source, then reverse.
		path := []V{v}
		for cur := vInfo; cur.hasParent; cur = info[cur.parent] {
			path = append(path, cur.parent)
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}

		if !visit(v, path, vInfo.dist*multiplier) {
			return
		}
	}
}

// weightOf returns the weight of e via the weighter, or 1 when no
// weighter is supplied.
func weightOf[V comparable, E any](e *Edge[V, E], weight EdgeWeighter[V, E]) int {
	if weight == nil {
		return 1
	}
	return weight(e.Source, e.Dest, e.Data)
}

// distItem pairs a vertex with its tentative distance for the heap.
type distItem[V comparable] struct {
	v    V
	dist int
}

// distPQ is a min-heap of *distItem ordered by ascending distance. Under
// lazy decrease-key, outdated entries stay in the heap and are skipped
// when popped.
type distPQ[V comparable] []*distItem[V]

func (pq distPQ[V]) Len() int            { return len(pq) }
func (pq distPQ[V]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ[V]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ[V]) Push(x interface{}) { *pq = append(*pq, x.(*distItem[V])) }
func (pq *distPQ[V]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
