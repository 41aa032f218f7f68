// Breadth-first traversal and reachability queries.
package dag

// BFS runs a multi-source breadth-first walk from starts, following
// outgoing edges (or incoming edges when reverse is true). The visitor is
// invoked exactly once per discovered vertex, the start vertices
// included; returning false aborts the walk immediately. Start vertices
// that are not part of the graph are skipped.
// Complexity: O(V + E).
func (g *Graph[V, E]) BFS(starts []V, reverse bool, visit func(V) bool) {
	g.BFSFiltered(starts, reverse, nil, visit)
}

// BFSFiltered is BFS with an edge predicate: only edges for which follow
// returns true are traversed. A nil follow traverses every edge. The
// predicate restricts which neighbors are reached, not which vertices are
// reported — every vertex reached through an allowed edge is visited.
// Complexity: O(V + E).
func (g *Graph[V, E]) BFSFiltered(starts []V, reverse bool, follow func(*Edge[V, E]) bool, visit func(V) bool) {
	queue := make([]V, 0, len(starts))
	visited := make(map[V]struct{}, len(starts))

	// Seed with the start vertices themselves.
	for _, s := range starts {
		if _, ok := g.vertices[s]; !ok {
			continue
		}
		if _, dup := visited[s]; dup {
			continue
		}
		visited[s] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !visit(cur) {
			return
		}

		va := g.vertices[cur]
		edges := va.out
		if reverse {
			edges = va.in
		}
		for _, e := range edges {
			if follow != nil && !follow(e) {
				continue
			}
			next := e.Dest
			if reverse {
				next = e.Source
			}
			if _, dup := visited[next]; dup {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
}

// ExistsPath reports whether a directed path src→…→dst exists. The search
// walks the reversed edges from dst and stops at the first hit, which on
// ontology-shaped graphs (few parents, many children) discovers far fewer
// vertices than a forward walk would.
// Complexity: O(V + E) worst case.
func (g *Graph[V, E]) ExistsPath(src, dst V) bool {
	found := false
	g.BFS([]V{dst}, true, func(v V) bool {
		if v != src {
			return true
		}
		found = true
		return false
	})
	return found
}

// Ancestors returns the set of vertices from which v is reachable,
// including v itself.
// Complexity: O(V + E).
func (g *Graph[V, E]) Ancestors(v V) map[V]struct{} {
	set := make(map[V]struct{})
	g.BFS([]V{v}, true, func(cur V) bool {
		set[cur] = struct{}{}
		return true
	})
	return set
}
