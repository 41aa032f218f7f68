// Topological ordering.
package dag

// TopologicalOrder returns the vertices in a topological order: every
// edge points from an earlier to a later position. Sources are consumed
// in insertion order, so the result is deterministic for a fixed
// construction sequence. Returns ErrCycleDetected when the graph is not
// acyclic.
// Complexity: O(V + E).
func (g *Graph[V, E]) TopologicalOrder() ([]V, error) {
	remaining := make(map[V]int, len(g.vertices))
	queue := make([]V, 0, len(g.vertices))
	for _, v := range g.Vertices() {
		deg := len(g.vertices[v].in)
		remaining[v] = deg
		if deg == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]V, 0, len(g.vertices))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		for _, e := range g.vertices[v].out {
			remaining[e.Dest]--
			if remaining[e.Dest] == 0 {
				queue = append(queue, e.Dest)
			}
		}
	}

	if len(order) != len(g.vertices) {
		return nil, ErrCycleDetected
	}
	return order, nil
}
