// Slim read-only graph view.
package dag

// Slim is a flattened, read-optimized snapshot of a graph's adjacency
// structure. Vertices are addressed by dense integer indices and the
// parent/child lists are plain index slices, which keeps the tight inner
// loops of enrichment scoring free of map lookups and allocation. A Slim
// does not observe later mutations of the graph it was built from.
type Slim[V comparable] struct {
	vertices []V
	index    map[V]int
	parents  [][]int
	children [][]int
}

// NewSlim builds a slim view of g. Indices follow the graph's vertex
// insertion order; parent and child lists follow the per-vertex edge
// order.
// Complexity: O(V + E).
func NewSlim[V comparable, E any](g *Graph[V, E]) *Slim[V] {
	vertices := g.Vertices()
	s := &Slim[V]{
		vertices: vertices,
		index:    make(map[V]int, len(vertices)),
		parents:  make([][]int, len(vertices)),
		children: make([][]int, len(vertices)),
	}
	for i, v := range vertices {
		s.index[v] = i
	}
	for i, v := range vertices {
		va := g.vertices[v]
		if len(va.in) > 0 {
			s.parents[i] = make([]int, len(va.in))
			for j, e := range va.in {
				s.parents[i][j] = s.index[e.Source]
			}
		}
		if len(va.out) > 0 {
			s.children[i] = make([]int, len(va.out))
			for j, e := range va.out {
				s.children[i][j] = s.index[e.Dest]
			}
		}
	}
	return s
}

// VertexCount returns the number of vertices in the view.
func (s *Slim[V]) VertexCount() int { return len(s.vertices) }

// VertexAt returns the vertex stored at index i.
func (s *Slim[V]) VertexAt(i int) V { return s.vertices[i] }

// Index returns the dense index of v, or false when v is not part of the
// view.
func (s *Slim[V]) Index(v V) (int, bool) {
	i, ok := s.index[v]
	return i, ok
}

// ParentsOf returns the indices of the parents of the vertex at index i.
// The returned slice is shared and must be treated as read-only.
func (s *Slim[V]) ParentsOf(i int) []int { return s.parents[i] }

// ChildrenOf returns the indices of the children of the vertex at index i.
// The returned slice is shared and must be treated as read-only.
func (s *Slim[V]) ChildrenOf(i int) []int { return s.children[i] }
