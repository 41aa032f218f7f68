package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontologizer/ontologizerlib/dag"
)

// weights maps "src>dst" payloads to explicit weights for a test graph.
func weights(m map[string]int) dag.EdgeWeighter[string, string] {
	return func(_, _ string, data string) int { return m[data] }
}

// collect gathers the per-vertex results of a path computation.
type pathResult struct {
	path []string
	dist int
}

func collect(results map[string]pathResult) dag.DistanceVisitor[string] {
	return func(v string, path []string, dist int) bool {
		cp := make([]string, len(path))
		copy(cp, path)
		results[v] = pathResult{path: cp, dist: dist}
		return true
	}
}

func TestShortestPathsUnitWeights(t *testing.T) {
	require := require.New(t)
	g := diamond()

	results := make(map[string]pathResult)
	require.NoError(g.ShortestPaths("R", false, nil, collect(results)))

	require.Equal(0, results["R"].dist)
	require.Equal(1, results["A"].dist)
	require.Equal(1, results["B"].dist)
	require.Equal(2, results["C"].dist)
	require.Equal([]string{"R"}, results["R"].path)
	require.Equal([]string{"R", "A", "C"}, results["C"].path, "ties resolve to the first relaxed parent")
}

func TestShortestPathsWeighted(t *testing.T) {
	require := require.New(t)
	g := diamond()

	// Make the path through B cheaper despite equal hop count
	w := weights(map[string]int{"R>A": 5, "R>B": 1, "A>C": 1, "B>C": 1})
	results := make(map[string]pathResult)
	require.NoError(g.ShortestPaths("R", false, w, collect(results)))

	require.Equal(2, results["C"].dist)
	require.Equal([]string{"R", "B", "C"}, results["C"].path)
}

func TestShortestPathsReverse(t *testing.T) {
	require := require.New(t)
	g := diamond()

	results := make(map[string]pathResult)
	require.NoError(g.ShortestPaths("C", true, nil, collect(results)))

	require.Equal(2, results["R"].dist)
	require.Equal([]string{"C", "A", "R"}, results["R"].path)
}

func TestShortestPathsErrors(t *testing.T) {
	require := require.New(t)
	g := diamond()

	err := g.ShortestPaths("missing", false, nil, collect(map[string]pathResult{}))
	require.ErrorIs(err, dag.ErrVertexNotFound)

	neg := weights(map[string]int{"R>A": -1, "R>B": 1, "A>C": 1, "B>C": 1})
	err = g.ShortestPaths("R", false, neg, collect(map[string]pathResult{}))
	require.ErrorIs(err, dag.ErrNegativeWeight)
}

func TestShortestPathsBFHandlesNegativeWeights(t *testing.T) {
	require := require.New(t)
	g := diamond()

	// Negative weight on a DAG is fine for relaxation
	w := weights(map[string]int{"R>A": 1, "R>B": 1, "A>C": -3, "B>C": 1})
	results := make(map[string]pathResult)
	require.NoError(g.ShortestPathsBF("R", w, collect(results)))

	require.Equal(-2, results["C"].dist)
	require.Equal([]string{"R", "A", "C"}, results["C"].path)
}

func TestShortestPathsBFNegativeCycle(t *testing.T) {
	require := require.New(t)
	g := digraph([2]string{"A", "B"}, [2]string{"B", "A"})

	w := weights(map[string]int{"A>B": -1, "B>A": -1})
	err := g.ShortestPathsBF("A", w, collect(map[string]pathResult{}))
	require.ErrorIs(err, dag.ErrNegativeCycle)
}

func TestLongestPathsDiamond(t *testing.T) {
	require := require.New(t)
	// R→A→B→C plus the shortcut R→C: the level of C is 3, not 1
	g := digraph([2]string{"R", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"R", "C"})

	results := make(map[string]pathResult)
	require.NoError(g.LongestPaths("R", nil, collect(results)))

	require.Equal(0, results["R"].dist)
	require.Equal(1, results["A"].dist)
	require.Equal(2, results["B"].dist)
	require.Equal(3, results["C"].dist)
	require.Equal([]string{"R", "A", "B", "C"}, results["C"].path)
}

func TestLongestPathsRejectsCycle(t *testing.T) {
	require := require.New(t)
	g := digraph([2]string{"A", "B"}, [2]string{"B", "A"})

	// Positive weights turn negative under the longest-path transform
	err := g.LongestPaths("A", nil, collect(map[string]pathResult{}))
	require.ErrorIs(err, dag.ErrNegativeCycle)
}

func TestDistancesDeliveredInInsertionOrder(t *testing.T) {
	require := require.New(t)
	g := diamond()

	var order []string
	require.NoError(g.ShortestPaths("R", false, nil, func(v string, _ []string, _ int) bool {
		order = append(order, v)
		return true
	}))
	require.Equal([]string{"R", "A", "B", "C"}, order)

	// Early stop after the first delivery
	order = order[:0]
	require.NoError(g.ShortestPaths("R", false, nil, func(v string, _ []string, _ int) bool {
		order = append(order, v)
		return false
	}))
	require.Equal([]string{"R"}, order)
}
