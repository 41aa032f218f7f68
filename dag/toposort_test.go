package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontologizer/ontologizerlib/dag"
)

func TestTopologicalOrder(t *testing.T) {
	require := require.New(t)
	g := diamond()

	order, err := g.TopologicalOrder()
	require.NoError(err)
	require.Len(order, 4)

	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	require.Less(pos["R"], pos["A"])
	require.Less(pos["R"], pos["B"])
	require.Less(pos["A"], pos["C"])
	require.Less(pos["B"], pos["C"])
}

func TestTopologicalOrderDeterministic(t *testing.T) {
	require := require.New(t)
	g := diamond()

	first, err := g.TopologicalOrder()
	require.NoError(err)
	for i := 0; i < 5; i++ {
		again, err := g.TopologicalOrder()
		require.NoError(err)
		require.Equal(first, again)
	}
}

func TestTopologicalOrderRejectsCycle(t *testing.T) {
	require := require.New(t)
	g := digraph([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	_, err := g.TopologicalOrder()
	require.ErrorIs(err, dag.ErrCycleDetected)
}
