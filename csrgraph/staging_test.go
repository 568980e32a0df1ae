package csrgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/core"
	"github.com/graphwalk/n2vcore/csrgraph"
)

func TestFromStagingSortsAndFreezes(t *testing.T) {
	staged := core.NewGraph(core.WithDirected(true))
	require.NoError(t, staged.AddEdge("c", "a", 0, ""))
	require.NoError(t, staged.AddEdge("a", "b", 0, ""))
	require.NoError(t, staged.AddEdge("a", "c", 0, ""))

	g, err := csrgraph.FromStaging(staged)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 3, g.E())

	aID, _ := g.NodeID("a")
	bID, _ := g.NodeID("b")
	cID, _ := g.NodeID("c")
	neighbors := g.Neighbors(aID)
	require.Equal(t, []uint32{min(bID, cID), max(bID, cID)}, neighbors)
}

func TestFromStagingDedupesParallelEdges(t *testing.T) {
	staged := core.NewGraph(core.WithDirected(true))
	require.NoError(t, staged.AddEdge("a", "b", 0, ""))
	require.NoError(t, staged.AddEdge("a", "b", 0, ""))

	g, err := csrgraph.FromStaging(staged)
	require.NoError(t, err)
	require.Equal(t, 1, g.E())
}

func TestFromStagingUndirectedMaterializesBothDirections(t *testing.T) {
	staged := core.NewGraph(core.WithDirected(false))
	require.NoError(t, staged.AddEdge("a", "b", 0, ""))

	g, err := csrgraph.FromStaging(staged)
	require.NoError(t, err)
	require.Equal(t, 2, g.E())
	aID, _ := g.NodeID("a")
	bID, _ := g.NodeID("b")
	require.True(t, g.ContainsEdge(aID, bID))
	require.True(t, g.ContainsEdge(bID, aID))
}

func TestFromStagingRejectsEmptyGraph(t *testing.T) {
	staged := core.NewGraph()
	_, err := csrgraph.FromStaging(staged)
	require.Error(t, err)
}
