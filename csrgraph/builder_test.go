package csrgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/csrgraph"
)

// TestNeighborRangeExactness checks property 1 of spec §8: for every
// node, end-start equals the number of edges sourced there, and the
// destinations in range are strictly increasing.
func TestNeighborRangeExactness(t *testing.T) {
	// 0->1, 0->2, 1->2, 2->(trap)
	sources := []uint32{0, 0, 1}
	destinations := []uint32{1, 2, 2}
	g, err := csrgraph.Build(3, sources, destinations, nil)
	require.NoError(t, err)

	require.Equal(t, []uint32{1, 2}, g.Neighbors(0))
	require.Equal(t, []uint32{2}, g.Neighbors(1))
	require.Empty(t, g.Neighbors(2))
	require.True(t, g.IsNodeTrap(2))
	require.False(t, g.IsNodeTrap(0))
}

func TestBuildRejectsUnsortedSources(t *testing.T) {
	_, err := csrgraph.Build(3, []uint32{1, 0}, []uint32{2, 1}, nil)
	require.Error(t, err)
}

func TestBuildRejectsNonStrictDestinations(t *testing.T) {
	_, err := csrgraph.Build(3, []uint32{0, 0}, []uint32{1, 1}, nil)
	require.Error(t, err)
}

func TestBuildRejectsOutOfBoundsNode(t *testing.T) {
	_, err := csrgraph.Build(2, []uint32{0}, []uint32{5}, nil)
	require.Error(t, err)
}

func TestBuildRejectsBadWeight(t *testing.T) {
	_, err := csrgraph.Build(2, []uint32{0}, []uint32{1}, []float64{0})
	require.Error(t, err)
	_, err = csrgraph.Build(2, []uint32{0}, []uint32{1}, []float64{-1})
	require.Error(t, err)
}

func TestBuildRejectsLengthMismatch(t *testing.T) {
	_, err := csrgraph.Build(2, []uint32{0, 1}, []uint32{1}, nil)
	require.Error(t, err)
}

func TestContainsEdgeAndEdgeID(t *testing.T) {
	g, err := csrgraph.Build(3, []uint32{0, 1, 2}, []uint32{1, 2, 0}, nil)
	require.NoError(t, err)

	require.True(t, g.ContainsEdge(0, 1))
	require.False(t, g.ContainsEdge(1, 0))
	id, ok := g.EdgeID(1, 2)
	require.True(t, ok)
	require.Equal(t, uint32(1), id)
}

func TestWeightDefaultsToUniform(t *testing.T) {
	g, err := csrgraph.Build(2, []uint32{0}, []uint32{1}, nil)
	require.NoError(t, err)
	require.False(t, g.HasWeights())
	require.Equal(t, 1.0, g.Weight(0))
}

func TestNodeNamesRoundTrip(t *testing.T) {
	g, err := csrgraph.Build(2, []uint32{0}, []uint32{1}, nil, csrgraph.WithNodeNames([]string{"a", "b"}))
	require.NoError(t, err)
	require.Equal(t, "a", g.NodeName(0))
	id, ok := g.NodeID("b")
	require.True(t, ok)
	require.Equal(t, uint32(1), id)
}
