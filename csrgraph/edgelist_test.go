package csrgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/csrgraph"
)

func TestFromEdgeListBasic(t *testing.T) {
	input := "# comment\na b\nb c\n\nc a\n"
	g, err := csrgraph.FromEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())

	aID, ok := g.NodeID("a")
	require.True(t, ok)
	bID, ok := g.NodeID("b")
	require.True(t, ok)
	require.True(t, g.ContainsEdge(aID, bID))
}

func TestFromEdgeListWeighted(t *testing.T) {
	input := "a b 2.5\nb c 1.0\n"
	g, err := csrgraph.FromEdgeList(strings.NewReader(input), csrgraph.WithWeightedInput())
	require.NoError(t, err)
	require.True(t, g.HasWeights())

	aID, _ := g.NodeID("a")
	bID, _ := g.NodeID("b")
	eid, ok := g.EdgeID(aID, bID)
	require.True(t, ok)
	require.InDelta(t, 2.5, g.Weight(eid), 1e-9)
}

func TestFromEdgeListUndirectedMirrors(t *testing.T) {
	input := "a b\n"
	g, err := csrgraph.FromEdgeList(strings.NewReader(input), csrgraph.WithUndirectedInput())
	require.NoError(t, err)

	aID, _ := g.NodeID("a")
	bID, _ := g.NodeID("b")
	require.True(t, g.ContainsEdge(aID, bID))
	require.True(t, g.ContainsEdge(bID, aID))
}

func TestFromEdgeListRejectsMalformedLine(t *testing.T) {
	_, err := csrgraph.FromEdgeList(strings.NewReader("onlyonefield\n"))
	require.Error(t, err)
}
