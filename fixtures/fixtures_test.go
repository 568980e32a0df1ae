package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/core"
	"github.com/graphwalk/n2vcore/fixtures"
)

func TestTriangleHasNoTraps(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Triangle())
	require.NoError(t, err)
	require.EqualValues(t, 3, g.N())
	for n := uint32(0); n < 3; n++ {
		require.False(t, g.IsNodeTrap(n))
	}
}

func TestChainEndsInTrap(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Chain(5))
	require.NoError(t, err)
	require.EqualValues(t, 5, g.N())
	require.True(t, g.IsNodeTrap(4))
	for n := uint32(0); n < 4; n++ {
		require.False(t, g.IsNodeTrap(n))
	}
}

func TestChainRejectsTooFewNodes(t *testing.T) {
	_, err := fixtures.BuildDirected(nil, fixtures.Chain(1))
	require.Error(t, err)
}

func TestStarHasSingleBackEdge(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Star(6))
	require.NoError(t, err)
	require.EqualValues(t, 6, g.N())
	for leaf := uint32(2); leaf < 6; leaf++ {
		require.True(t, g.IsNodeTrap(leaf))
	}
	require.False(t, g.IsNodeTrap(1))
}

func TestTwoTrianglesAreDisjoint(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.TwoTriangles())
	require.NoError(t, err)
	require.EqualValues(t, 6, g.N())
	for n := uint32(0); n < 3; n++ {
		for _, d := range g.Neighbors(n) {
			require.Less(t, d, uint32(3))
		}
	}
	for n := uint32(3); n < 6; n++ {
		for _, d := range g.Neighbors(n) {
			require.GreaterOrEqual(t, d, uint32(3))
		}
	}
}

func TestSingleEdgeTrap(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.SingleEdge())
	require.NoError(t, err)
	require.EqualValues(t, 2, g.N())
	require.False(t, g.IsNodeTrap(0))
	require.True(t, g.IsNodeTrap(1))
}

func TestRandomSparseRequiresSeed(t *testing.T) {
	_, err := fixtures.BuildDirected(nil, fixtures.RandomSparse(10, 0.3))
	require.Error(t, err)
}

func TestRandomSparseIsDeterministicForFixedSeed(t *testing.T) {
	g1, err := fixtures.BuildDirected([]fixtures.Option{fixtures.WithSeed(42)}, fixtures.RandomSparse(20, 0.2))
	require.NoError(t, err)
	g2, err := fixtures.BuildDirected([]fixtures.Option{fixtures.WithSeed(42)}, fixtures.RandomSparse(20, 0.2))
	require.NoError(t, err)

	require.EqualValues(t, g1.N(), g2.N())
	for n := uint32(0); n < uint32(g1.N()); n++ {
		require.Equal(t, g1.Neighbors(n), g2.Neighbors(n))
	}
}

func TestRandomSparseRejectsBadProbability(t *testing.T) {
	_, err := fixtures.BuildDirected([]fixtures.Option{fixtures.WithSeed(1)}, fixtures.RandomSparse(10, 1.5))
	require.Error(t, err)
}

// TestRandomSparseWithUniformWeightFn exercises the weighted-edge path
// end to end (spec §3's invariant that a present weight is finite and
// > 0): fixtures.Build with core.WithWeights() carries every edge weight
// sampled by a WithWeightFn/UniformWeightFn into the frozen graph.
func TestRandomSparseWithUniformWeightFn(t *testing.T) {
	g, err := fixtures.Build(
		[]core.GraphOption{core.WithDirected(true), core.WithWeights()},
		[]fixtures.Option{fixtures.WithSeed(3), fixtures.WithWeightFn(fixtures.UniformWeightFn(2.0, 5.0))},
		fixtures.RandomSparse(8, 0.5),
	)
	require.NoError(t, err)
	require.True(t, g.HasWeights())

	for e := 0; e < g.E(); e++ {
		w := g.Weight(uint32(e))
		require.GreaterOrEqual(t, w, 2.0)
		require.LessOrEqual(t, w, 5.0)
	}
}
