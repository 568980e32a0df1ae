package reachable_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/fixtures"
	"github.com/graphwalk/n2vcore/reachable"
)

func TestFromTwoTriangles(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.TwoTriangles())
	require.NoError(t, err)

	visited, err := reachable.From(context.Background(), g, 0)
	require.NoError(t, err)
	require.Len(t, visited, 3)
	for n := range visited {
		require.Less(t, n, uint32(3))
	}
}

func TestSameComponent(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.TwoTriangles())
	require.NoError(t, err)

	require.True(t, reachable.SameComponent(g, 0, 2))
	require.False(t, reachable.SameComponent(g, 0, 3))
}

func TestFromChainReachesTrap(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Chain(4))
	require.NoError(t, err)

	visited, err := reachable.From(context.Background(), g, 0)
	require.NoError(t, err)
	require.Len(t, visited, 4)
}
