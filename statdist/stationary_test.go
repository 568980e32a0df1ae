package statdist_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/fixtures"
	"github.com/graphwalk/n2vcore/statdist"
	"github.com/graphwalk/n2vcore/walk"
)

func TestTriangleIsUniformStationary(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Triangle())
	require.NoError(t, err)

	pi, err := statdist.StationaryDistribution(g, 200)
	require.NoError(t, err)

	sum := 0.0
	for _, p := range pi {
		require.InDelta(t, 1.0/3.0, p, 1e-6)
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestTransitionMatrixRejectsTrapNode(t *testing.T) {
	g, err := fixtures.BuildDirected(nil, fixtures.Chain(3))
	require.NoError(t, err)

	_, err = statdist.TransitionMatrix(g)
	require.ErrorIs(t, err, statdist.ErrTrapNode)
}

func TestEmpiricalFrequencyApproachesStationaryOnRandomSparse(t *testing.T) {
	g, err := fixtures.BuildDirected([]fixtures.Option{fixtures.WithSeed(7)}, fixtures.RandomSparse(12, 0.6))
	require.NoError(t, err)

	pi, err := statdist.StationaryDistribution(g, 500)
	require.NoError(t, err)

	d := walk.NewDriver(g)
	p := walk.DefaultParams()
	p.Length = 200
	p.Iterations = 400
	p.Seed = 99

	walks, err := d.Walk(context.Background(), p)
	require.NoError(t, err)

	freq := statdist.EmpiricalVisitFrequency(walks, g.N())

	maxDiff := 0.0
	for i := range pi {
		if diff := math.Abs(pi[i] - freq[i]); diff > maxDiff {
			maxDiff = diff
		}
	}
	require.Less(t, maxDiff, 0.1, "empirical visitation should roughly track the first-order stationary distribution on a dense random graph")
}
