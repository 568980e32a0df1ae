package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphwalk/n2vcore/sampler"
)

func TestSampleSingleWeightAlwaysZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		require.Equal(t, 0, sampler.Sample([]float64{5}, rng))
	}
}

func TestSampleDeterministicGivenSeed(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		require.Equal(t, sampler.Sample(weights, rng1), sampler.Sample(weights, rng2))
	}
}

func TestSampleRespectsZeroWeightEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := []float64{0, 1, 0}
	for i := 0; i < 200; i++ {
		require.Equal(t, 1, sampler.Sample(weights, rng))
	}
}

func TestSampleConvergesToProportions(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	weights := []float64{1, 3}
	counts := make([]int, 2)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[sampler.Sample(weights, rng)]++
	}
	ratio := float64(counts[1]) / float64(counts[0])
	require.InDelta(t, 3.0, ratio, 0.3)
}

func TestSamplePanicsOnEmptyWeights(t *testing.T) {
	require.Panics(t, func() {
		sampler.Sample(nil, rand.New(rand.NewSource(1)))
	})
}

func TestSamplePanicsOnZeroTotal(t *testing.T) {
	require.Panics(t, func() {
		sampler.Sample([]float64{0, 0}, rand.New(rand.NewSource(1)))
	})
}
