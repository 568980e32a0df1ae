// Package fixtures builds small, deterministic graphs for tests and
// demos: triangles, chains, stars, disjoint components, and
// Erdős–Rényi-style random graphs. It mirrors the teacher's topology
// builder (functional options resolving into an immutable config, one
// orchestrator applying a list of constructors in order) but targets
// n2vcore's own staging Graph instead of a generic adjacency-list one.
package fixtures

import "math/rand"

// WeightFn produces an edge weight given an optional RNG. It must be
// deterministic for a fixed seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns 1.0.
func DefaultWeightFn(_ *rand.Rand) float64 { return 1.0 }

// UniformWeightFn samples uniformly in [min, max). If rng is nil, or
// max <= min, it returns min.
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// Option customizes a fixture build: the RNG backing stochastic
// constructors (RandomSparse) and weight sampling, and the WeightFn
// applied per edge when the staging graph carries weights.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts ...Option) *config {
	cfg := &config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed seeds a fresh RNG for this build, making RandomSparse (and
// any WeightFn that samples) reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight function. No-op if fn is
// nil.
func WithWeightFn(fn WeightFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.weightFn = fn
		}
	}
}
