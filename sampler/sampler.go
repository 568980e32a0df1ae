// Package sampler implements the core's single primitive for turning a
// weight vector into a random choice (spec §4.1): the cumulative-sum
// draw used at every step of every walk. It is deliberately the smallest
// package in the module, since it sits on the hottest of hot paths.
package sampler

import "math/rand"

// Sample draws an index i from weights with probability proportional to
// weights[i], using u ~ Uniform[0, total) and returning the first index
// whose running prefix sum strictly exceeds u.
//
// Preconditions (caller's responsibility): weights is non-empty, every
// entry is non-negative and finite, and the sum is strictly positive.
// The walk engine's trap-detection path guarantees these hold before
// Sample is ever called — see walk.singleWalker. Only an empty slice and
// a non-positive total are checked here, and both panic, since this is a
// programming error per spec §4.1, not a runtime condition to recover
// from; negative or non-finite entries are not detected.
//
// Complexity: O(n) time, O(1) space.
func Sample(weights []float64, rng *rand.Rand) int {
	if len(weights) == 0 {
		panic("sampler: Sample called with empty weights")
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("sampler: Sample called with non-positive total weight")
	}

	u := rng.Float64() * total
	var running float64
	for i, w := range weights {
		running += w
		if running > u {
			return i
		}
	}

	// Float64 accumulation can leave running fractionally short of total
	// due to rounding; the last index is the correct fallback rather than
	// an out-of-range result.
	return len(weights) - 1
}
