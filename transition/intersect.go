// intersect.go implements the Neighbor Intersector (spec §4.3): a single
// merge-walk over two sorted neighbor lists that classifies each of the
// current node's destinations as a self/return edge, an outward-exploring
// edge, or a triangle-closing common neighbor, and scales the transition
// vector accordingly. This is the measured hot path (spec §9: ~45% of
// wall time), so it allocates nothing and touches each slice once.
package transition

// ApplyReturnExplore mutates transition in place per spec §4.3:
//
//  1. destinations[i] == src or == dst: scale by returnWeight.
//  2. else if destinations[i] is absent from previousDestinations: scale
//     by exploreWeight (no triangle closes through it).
//  3. else (a common neighbor of src and dst): leave unchanged.
//
// Both destinations and previousDestinations must be strictly increasing
// (spec §3's sorted-neighbor invariant); this is what makes the
// merge-walk O(len(destinations) + len(previousDestinations)) instead of
// a hash lookup per entry.
//
// The open question in spec §9(i) — eager vs. lazy advance of the
// previous-list pointer on a tie — is resolved here as "advance both
// pointers on v1 == v2" (eager), which is the simpler of the two and
// numerically equivalent given the strict-sort invariant.
func ApplyReturnExplore(transition []float64, destinations, previousDestinations []uint32, returnWeight, exploreWeight float64, src, dst uint32) {
	if returnWeight == 1 && exploreWeight == 1 {
		return
	}

	p1, p2 := 0, 0
	k, m := len(destinations), len(previousDestinations)

	for p1 < k && p2 < m {
		v1, v2 := destinations[p1], previousDestinations[p2]
		switch {
		case v1 < v2:
			applyOutward(transition, p1, v1, src, dst, returnWeight, exploreWeight)
			p1++
		case v1 == v2:
			applyReturnOnly(transition, p1, v1, src, dst, returnWeight)
			p1++
			p2++
		default:
			p2++
		}
	}
	for ; p1 < k; p1++ {
		applyOutward(transition, p1, destinations[p1], src, dst, returnWeight, exploreWeight)
	}
}

// applyOutward handles a destination absent from the previous node's
// neighbor list: self/return edges get returnWeight, everything else
// (a genuine outward move) gets exploreWeight.
func applyOutward(transition []float64, i int, v, src, dst uint32, returnWeight, exploreWeight float64) {
	if v == src || v == dst {
		if returnWeight != 1 {
			transition[i] *= returnWeight
		}

		return
	}
	if exploreWeight != 1 {
		transition[i] *= exploreWeight
	}
}

// applyReturnOnly handles a destination that IS a common neighbor
// (triangle-closing): only the self/return test applies; a true common
// neighbor that is neither src nor dst is left unchanged.
func applyReturnOnly(transition []float64, i int, v, src, dst uint32, returnWeight float64) {
	if (v == src || v == dst) && returnWeight != 1 {
		transition[i] *= returnWeight
	}
}
