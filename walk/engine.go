// engine.go implements the Single-Walk Engine (spec §4.5): the state
// machine for exactly one walk, from its starting node to a trap or to
// Params.Length emitted nodes, whichever comes first.
package walk

import (
	"math/rand"

	"github.com/graphwalk/n2vcore/csrgraph"
	"github.com/graphwalk/n2vcore/sampler"
	"github.com/graphwalk/n2vcore/transition"
)

// singleWalker holds the per-worker state needed to run many walks
// without reallocating: a transition.Builder (itself holding a scratch
// buffer) and the RNG for the walks it will be asked to run. It is not
// safe for concurrent use.
type singleWalker struct {
	g      *csrgraph.Graph
	tb     *transition.Builder
	rng    *rand.Rand
	params Params
}

// walk runs one walk starting at start, per spec §4.5:
//   - emits start; if start is a trap node, the walk ends here (length 1).
//   - first step: node_transition, sample, emit, remember the chosen edge.
//   - subsequent steps: if the current edge is a trap edge, stop; else
//     edge_transition, sample, emit, advance.
//
// The returned slice is freshly allocated and safe for the caller to keep;
// length is always in [1, params.Length].
func (w *singleWalker) walk(start uint32) []uint32 {
	seq := make([]uint32, 1, w.params.Length)
	seq[0] = start

	if w.g.IsNodeTrap(start) || w.params.Length <= 1 {
		return seq
	}

	tr, destinations, edgeStart, _ := w.tb.NodeTransition(w.g, start, w.params.ChangeNodeTypeWeight)
	idx := sampler.Sample(tr, w.rng)
	cur := destinations[idx]
	seq = append(seq, cur)
	edge := edgeStart + uint32(idx)

	for len(seq) < w.params.Length {
		if w.g.IsEdgeTrap(edge) {
			break
		}

		tr, destinations, edgeStart, _ = w.tb.EdgeTransition(w.g, edge, w.params.ReturnWeight, w.params.ExploreWeight, w.params.ChangeNodeTypeWeight, w.params.ChangeEdgeTypeWeight)
		idx = sampler.Sample(tr, w.rng)
		cur = destinations[idx]
		seq = append(seq, cur)
		edge = edgeStart + uint32(idx)
	}

	return seq
}
