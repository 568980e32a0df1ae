package transition

import (
	"github.com/graphwalk/n2vcore/csrgraph"
)

// Builder assembles transition weight vectors for one walker. It is not
// safe for concurrent use: the parallel walk driver gives each worker its
// own Builder so the scratch buffer below is never shared across
// goroutines.
type Builder struct {
	// scratch is reused as the returned transition vector across calls,
	// growing to the largest out-degree seen so far and never shrinking.
	// Callers must finish using one call's result before the next call on
	// the same Builder.
	scratch []float64
}

// NewBuilder returns a Builder with no pre-allocated scratch space.
func NewBuilder() *Builder {
	return &Builder{}
}

// transitionBuf returns b.scratch resized to exactly n entries, reusing
// the backing array when it is already large enough.
func (b *Builder) transitionBuf(n int) []float64 {
	if cap(b.scratch) < n {
		b.scratch = make([]float64, n)
	}

	return b.scratch[:n]
}

// NodeTransition builds the first-order transition vector for node (spec
// §4.4.1): one entry per outgoing edge, seeded from edge weights (or
// uniform 1.0), then optionally suppressed/encouraged by the
// change-node-type bias. Returns the transition vector, the corresponding
// destination node ids, and the [start, end) edge range they came from.
//
// The returned transition slice aliases the Builder's internal scratch
// buffer and is only valid until the next call on the same Builder.
//
// Complexity: O(d) where d is node's out-degree.
func (b *Builder) NodeTransition(g *csrgraph.Graph, node uint32, changeNodeTypeWeight float64) (transition []float64, destinations []uint32, start, end uint32) {
	start, end = g.NeighborRange(node)
	destinations = g.Neighbors(node)
	transition = b.transitionBuf(len(destinations))

	if g.HasWeights() {
		for i := range destinations {
			transition[i] = g.Weight(start + uint32(i))
		}
	} else {
		for i := range transition {
			transition[i] = 1.0
		}
	}

	if changeNodeTypeWeight != 1 && g.HasNodeTypes() {
		nodeType, _ := g.NodeType(node)
		for i, d := range destinations {
			if dt, ok := g.NodeType(d); ok && dt == nodeType {
				transition[i] /= changeNodeTypeWeight
			}
		}
	}

	return transition, destinations, start, end
}

// EdgeTransition builds the second-order transition vector for the step
// arriving via edge (spec §4.4.2): starts from NodeTransition(dst, ...),
// applies the change-edge-type bias, then applies the return and explore
// biases in a single merge-walk against the previous node's neighbor list
// (the Neighbor Intersector, spec §4.3).
//
// Complexity: O(d_dst + d_src) where d_x is x's out-degree.
func (b *Builder) EdgeTransition(g *csrgraph.Graph, edge uint32, returnWeight, exploreWeight, changeNodeTypeWeight, changeEdgeTypeWeight float64) (transition []float64, destinations []uint32, start, end uint32) {
	src, dst := g.EdgeEndpoints(edge)
	transition, destinations, start, end = b.NodeTransition(g, dst, changeNodeTypeWeight)

	if changeEdgeTypeWeight != 1 && g.HasEdgeTypes() {
		arrivingType, _ := g.EdgeType(edge)
		for e := start; e < end; e++ {
			if et, ok := g.EdgeType(e); ok && et == arrivingType {
				transition[e-start] /= changeEdgeTypeWeight
			}
		}
	}

	previousDestinations := g.Neighbors(src)
	ApplyReturnExplore(transition, destinations, previousDestinations, returnWeight, exploreWeight, src, dst)

	return transition, destinations, start, end
}
