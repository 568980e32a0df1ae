// staging.go bridges the mutable core.Graph accumulator to Build: it
// sorts staged edges into the (source, then destination) order Build
// requires, resolves string node/edge types into dense id vectors, and
// deduplicates parallel edges that would otherwise violate the "strictly
// increasing destinations per source" invariant (spec §3).
package csrgraph

import (
	"sort"

	"github.com/graphwalk/n2vcore/core"
	"github.com/graphwalk/n2vcore/n2verr"
)

// FromStaging sorts and freezes staged into an immutable Graph. Parallel
// edges staged between the same (from, to) pair are collapsed into one,
// keeping the first-seen weight/type — callers that need multi-edge
// semantics must deduplicate before staging (spec §3: destinations are
// strictly increasing, i.e. simple graph, by construction).
//
// Complexity: O(E log E) for the sort, O(N + E) thereafter.
func FromStaging(staged *core.Graph) (*Graph, error) {
	names, nodeTypeNames, edges, directed, weighted, name := staged.Snapshot()
	if len(names) == 0 {
		return nil, n2verr.Wrap("csrgraph.FromStaging", n2verr.ErrNoNodes)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})
	edges = dedupeConsecutive(edges)

	numNodes := uint32(len(names))
	sources := make([]uint32, len(edges))
	destinations := make([]uint32, len(edges))
	var weights []float64
	if weighted {
		weights = make([]float64, len(edges))
	}

	edgeTypeIDs, edgeTypeReverse := internTypes(collectEdgeTypes(edges))
	var edgeTypes []uint16
	if edgeTypeReverse != nil {
		edgeTypes = make([]uint16, len(edges))
	}

	for i, e := range edges {
		sources[i] = e.From
		destinations[i] = e.To
		if weighted {
			weights[i] = e.Weight
		}
		if edgeTypes != nil {
			edgeTypes[i] = edgeTypeIDs[e.EdgeType]
		}
	}

	nodeTypeIDs, nodeTypeReverse := internTypes(nodeTypeNames)
	var nodeTypes []uint16
	if nodeTypeReverse != nil {
		nodeTypes = make([]uint16, numNodes)
		for i, t := range nodeTypeNames {
			nodeTypes[i] = nodeTypeIDs[t]
		}
	}

	opts := []BuildOption{WithDirected(directed), WithName(name), WithNodeNames(names)}
	if nodeTypes != nil {
		opts = append(opts, WithNodeTypes(nodeTypes, nodeTypeReverse))
	}
	if edgeTypes != nil {
		opts = append(opts, WithEdgeTypes(edgeTypes, edgeTypeReverse))
	}

	return Build(numNodes, sources, destinations, weights, opts...)
}

// dedupeConsecutive drops repeated (From,To) pairs, keeping the first
// occurrence. edges must already be sorted by (From,To).
func dedupeConsecutive(edges []core.StagedEdge) []core.StagedEdge {
	if len(edges) == 0 {
		return edges
	}
	out := edges[:1]
	for _, e := range edges[1:] {
		last := out[len(out)-1]
		if e.From == last.From && e.To == last.To {
			continue
		}
		out = append(out, e)
	}

	return out
}

func collectEdgeTypes(edges []core.StagedEdge) []string {
	typed := false
	for _, e := range edges {
		if e.EdgeType != "" {
			typed = true

			break
		}
	}
	if !typed {
		return nil
	}
	types := make([]string, len(edges))
	for i, e := range edges {
		types[i] = e.EdgeType
	}

	return types
}

// internTypes assigns dense ids to the distinct labels in labels, in
// first-seen order. Once any label is non-empty, the empty label (an
// untyped entry) also gets its own id. Returns (nil, nil) if labels is
// nil or every label is empty (untyped).
func internTypes(labels []string) (map[string]uint16, []string) {
	if labels == nil {
		return nil, nil
	}

	typed := false
	for _, l := range labels {
		if l != "" {
			typed = true

			break
		}
	}
	if !typed {
		return nil, nil
	}

	ids := make(map[string]uint16)
	var reverse []string
	for _, l := range labels {
		if _, ok := ids[l]; !ok {
			ids[l] = uint16(len(reverse))
			reverse = append(reverse, l)
		}
	}

	return ids, reverse
}
