package csrgraph

// Graph is the compressed-sparse-row adjacency store described in spec
// §3: sources/destinations are edge-aligned, outbounds is node-aligned
// cumulative end-of-range. Every field is write-once, set by Build/
// FromStaging and never touched again.
type Graph struct {
	sources      []uint32 // edge id -> source node id, non-decreasing
	destinations []uint32 // edge id -> destination node id
	outbounds    []uint32 // node id -> exclusive end of its edge range

	weights []float64 // edge id -> weight; nil means uniform 1.0

	nodeTypes           []uint16 // node id -> type id; nil means untyped
	nodeTypesMapping    map[string]uint16
	nodeTypesReverse    []string
	edgeTypes           []uint16 // edge id -> type id; nil means untyped
	edgeTypesMapping    map[string]uint16
	edgeTypesReverse    []string

	nodesMapping        map[string]uint32 // name -> id; nil means unnamed
	nodesReverseMapping []string          // id -> name

	// uniqueEdges packs (src,dst) as src<<32|dst for O(1) ContainsEdge.
	uniqueEdges map[uint64]uint32

	directed bool
	name     string
}

// edgeKey packs a directed (src,dst) pair into a single map key.
func edgeKey(src, dst uint32) uint64 {
	return uint64(src)<<32 | uint64(dst)
}

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.outbounds) }

// E returns the number of directed edges.
func (g *Graph) E() int { return len(g.sources) }

// Directed reports whether the source topology was directed before
// materialization (an undirected source graph still produces two
// directed edges per pair; this flag records original intent only).
func (g *Graph) Directed() bool { return g.directed }

// Name returns the graph's descriptive name, or "" if none was set.
func (g *Graph) Name() string { return g.name }

// HasWeights reports whether per-edge weights are present.
func (g *Graph) HasWeights() bool { return g.weights != nil }

// HasNodeTypes reports whether per-node types are present.
func (g *Graph) HasNodeTypes() bool { return g.nodeTypes != nil }

// HasEdgeTypes reports whether per-edge types are present.
func (g *Graph) HasEdgeTypes() bool { return g.edgeTypes != nil }

// HasNames reports whether a node name table is present.
func (g *Graph) HasNames() bool { return g.nodesMapping != nil }
