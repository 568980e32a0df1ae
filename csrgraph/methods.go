// methods.go implements the read-only Graph Store operations of spec
// §4.2: neighbor range lookup, trap detection, and edge/node metadata
// accessors. Every method here is O(1) or O(log d)/O(d) in the size of
// one node's neighbor list — never O(N) or O(E) — since these run inside
// the walk hot path.
package csrgraph

// start returns the inclusive start of node n's edge range.
func (g *Graph) start(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	return g.outbounds[n-1]
}

// NeighborRange returns [start, end) into destinations (and weights/
// edgeTypes) for node n's outgoing edges.
// Complexity: O(1).
func (g *Graph) NeighborRange(n uint32) (start, end uint32) {
	return g.start(n), g.outbounds[n]
}

// Neighbors returns node n's destination slice. The returned slice aliases
// internal storage and must not be modified by the caller.
// Complexity: O(1).
func (g *Graph) Neighbors(n uint32) []uint32 {
	s, e := g.NeighborRange(n)

	return g.destinations[s:e]
}

// EdgeEndpoints returns the (src, dst) pair for edge id e.
// Complexity: O(1).
func (g *Graph) EdgeEndpoints(e uint32) (src, dst uint32) {
	return g.sources[e], g.destinations[e]
}

// IsNodeTrap reports whether n has no outgoing edges.
// Complexity: O(1).
func (g *Graph) IsNodeTrap(n uint32) bool {
	s, e := g.NeighborRange(n)

	return s == e
}

// IsEdgeTrap reports whether e's destination is a trap node.
// Complexity: O(1).
func (g *Graph) IsEdgeTrap(e uint32) bool {
	return g.IsNodeTrap(g.destinations[e])
}

// ContainsEdge reports whether the directed edge src->dst exists.
// Complexity: O(1) expected (map lookup).
func (g *Graph) ContainsEdge(src, dst uint32) bool {
	_, ok := g.uniqueEdges[edgeKey(src, dst)]

	return ok
}

// EdgeID returns the edge id for src->dst and whether it exists.
// Complexity: O(1) expected.
func (g *Graph) EdgeID(src, dst uint32) (uint32, bool) {
	id, ok := g.uniqueEdges[edgeKey(src, dst)]

	return id, ok
}

// Weight returns edge e's weight, or 1.0 if the graph carries no weights.
// Complexity: O(1).
func (g *Graph) Weight(e uint32) float64 {
	if g.weights == nil {
		return 1.0
	}

	return g.weights[e]
}

// NodeType returns node n's type id and whether node types are present.
// Complexity: O(1).
func (g *Graph) NodeType(n uint32) (uint16, bool) {
	if g.nodeTypes == nil {
		return 0, false
	}

	return g.nodeTypes[n], true
}

// EdgeType returns edge e's type id and whether edge types are present.
// Complexity: O(1).
func (g *Graph) EdgeType(e uint32) (uint16, bool) {
	if g.edgeTypes == nil {
		return 0, false
	}

	return g.edgeTypes[e], true
}

// NodeTypeName resolves a node type id back to its external name.
func (g *Graph) NodeTypeName(id uint16) (string, bool) {
	if int(id) >= len(g.nodeTypesReverse) {
		return "", false
	}

	return g.nodeTypesReverse[id], true
}

// EdgeTypeName resolves an edge type id back to its external name.
func (g *Graph) EdgeTypeName(id uint16) (string, bool) {
	if int(id) >= len(g.edgeTypesReverse) {
		return "", false
	}

	return g.edgeTypesReverse[id], true
}

// NodeName resolves a node id to its external name, or "" if the graph
// carries no name table.
// Complexity: O(1).
func (g *Graph) NodeName(n uint32) string {
	if g.nodesReverseMapping == nil || int(n) >= len(g.nodesReverseMapping) {
		return ""
	}

	return g.nodesReverseMapping[n]
}

// NodeID resolves an external name to a node id.
// Complexity: O(1) expected.
func (g *Graph) NodeID(name string) (uint32, bool) {
	id, ok := g.nodesMapping[name]

	return id, ok
}
