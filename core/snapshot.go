package core

// StagedEdge is the exported, read-only view of one accumulated edge,
// returned by Snapshot for csrgraph.FromStaging to sort and freeze.
type StagedEdge struct {
	From, To uint32
	Weight   float64
	EdgeType string
}

// Snapshot returns a consistent point-in-time copy of everything staged
// so far: node names (index == node id), per-node type labels, edges, and
// the construction flags. The caller owns the returned slices.
// Complexity: O(N + E).
func (g *Graph) Snapshot() (names []string, nodeTypes []string, edges []StagedEdge, directed, weighted bool, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	names = append([]string(nil), g.names...)
	nodeTypes = append([]string(nil), g.nodeTypes...)
	edges = make([]StagedEdge, len(g.edges))
	for i, e := range g.edges {
		edges[i] = StagedEdge{From: e.from, To: e.to, Weight: e.weight, EdgeType: e.edgeType}
	}

	return names, nodeTypes, edges, g.directed, g.weighted, g.name
}
