// stage.go implements vertex interning and edge accumulation for the
// staging Graph. AddVertex/AddEdge are idempotent on names (re-adding an
// existing vertex name is a no-op returning its id) so callers streaming
// an edge list don't need a separate "have I seen this node" pass.
package core

import (
	"github.com/graphwalk/n2vcore/n2verr"
)

// AddVertex interns name, returning its node id. Calling AddVertex twice
// with the same name returns the same id; it is not an error to re-add a
// name already staged by an edge endpoint.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (uint32, error) {
	if name == "" {
		return 0, n2verr.Wrap("core.AddVertex", n2verr.ErrEmptyNodeName)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.internLocked(name), nil
}

// internLocked returns name's id, assigning a new one if unseen. Caller
// must hold mu.
func (g *Graph) internLocked(name string) uint32 {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := uint32(len(g.names))
	g.names = append(g.names, name)
	g.nodeTypes = append(g.nodeTypes, "")
	g.ids[name] = id

	return id
}

// AddEdge stages an edge from -> to with the given weight (ignored unless
// the Graph was built WithWeights) and optional edgeType ("" means
// untyped). Both endpoints are interned if new. If the Graph is
// undirected (WithDirected(false)), this also stages the reverse edge
// to -> from with the same weight and type.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, edgeType string) error {
	if from == "" || to == "" {
		return n2verr.Wrap("core.AddEdge", n2verr.ErrEmptyNodeName)
	}
	if g.weighted && weight <= 0 {
		return n2verr.Wrap("core.AddEdge", n2verr.ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fromID := g.internLocked(from)
	toID := g.internLocked(to)
	g.edges = append(g.edges, stagedEdge{from: fromID, to: toID, weight: weight, edgeType: edgeType})
	if !g.directed {
		g.edges = append(g.edges, stagedEdge{from: toID, to: fromID, weight: weight, edgeType: edgeType})
	}

	return nil
}

// SetNodeType tags name with a type label, interning name if new.
// Complexity: O(1) amortized.
func (g *Graph) SetNodeType(name, nodeType string) error {
	if name == "" {
		return n2verr.Wrap("core.SetNodeType", n2verr.ErrEmptyNodeName)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.internLocked(name)
	g.nodeTypes[id] = nodeType

	return nil
}

// NodeCount returns the number of distinct vertices staged so far.
func (g *Graph) NodeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.names)
}

// EdgeCount returns the number of directed edges staged so far (an
// undirected AddEdge call counts as two).
func (g *Graph) EdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.edges)
}

// Directed reports the construction-time directedness flag.
func (g *Graph) Directed() bool {
	return g.directed
}
