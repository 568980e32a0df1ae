// builder.go implements the Graph Store's construction algorithm (spec
// §4.2) and the invariant validation it depends on (spec §3, §7
// Construction errors). Build is the primary external-construction
// contract of spec §6: parallel arrays, pre-sorted by source and then by
// destination within each source's group.
package csrgraph

import (
	"math"

	"github.com/graphwalk/n2vcore/n2verr"
)

// BuildOption configures optional metadata attached during Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	directed            bool
	name                string
	nodeNames           []string
	nodeTypes           []uint16
	nodeTypesReverse    []string
	edgeTypes           []uint16
	edgeTypesReverse    []string
}

// WithDirected records whether the source topology was directed. It does
// not change how edges are stored (the caller already materialized both
// directions for an undirected graph); it is descriptive metadata only.
func WithDirected(directed bool) BuildOption {
	return func(c *buildConfig) { c.directed = directed }
}

// WithName attaches a descriptive name to the built Graph.
func WithName(name string) BuildOption {
	return func(c *buildConfig) { c.name = name }
}

// WithNodeNames supplies a node id -> external name table of length
// numNodes, enabling NodeName/NodeID lookups.
func WithNodeNames(names []string) BuildOption {
	return func(c *buildConfig) { c.nodeNames = names }
}

// WithNodeTypes supplies a node id -> type id vector of length numNodes
// plus the type id -> name table it indexes into.
func WithNodeTypes(types []uint16, reverse []string) BuildOption {
	return func(c *buildConfig) {
		c.nodeTypes = types
		c.nodeTypesReverse = reverse
	}
}

// WithEdgeTypes supplies an edge id -> type id vector of length E plus
// the type id -> name table it indexes into.
func WithEdgeTypes(types []uint16, reverse []string) BuildOption {
	return func(c *buildConfig) {
		c.edgeTypes = types
		c.edgeTypesReverse = reverse
	}
}

// Build constructs an immutable Graph from parallel arrays already sorted
// by source and, within each source group, strictly increasing by
// destination (spec §3, §6). weights may be nil (uniform 1.0 edges).
// numNodes fixes N; every source/destination must be < numNodes.
//
// Complexity: O(E) time, O(N + E) space.
func Build(numNodes uint32, sources, destinations []uint32, weights []float64, opts ...BuildOption) (*Graph, error) {
	cfg := &buildConfig{directed: true}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateParallelLengths(sources, destinations, weights, cfg); err != nil {
		return nil, n2verr.Wrap("csrgraph.Build", err)
	}
	if err := validateSorted(sources, destinations); err != nil {
		return nil, n2verr.Wrap("csrgraph.Build", err)
	}
	if err := validateWeights(weights); err != nil {
		return nil, n2verr.Wrap("csrgraph.Build", err)
	}
	if err := validateBounds(numNodes, sources, destinations); err != nil {
		return nil, n2verr.Wrap("csrgraph.Build", err)
	}
	if err := validateTypes(numNodes, uint32(len(sources)), cfg); err != nil {
		return nil, n2verr.Wrap("csrgraph.Build", err)
	}

	g := &Graph{
		sources:      append([]uint32(nil), sources...),
		destinations: append([]uint32(nil), destinations...),
		outbounds:    computeOutbounds(numNodes, sources),
		directed:     cfg.directed,
		name:         cfg.name,
	}
	if weights != nil {
		g.weights = append([]float64(nil), weights...)
	}
	if cfg.nodeTypes != nil {
		g.nodeTypes = append([]uint16(nil), cfg.nodeTypes...)
		g.nodeTypesReverse = append([]string(nil), cfg.nodeTypesReverse...)
		g.nodeTypesMapping = reverseIndex(cfg.nodeTypesReverse)
	}
	if cfg.edgeTypes != nil {
		g.edgeTypes = append([]uint16(nil), cfg.edgeTypes...)
		g.edgeTypesReverse = append([]string(nil), cfg.edgeTypesReverse...)
		g.edgeTypesMapping = reverseIndex(cfg.edgeTypesReverse)
	}
	if cfg.nodeNames != nil {
		g.nodesReverseMapping = append([]string(nil), cfg.nodeNames...)
		g.nodesMapping = make(map[string]uint32, len(cfg.nodeNames))
		for id, name := range cfg.nodeNames {
			g.nodesMapping[name] = uint32(id)
		}
	}
	g.uniqueEdges = make(map[uint64]uint32, len(sources))
	for i, s := range sources {
		g.uniqueEdges[edgeKey(s, destinations[i])] = uint32(i)
	}

	return g, nil
}

// computeOutbounds implements the single-pass algorithm of spec §4.2:
// initialize every slot to E, then on each transition to a strictly
// larger source, backfill the skipped range (traps included) with the
// current edge index.
func computeOutbounds(numNodes uint32, sources []uint32) []uint32 {
	outbounds := make([]uint32, numNodes)
	e := uint32(len(sources))
	for i := range outbounds {
		outbounds[i] = e
	}

	var lastSrc uint32
	for i, src := range sources {
		if src > lastSrc {
			for n := lastSrc; n < src; n++ {
				outbounds[n] = uint32(i)
			}
			lastSrc = src
		}
	}

	return outbounds
}

func reverseIndex(names []string) map[string]uint16 {
	m := make(map[string]uint16, len(names))
	for id, name := range names {
		m[name] = uint16(id)
	}

	return m
}

func validateParallelLengths(sources, destinations []uint32, weights []float64, cfg *buildConfig) error {
	if len(sources) != len(destinations) {
		return n2verr.ErrLengthMismatch
	}
	if weights != nil && len(weights) != len(sources) {
		return n2verr.ErrLengthMismatch
	}
	if cfg.edgeTypes != nil && len(cfg.edgeTypes) != len(sources) {
		return n2verr.ErrLengthMismatch
	}

	return nil
}

func validateSorted(sources, destinations []uint32) error {
	var lastSrc uint32
	groupStart := 0
	for i, src := range sources {
		if src < lastSrc {
			return n2verr.ErrUnsortedSources
		}
		if src > lastSrc {
			lastSrc = src
			groupStart = i
		}
		if i > groupStart && destinations[i] <= destinations[i-1] {
			return n2verr.ErrUnsortedDestinations
		}
	}

	return nil
}

func validateWeights(weights []float64) error {
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return n2verr.ErrBadWeight
		}
	}

	return nil
}

func validateBounds(numNodes uint32, sources, destinations []uint32) error {
	for i := range sources {
		if sources[i] >= numNodes || destinations[i] >= numNodes {
			return n2verr.ErrNodeNotFound
		}
	}

	return nil
}

func validateTypes(numNodes, numEdges uint32, cfg *buildConfig) error {
	for _, t := range cfg.nodeTypes {
		if int(t) >= len(cfg.nodeTypesReverse) {
			return n2verr.ErrUnknownNodeType
		}
	}
	if cfg.nodeTypes != nil && uint32(len(cfg.nodeTypes)) != numNodes {
		return n2verr.ErrLengthMismatch
	}
	for _, t := range cfg.edgeTypes {
		if int(t) >= len(cfg.edgeTypesReverse) {
			return n2verr.ErrUnknownEdgeType
		}
	}
	if cfg.edgeTypes != nil && uint32(len(cfg.edgeTypes)) != numEdges {
		return n2verr.ErrLengthMismatch
	}
	if cfg.nodeNames != nil && uint32(len(cfg.nodeNames)) != numNodes {
		return n2verr.ErrLengthMismatch
	}

	return nil
}
