package fixtures

import (
	"github.com/graphwalk/n2vcore/core"
	"github.com/graphwalk/n2vcore/csrgraph"
	"github.com/graphwalk/n2vcore/n2verr"
)

// Constructor applies a deterministic mutation to a staging graph. It
// must validate its own parameters and return sentinel errors; it must
// never panic.
type Constructor func(g *core.Graph, cfg *config) error

// Build stages a new core.Graph with gopts, resolves fopts into a
// config, applies every constructor in order, and freezes the result
// into an immutable csrgraph.Graph. Constructor errors abort the build
// immediately; no partial graph is returned.
func Build(gopts []core.GraphOption, fopts []Option, cons ...Constructor) (*csrgraph.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(fopts...)

	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, n2verr.Wrap("fixtures.Build", err)
		}
	}

	return csrgraph.FromStaging(g)
}

// BuildDirected is Build with core.WithDirected(true) prepended: every
// topology in this package (Chain's trap at the tail, Star's single
// back edge, SingleEdge's trap) assumes AddEdge stages exactly the
// edges it's given rather than mirroring each into both directions, so
// callers that need those traps should use this entry point instead of
// Build with an undirected core.Graph.
func BuildDirected(fopts []Option, cons ...Constructor) (*csrgraph.Graph, error) {
	return Build([]core.GraphOption{core.WithDirected(true)}, fopts, cons...)
}
