// Package reachable implements a breadth-first reachability check over
// an immutable csrgraph.Graph, adapted from the teacher's BFS over
// core.Graph: the same queue-and-visited-set walk, reworked for dense
// uint32 node ids and a read-only neighbor store instead of named
// vertices and hook callbacks.
package reachable

import (
	"context"

	"github.com/graphwalk/n2vcore/csrgraph"
)

// From returns the set of nodes reachable from start by following
// outgoing edges, start included. ctx is checked once per dequeue; a
// cancelled ctx returns whatever had been discovered so far along with
// ctx.Err(). A nil ctx is treated as context.Background().
// Complexity: O(V + E) in the worst case.
func From(ctx context.Context, g *csrgraph.Graph, start uint32) (map[uint32]bool, error) {
	visited := map[uint32]bool{start: true}
	queue := []uint32{start}

	for len(queue) > 0 {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return visited, ctx.Err()
			default:
			}
		}

		n := queue[0]
		queue = queue[1:]

		for _, d := range g.Neighbors(n) {
			if !visited[d] {
				visited[d] = true
				queue = append(queue, d)
			}
		}
	}

	return visited, nil
}

// SameComponent reports whether b is reachable from a by following
// outgoing edges.
func SameComponent(g *csrgraph.Graph, a, b uint32) bool {
	visited, _ := From(context.Background(), g, a)

	return visited[b]
}
