package fixtures

import (
	"strconv"

	"github.com/graphwalk/n2vcore/core"
)

const minTopologyNodes = 2

// Triangle builds the 3-cycle 0->1->2->0 plus its reverse edges
// (0->2, 2->1, 1->0), matching the spec's scenario S1: every node has
// out-degree 2 and no traps.
func Triangle() Constructor {
	return func(g *core.Graph, cfg *config) error {
		ids := []string{"0", "1", "2"}
		edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 2}, {2, 1}, {1, 0}}

		return addEdges(g, cfg, ids, edges)
	}
}

// Chain builds a directed path 0->1->...->(n-1); the last node is a
// trap. Matches scenario S2.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < minTopologyNodes {
			return ErrTooFewVertices
		}

		ids := sequentialIDs(n)
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{i - 1, i})
		}

		return addEdges(g, cfg, ids, edges)
	}
}

// Star builds a hub ("0") with n-1 leaves ("1".."n-1"), hub->leaf for
// every leaf, plus a single leaf->hub back edge from leaf 1. Matches
// scenario S3: only one leaf can walk back to the hub and return to
// itself, so return-bias suppression is observable on that one path.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < minTopologyNodes {
			return ErrTooFewVertices
		}

		ids := sequentialIDs(n)
		edges := make([][2]int, 0, n)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}
		edges = append(edges, [2]int{1, 0})

		return addEdges(g, cfg, ids, edges)
	}
}

// TwoTriangles builds two vertex-disjoint triangles ({0,1,2} and
// {3,4,5}) with no edges between them. Matches scenario S4: any walk
// started in one component must stay inside it.
func TwoTriangles() Constructor {
	return func(g *core.Graph, cfg *config) error {
		ids := sequentialIDs(6)
		edges := [][2]int{
			{0, 1}, {1, 2}, {2, 0}, {0, 2}, {2, 1}, {1, 0},
			{3, 4}, {4, 5}, {5, 3}, {3, 5}, {5, 4}, {4, 3},
		}

		return addEdges(g, cfg, ids, edges)
	}
}

// SingleEdge builds the two-node graph 0->1 with no reverse edge: node
// 1 is a trap. Matches scenario S5.
func SingleEdge() Constructor {
	return func(g *core.Graph, cfg *config) error {
		return addEdges(g, cfg, sequentialIDs(2), [][2]int{{0, 1}})
	}
}

// RandomSparse builds an Erdős–Rényi-like directed graph over n
// vertices: each ordered pair (i,j), i != j, is an edge independently
// with probability p. Requires WithSeed; stable trial order (i asc,
// then j asc) keeps the result deterministic for a fixed seed.
// Matches scenario S6.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < minTopologyNodes {
			return ErrTooFewVertices
		}
		if p < 0 || p > 1 {
			return ErrInvalidProbability
		}
		if cfg.rng == nil {
			return ErrNeedRandSource
		}

		ids := sequentialIDs(n)
		for _, id := range ids {
			if _, err := g.AddVertex(id); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					w := cfg.weightFn(cfg.rng)
					if err := g.AddEdge(ids[i], ids[j], w, ""); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func sequentialIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}

	return ids
}

func addEdges(g *core.Graph, cfg *config, ids []string, edges [][2]int) error {
	for _, id := range ids {
		if _, err := g.AddVertex(id); err != nil {
			return err
		}
	}
	for _, e := range edges {
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(ids[e[0]], ids[e[1]], w, ""); err != nil {
			return err
		}
	}

	return nil
}
