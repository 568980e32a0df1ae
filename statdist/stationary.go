package statdist

import (
	"errors"

	"github.com/graphwalk/n2vcore/csrgraph"
)

// ErrTrapNode indicates the transition matrix cannot be built because a
// node has no outgoing edges; a first-order stationary distribution is
// undefined on a graph with absorbing states.
var ErrTrapNode = errors.New("statdist: graph has a trap node")

// TransitionMatrix builds the row-stochastic first-order transition
// matrix for g: entry (i,j) is the probability of stepping from i to j
// given only i's out-edges (weights, or uniform if g carries none). It
// ignores node2vec's second-order biases by design — it is the baseline
// distribution scenario S6 compares the biased walk's divergence
// against, not a model of the biased walk itself.
// Complexity: O(N^2 + E) (the matrix is dense).
func TransitionMatrix(g *csrgraph.Graph) (*Dense, error) {
	n := g.N()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		node := uint32(i)
		start, end := g.NeighborRange(node)
		if start == end {
			return nil, ErrTrapNode
		}

		total := 0.0
		for e := start; e < end; e++ {
			total += g.Weight(e)
		}
		for e := start; e < end; e++ {
			dst := g.Neighbors(node)[e-start]
			if err := m.Set(i, int(dst), g.Weight(e)/total); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// StationaryDistribution estimates the stationary distribution of
// TransitionMatrix(g) via power iteration from a uniform start vector,
// normalizing after every step to guard against drift.
// Complexity: O(iterations * N^2).
func StationaryDistribution(g *csrgraph.Graph, iterations int) ([]float64, error) {
	m, err := TransitionMatrix(g)
	if err != nil {
		return nil, err
	}

	n := m.Rows()
	pi := make([]float64, n)
	for i := range pi {
		pi[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < iterations; iter++ {
		for j := range next {
			next[j] = 0
		}
		for i := 0; i < n; i++ {
			if pi[i] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				p, err := m.At(i, j)
				if err != nil {
					return nil, err
				}
				next[j] += pi[i] * p
			}
		}

		sum := 0.0
		for _, v := range next {
			sum += v
		}
		if sum > 0 {
			for j := range next {
				next[j] /= sum
			}
		}

		pi, next = next, pi
	}

	return pi, nil
}

// EmpiricalVisitFrequency counts how often each of n nodes appears
// across walks and returns the normalized frequency vector.
// Complexity: O(total walk length).
func EmpiricalVisitFrequency(walks [][]uint32, n int) []float64 {
	freq := make([]float64, n)
	total := 0.0
	for _, w := range walks {
		for _, node := range w {
			freq[node]++
			total++
		}
	}
	if total == 0 {
		return freq
	}
	for i := range freq {
		freq[i] /= total
	}

	return freq
}
