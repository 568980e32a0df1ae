// Package n2vcore implements a second-order biased random walk engine
// over immutable, CSR-backed graphs, in the node2vec family: each walk
// step samples its next node from a transition vector shaped by four
// scalar biases (return, explore, change-node-type, change-edge-type),
// with the O(d_dst + d_src) merge-walk of transition/intersect.go
// keeping the hot path linear in out-degree rather than quadratic.
//
// Subpackages:
//
//	core/       — mutable staging graph: intern vertices, accumulate
//	              edges, then freeze into a csrgraph.Graph
//	csrgraph/   — the immutable CSR graph store: parallel
//	              source/destination/weight arrays plus O(1) neighbor
//	              range and trap-node/trap-edge queries
//	transition/ — first- and second-order transition vector assembly,
//	              including the Neighbor Intersector bias application
//	sampler/    — single-pass weighted sampling from a transition vector
//	walk/       — the single-walk state machine and the parallel walk
//	              driver that dispatches iterations*N walks across a
//	              fixed worker pool
//	fixtures/   — small deterministic graphs (triangles, chains, stars,
//	              disjoint components, Erdos-Renyi) for tests and demos
//	reachable/  — breadth-first reachability over a csrgraph.Graph
//	statdist/   — first-order stationary-distribution estimation, used
//	              to sanity-check a walk corpus's visitation frequencies
//	corpus/     — line-oriented walk corpus writer
//	n2verr/     — sentinel errors shared across every package above
//	cmd/n2vwalk — CLI: edge list in, walk corpus out
//
// See SPEC_FULL.md for the full contract each component implements.
package n2vcore
