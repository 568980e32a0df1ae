// Package transition assembles the first- and second-order transition
// weight vectors the walk engine samples from at every step (spec
// §4.3-4.4): node_transition for the first step of a walk, edge_transition
// for every step after. edge_transition delegates to a single merge-walk
// over two sorted neighbor lists (the Neighbor Intersector, spec §4.3) to
// apply the return and explore biases in one pass — the permitted
// optimization spec §4.4.2 calls out explicitly; node_transition applies
// only edge weights and the change-node-type bias.
//
// Builder holds one reusable scratch buffer so that repeated
// calls across a walk's many steps do not allocate on every step; see
// tsp.bbEngine in the retrieval pack for the same "engine struct holds its
// own dense working buffers" shape this mirrors.
package transition
