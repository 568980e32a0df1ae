// Package core is the mutable front door to n2vcore: a small,
// thread-safe, append-only staging graph that interns vertex names and
// accumulates edges in whatever order a caller (a text-format loader, a
// synthetic generator, a test) produces them.
//
// It deliberately does not implement neighbor queries, traversal, or any
// of the biased-walk machinery — those live in csrgraph, transition, and
// walk once the staged data is sorted and frozen. Keeping construction
// and the walk hot path in separate packages means the hot path never
// pays for a mutex it doesn't need.
package core
