// Package csrgraph is n2vcore's immutable, compressed-sparse-row graph
// store: the hard core's Graph Store (spec §4.2). Once built, a Graph
// never mutates; it is shared by reference, read-only, across every walk
// worker goroutine, so no locking is needed on the hot path — only
// plain slice indexing.
//
// A Graph is produced in one of two ways: Build, which takes pre-sorted
// parallel arrays directly (the spec's primary external-construction
// contract, §6), or FromStaging, which sorts and freezes a core.Graph
// accumulated in arbitrary order. Both paths enforce the same invariants
// (§3) and fail construction, never walk execution, on violation (§7).
package csrgraph
