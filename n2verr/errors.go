// Package n2verr collects the sentinel errors shared across n2vcore's
// packages (staging graph, CSR builder, transition math, and the walk
// driver) so callers can branch with errors.Is regardless of which layer
// raised the error.
//
// Error policy:
//   - Only sentinel variables are exported; callers MUST use errors.Is.
//   - Sentinels are never wrapped with formatted text at definition site.
//   - Call sites attach operation context with Wrap, which preserves the
//     sentinel for errors.Is while prefixing a human-readable location.
package n2verr

import (
	"errors"
	"fmt"
)

// Construction errors: raised while staging or freezing a graph. A
// construction error is fatal at build time and never observable once a
// Graph exists (spec: validation happens once, at the boundary).
var (
	// ErrLengthMismatch indicates two parallel arrays that must share a
	// length (sources/destinations/weights/edge types, or node names/types)
	// do not.
	ErrLengthMismatch = errors.New("n2vcore: parallel array length mismatch")

	// ErrUnsortedSources indicates the sources array is not non-decreasing.
	ErrUnsortedSources = errors.New("n2vcore: sources array is not non-decreasing")

	// ErrUnsortedDestinations indicates a source's destination slice is not
	// strictly increasing (duplicate or out-of-order edge within a group).
	ErrUnsortedDestinations = errors.New("n2vcore: destinations not strictly increasing within a source group")

	// ErrBadWeight indicates a non-finite or non-positive edge weight.
	ErrBadWeight = errors.New("n2vcore: edge weight must be finite and > 0")

	// ErrUnknownNodeType indicates a node type id with no entry in the type
	// mapping.
	ErrUnknownNodeType = errors.New("n2vcore: unknown node type id")

	// ErrUnknownEdgeType indicates an edge type id with no entry in the type
	// mapping.
	ErrUnknownEdgeType = errors.New("n2vcore: unknown edge type id")

	// ErrEmptyNodeName indicates an attempt to stage a vertex with an empty
	// name.
	ErrEmptyNodeName = errors.New("n2vcore: node name is empty")

	// ErrDuplicateNodeName indicates two vertices were staged under the
	// same name.
	ErrDuplicateNodeName = errors.New("n2vcore: duplicate node name")

	// ErrNodeNotFound indicates a reference to a node id or name outside the
	// graph.
	ErrNodeNotFound = errors.New("n2vcore: node not found")

	// ErrNoNodes indicates an attempt to freeze a graph with zero staged
	// vertices.
	ErrNoNodes = errors.New("n2vcore: graph has no nodes")
)

// Parameter errors: raised by the walk driver's validation layer before
// dispatch. A parameter error never surfaces mid-walk.
var (
	// ErrBadBias indicates a bias (return/explore/change-node-type/
	// change-edge-type weight) that is not finite and > 0.
	ErrBadBias = errors.New("n2vcore: bias parameter must be finite and > 0")

	// ErrBadLength indicates a requested walk length < 1.
	ErrBadLength = errors.New("n2vcore: walk length must be >= 1")

	// ErrBadIterations indicates a requested iteration count < 1.
	ErrBadIterations = errors.New("n2vcore: iterations must be >= 1")

	// ErrBadMinLength indicates min_length outside [0, length].
	ErrBadMinLength = errors.New("n2vcore: min_length must be between 0 and length")

	// ErrBadWorkers indicates a negative worker count (0 is legal and means
	// "auto-detect").
	ErrBadWorkers = errors.New("n2vcore: workers must be >= 0")
)

// Execution errors.
var (
	// ErrInterrupted indicates the cooperative cancellation flag fired
	// while the driver was still dispatching walks.
	ErrInterrupted = errors.New("n2vcore: walk dispatch interrupted")
)

// Wrap prefixes err with an "op: " context while preserving it for
// errors.Is/errors.As. Wrap(op, nil) returns nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
