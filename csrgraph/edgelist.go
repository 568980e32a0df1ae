// edgelist.go implements FromEdgeList (spec §1 out-of-scope note,
// SPEC_FULL §4.8): a convenience reader over the common whitespace-
// separated "src dst [weight]" text format, built on top of the
// staging Graph accumulator rather than duplicating Build's
// validation. Parsing text input is explicitly outside the hard core;
// this exists purely as a thin, optional on-ramp to it.
package csrgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphwalk/n2vcore/core"
	"github.com/graphwalk/n2vcore/n2verr"
)

// LoadOption configures FromEdgeList.
type LoadOption func(*loadConfig)

type loadConfig struct {
	undirected bool
	weighted   bool
}

// WithUndirectedInput tells FromEdgeList the input names an undirected
// graph: each parsed edge also materializes its reverse.
func WithUndirectedInput() LoadOption {
	return func(c *loadConfig) { c.undirected = true }
}

// WithWeightedInput tells FromEdgeList to parse and carry a third
// weight column; without it, a weight column present in the input is
// ignored (not parsed) and every edge gets weight 1.0.
func WithWeightedInput() LoadOption {
	return func(c *loadConfig) { c.weighted = true }
}

// FromEdgeList reads "src dst [weight]" lines from r, one edge per
// line, whitespace-separated, '#'-prefixed lines and blank lines
// skipped, and builds an immutable Graph from them. Node names are
// interned in first-seen order; the resulting Graph carries a node
// name table (NodeName/NodeID are usable).
//
// Complexity: O(E) to parse and stage, O(E log E) to sort and freeze
// (see FromStaging).
func FromEdgeList(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	gopts := []core.GraphOption{core.WithDirected(!cfg.undirected)}
	if cfg.weighted {
		gopts = append(gopts, core.WithWeights())
	}
	staged := core.NewGraph(gopts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, n2verr.Wrap("csrgraph.FromEdgeList", fmt.Errorf("line %d: %w", lineNo, n2verr.ErrLengthMismatch))
		}

		weight := 1.0
		if cfg.weighted && len(fields) >= 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, n2verr.Wrap("csrgraph.FromEdgeList", fmt.Errorf("line %d: %w", lineNo, n2verr.ErrBadWeight))
			}
			weight = w
		}

		if err := staged.AddEdge(fields[0], fields[1], weight, ""); err != nil {
			return nil, n2verr.Wrap("csrgraph.FromEdgeList", fmt.Errorf("line %d: %w", lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, n2verr.Wrap("csrgraph.FromEdgeList", err)
	}

	return FromStaging(staged)
}
