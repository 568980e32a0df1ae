// Package corpus implements the Walk Corpus Writer (SPEC_FULL §4.10):
// a thin adapter from a walk driver's output slices to a line-oriented
// text sink, the minimal interface a downstream embedding trainer
// needs. It adds no walk semantics of its own.
package corpus

import (
	"bufio"
	"io"
	"strconv"

	"github.com/graphwalk/n2vcore/csrgraph"
)

// Writer emits one walk per line as space-separated node names
// (resolved through g's name table) or raw decimal ids when g carries
// no names. It buffers internally; callers must call Flush when done.
type Writer struct {
	g  *csrgraph.Graph
	bw *bufio.Writer
}

// NewWriter wraps w for the node names/ids of g.
func NewWriter(w io.Writer, g *csrgraph.Graph) *Writer {
	return &Writer{g: g, bw: bufio.NewWriter(w)}
}

// WriteWalk emits one walk as a single space-separated line.
// Complexity: O(len(walk)).
func (wr *Writer) WriteWalk(walkSeq []uint32) error {
	for i, n := range walkSeq {
		if i > 0 {
			if err := wr.bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := wr.writeNode(n); err != nil {
			return err
		}
	}

	return wr.bw.WriteByte('\n')
}

func (wr *Writer) writeNode(n uint32) error {
	if wr.g.HasNames() {
		_, err := wr.bw.WriteString(wr.g.NodeName(n))

		return err
	}
	_, err := wr.bw.WriteString(strconv.FormatUint(uint64(n), 10))

	return err
}

// WriteAll emits every walk in walks in order, stopping at the first
// write error.
// Complexity: O(total walk length).
func (wr *Writer) WriteAll(walks [][]uint32) error {
	for _, w := range walks {
		if err := wr.WriteWalk(w); err != nil {
			return err
		}
	}

	return nil
}

// Flush pushes any buffered output to the underlying io.Writer.
func (wr *Writer) Flush() error {
	return wr.bw.Flush()
}
