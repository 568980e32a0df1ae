// driver.go implements the Parallel Walk Driver (spec §4.6, §5): it
// enumerates iterations*N walks, grouped by starting node, and fans them
// out across a fixed worker pool. The pool shape — a buffered job channel,
// a fixed number of long-lived goroutines, a sync.WaitGroup barrier — is
// the same one used by the retrieval pack's own parallel graph traversers
// (no repo in the corpus reaches for an external scheduler library such as
// golang.org/x/sync/errgroup, so none is introduced here).
package walk

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/graphwalk/n2vcore/csrgraph"
	"github.com/graphwalk/n2vcore/n2verr"
	"github.com/graphwalk/n2vcore/transition"
)

// Driver runs walks over a fixed Graph Store and accumulates Stats across
// calls. The Graph Store is shared read-only by every worker; nothing in
// Driver itself needs locking since each worker owns its own RNG and
// scratch buffers (spec §5).
type Driver struct {
	g     *csrgraph.Graph
	stats liveStats

	interrupted atomic.Bool
}

// NewDriver wraps g for repeated Walk calls.
func NewDriver(g *csrgraph.Graph) *Driver {
	return &Driver{g: g}
}

// Interrupt sets the cooperative cancellation flag: the next time any
// in-flight Walk call checks between walks (never mid-walk), dispatch
// stops and Walk returns n2verr.ErrInterrupted. The flag stays set, so a
// Walk call started after Interrupt returns n2verr.ErrInterrupted without
// running any walk. Safe to call concurrently with Walk, from any
// goroutine.
func (d *Driver) Interrupt() {
	d.interrupted.Store(true)
}

// Stats returns a snapshot of the counters accumulated across every Walk
// call made on d so far.
func (d *Driver) Stats() Stats {
	return d.stats.snapshot()
}

// Walk dispatches iterations*N walks (spec §4.6): walk k starts at node
// k/iterations (integer division), so iterations are grouped by starting
// node; each walk runs independently on a worker-pool goroutine. The
// returned slice preserves task-index order regardless of which worker
// finished first. Walks shorter than params.MinLength are dropped. ctx
// cancellation and Driver.Interrupt are both checked only between walks,
// never inside one (spec §5); either one aborts dispatch and returns
// n2verr.ErrInterrupted with whatever walks had already completed
// discarded, per spec.
func (d *Driver) Walk(ctx context.Context, params Params) ([][]uint32, error) {
	if err := params.validate(); err != nil {
		return nil, n2verr.Wrap("walk.Driver.Walk", err)
	}

	n := d.g.N()
	total := params.Iterations * n
	if total == 0 {
		return nil, nil
	}

	workers := params.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	slots := make([][]uint32, total)
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	var interrupted atomic.Bool

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tb := transition.NewBuilder()
			sw := &singleWalker{g: d.g, tb: tb, params: params}
			for k := range jobs {
				startNode := uint32(k / params.Iterations)
				sw.rng = rngForTask(params.Seed, uint64(k))
				seq := sw.walk(startNode)

				d.stats.addCompleted()
				if d.g.IsNodeTrap(seq[len(seq)-1]) {
					d.stats.addTrap()
				}
				if len(seq) < params.MinLength {
					d.stats.addFiltered()

					continue
				}
				slots[k] = seq
			}
		}()
	}

dispatch:
	for k := 0; k < total; k++ {
		if interrupted.Load() || d.interrupted.Load() || ctxDone(ctx) {
			interrupted.Store(true)

			break dispatch
		}
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	if interrupted.Load() {
		d.stats.addInterrupt()

		return nil, n2verr.Wrap("walk.Driver.Walk", n2verr.ErrInterrupted)
	}

	out := make([][]uint32, 0, total)
	for _, seq := range slots {
		if seq != nil {
			out = append(out, seq)
		}
	}

	return out, nil
}

func ctxDone(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
