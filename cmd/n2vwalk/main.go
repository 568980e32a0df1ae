// Command n2vwalk reads an edge list, runs the second-order biased
// random walk driver over it, and writes the resulting corpus as one
// walk per line. It is a thin wiring layer (SPEC_FULL §4.11): all
// algorithmic logic lives in csrgraph, transition, and walk.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/graphwalk/n2vcore/corpus"
	"github.com/graphwalk/n2vcore/csrgraph"
	"github.com/graphwalk/n2vcore/walk"
)

func main() {
	edgesPath := flag.String("edges", "", "path to the src-dst[-weight] edge list (required)")
	outPath := flag.String("out", "walks.txt", "output path for the walk corpus")
	undirected := flag.Bool("undirected", false, "treat the edge list as undirected")
	weighted := flag.Bool("weighted", false, "parse a third weight column")
	length := flag.Int("length", 80, "target walk length")
	iterations := flag.Int("iterations", 10, "walks started per node")
	minLength := flag.Int("min-length", 0, "drop walks shorter than this")
	returnWeight := flag.Float64("return-weight", 1.0, "return bias (p^-1)")
	exploreWeight := flag.Float64("explore-weight", 1.0, "explore bias (q^-1)")
	changeNodeTypeWeight := flag.Float64("change-node-type-weight", 1.0, "change-node-type bias")
	changeEdgeTypeWeight := flag.Float64("change-edge-type-weight", 1.0, "change-edge-type bias")
	seed := flag.Int64("seed", 42, "RNG seed")
	workers := flag.Int("workers", 0, "worker pool size (0 = runtime.NumCPU())")
	flag.Parse()

	if *edgesPath == "" {
		log.Fatal("n2vwalk: -edges is required")
	}

	g, err := loadGraph(*edgesPath, *undirected, *weighted)
	if err != nil {
		log.Fatalf("n2vwalk: loading graph: %v", err)
	}
	log.Printf("loaded graph: %d nodes, %d edges", g.N(), g.E())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := walk.NewDriver(g)
	params := walk.DefaultParams()
	params.Length = *length
	params.Iterations = *iterations
	params.MinLength = *minLength
	params.ReturnWeight = *returnWeight
	params.ExploreWeight = *exploreWeight
	params.ChangeNodeTypeWeight = *changeNodeTypeWeight
	params.ChangeEdgeTypeWeight = *changeEdgeTypeWeight
	params.Seed = *seed
	params.Workers = *workers

	go func() {
		<-ctx.Done()
		log.Println("n2vwalk: interrupt received, stopping dispatch...")
		d.Interrupt()
	}()

	start := time.Now()
	log.Printf("dispatching %d walks...", params.Iterations*g.N())
	walks, err := d.Walk(ctx, params)
	if err != nil {
		log.Fatalf("n2vwalk: %v", err)
	}
	log.Printf("completed %d walks in %s", len(walks), time.Since(start))

	if err := writeCorpus(*outPath, g, walks); err != nil {
		log.Fatalf("n2vwalk: writing corpus: %v", err)
	}

	stats := d.Stats()
	log.Printf("stats: completed=%d filtered=%d traps=%d interrupted=%d",
		stats.WalksCompleted, stats.WalksFiltered, stats.TrapsHit, stats.Interrupted)
}

func loadGraph(path string, undirected, weighted bool) (*csrgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []csrgraph.LoadOption
	if undirected {
		opts = append(opts, csrgraph.WithUndirectedInput())
	}
	if weighted {
		opts = append(opts, csrgraph.WithWeightedInput())
	}

	return csrgraph.FromEdgeList(f, opts...)
}

func writeCorpus(path string, g *csrgraph.Graph, walks [][]uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := corpus.NewWriter(f, g)
	if err := w.WriteAll(walks); err != nil {
		return err
	}

	return w.Flush()
}
