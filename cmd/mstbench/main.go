// Command mstbench compares Kruskal and Prim on DIMACS road networks.
//
// Usage:
//
//	mstbench [-runs 3] [-dir .] [-early-exit] [-synthetic N] [NAME=path ...]
//
// Without NAME=path arguments the four classic USA road graphs are looked up in
// -dir as USA-road-d.<NAME>.gr.gz; missing files are skipped.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/roadmst/bench"
	"github.com/katalvlaran/roadmst/builder"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

var defaultDatasets = []string{"NY", "BAY", "COL", "FLA"}

func main() {
	var (
		runs      = flag.Int("runs", bench.DefaultRuns, "timed runs per algorithm")
		dir       = flag.String("dir", ".", "directory holding USA-road-d.<NAME>.gr.gz files")
		earlyExit = flag.Bool("early-exit", false, "stop Kruskal once n-1 edges are selected")
		synthetic = flag.Int("synthetic", 0, "also benchmark a seeded random road-like graph with this many vertices")
		seed      = flag.Int64("seed", builder.DefaultSeed, "seed for -synthetic")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("mstbench: ")

	datasets, err := parseDatasets(flag.Args(), *dir)
	if err != nil {
		log.Fatal(err)
	}
	if *synthetic > 0 {
		g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(*seed)},
			builder.RandomConnected(*synthetic, *synthetic/2))
		if err != nil {
			log.Fatal(err)
		}
		datasets = append(datasets, bench.Dataset{Name: "SYN", Graph: g})
	}

	var mstOpts []prim_kruskal.Option
	if *earlyExit {
		mstOpts = append(mstOpts, prim_kruskal.WithEarlyExit())
	}
	h, err := bench.New(
		bench.WithRuns(*runs),
		bench.WithAlgorithms(bench.Algorithms(mstOpts...)...),
		bench.WithLogger(log.Default()),
	)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Starting Benchmark... (This may take a few minutes)")
	ms, err := h.Run(datasets)
	if err != nil {
		log.Fatal(err)
	}
	if err := bench.WriteTable(os.Stdout, ms); err != nil {
		log.Fatal(err)
	}
}

// parseDatasets turns NAME=path arguments into datasets, falling back to the
// default road graphs under dir.
func parseDatasets(args []string, dir string) ([]bench.Dataset, error) {
	if len(args) == 0 {
		out := make([]bench.Dataset, 0, len(defaultDatasets))
		for _, name := range defaultDatasets {
			out = append(out, bench.Dataset{
				Name: name,
				Path: filepath.Join(dir, fmt.Sprintf("USA-road-d.%s.gr.gz", name)),
			})
		}
		return out, nil
	}

	out := make([]bench.Dataset, 0, len(args))
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("dataset %q: want NAME=path", arg)
		}
		out = append(out, bench.Dataset{Name: name, Path: path})
	}

	return out, nil
}
