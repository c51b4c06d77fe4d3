package bench

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dimacs"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

// ErrNoRuns indicates a harness configured with fewer than one run.
var ErrNoRuns = errors.New("bench: runs must be at least 1")

// ErrCostMismatch indicates an algorithm returned different costs on the same input.
var ErrCostMismatch = errors.New("bench: cost changed between runs")

// DefaultRuns is the number of timed runs per algorithm and dataset.
const DefaultRuns = 3

// Dataset names a graph to benchmark. When Graph is set it is used as is;
// otherwise the graph is loaded from Path.
type Dataset struct {
	Name  string
	Path  string
	Graph *core.Graph
}

// Algorithm is one timed computation over a loaded graph.
type Algorithm struct {
	Name string
	Run  func(g *core.Graph) (prim_kruskal.Result, error)
}

// Algorithms returns Kruskal then Prim, each forwarding opts to prim_kruskal.
func Algorithms(opts ...prim_kruskal.Option) []Algorithm {
	return []Algorithm{
		{Name: "Kruskal", Run: func(g *core.Graph) (prim_kruskal.Result, error) {
			return prim_kruskal.KruskalGraph(g, opts...)
		}},
		{Name: "Prim", Run: func(g *core.Graph) (prim_kruskal.Result, error) {
			return prim_kruskal.PrimGraph(g, opts...)
		}},
	}
}

// Measurement holds the timings of one algorithm on one dataset.
type Measurement struct {
	Dataset   string
	Algorithm string
	Durations []time.Duration
	Cost      int64
	Edges     int
	Vertices  int
}

func (m Measurement) seconds() []float64 {
	xs := make([]float64, len(m.Durations))
	for i, d := range m.Durations {
		xs[i] = d.Seconds()
	}

	return xs
}

// Mean returns the average run time.
func (m Measurement) Mean() time.Duration {
	if len(m.Durations) == 0 {
		return 0
	}

	return seconds(stat.Mean(m.seconds(), nil))
}

// StdDev returns the sample standard deviation of the run times (0 for fewer than two runs).
func (m Measurement) StdDev() time.Duration {
	if len(m.Durations) < 2 {
		return 0
	}

	return seconds(stat.StdDev(m.seconds(), nil))
}

// Min returns the fastest run.
func (m Measurement) Min() time.Duration {
	if len(m.Durations) == 0 {
		return 0
	}

	return seconds(floats.Min(m.seconds()))
}

func seconds(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// Harness runs algorithms over datasets. Build it with New.
type Harness struct {
	runs   int
	algos  []Algorithm
	logger *log.Logger
	load   func(path string) (*core.Graph, error)
}

// Option configures a Harness.
type Option func(*Harness)

// WithRuns sets the number of timed runs per algorithm (default DefaultRuns).
func WithRuns(n int) Option {
	return func(h *Harness) { h.runs = n }
}

// WithAlgorithms replaces the default Kruskal/Prim pair.
func WithAlgorithms(algos ...Algorithm) Option {
	return func(h *Harness) { h.algos = algos }
}

// WithLogger sends progress and skip messages to l (default: discarded).
func WithLogger(l *log.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithLoader replaces dimacs.Load for datasets given by path.
func WithLoader(load func(path string) (*core.Graph, error)) Option {
	return func(h *Harness) {
		if load != nil {
			h.load = load
		}
	}
}

// New returns a Harness; ErrNoRuns if WithRuns asked for fewer than one run.
func New(opts ...Option) (*Harness, error) {
	h := &Harness{
		runs:   DefaultRuns,
		algos:  Algorithms(),
		logger: log.New(io.Discard, "", 0),
		load:   dimacs.Load,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.runs < 1 {
		return nil, fmt.Errorf("runs=%d: %w", h.runs, ErrNoRuns)
	}

	return h, nil
}

// Measure times algo on g h.runs times.
func (h *Harness) Measure(dataset string, g *core.Graph, algo Algorithm) (Measurement, error) {
	m := Measurement{
		Dataset:   dataset,
		Algorithm: algo.Name,
		Durations: make([]time.Duration, 0, h.runs),
	}
	for i := 0; i < h.runs; i++ {
		start := time.Now()
		res, err := algo.Run(g)
		elapsed := time.Since(start)
		if err != nil {
			return Measurement{}, fmt.Errorf("%s/%s run %d: %w", dataset, algo.Name, i+1, err)
		}
		if i > 0 && res.Weight != m.Cost {
			return Measurement{}, fmt.Errorf("%s/%s run %d: %d != %d: %w",
				dataset, algo.Name, i+1, res.Weight, m.Cost, ErrCostMismatch)
		}
		m.Durations = append(m.Durations, elapsed)
		m.Cost, m.Edges, m.Vertices = res.Weight, res.Edges, res.Vertices
	}

	return m, nil
}

// Run benchmarks every algorithm on every dataset, in order. Datasets whose input
// is unavailable are skipped with a log line.
func (h *Harness) Run(datasets []Dataset) ([]Measurement, error) {
	var out []Measurement
	for _, ds := range datasets {
		g := ds.Graph
		if g == nil {
			h.logger.Printf("Loading %s...", ds.Path)
			var err error
			g, err = h.load(ds.Path)
			if errors.Is(err, dimacs.ErrInputUnavailable) {
				h.logger.Printf("Error: %s not found. skipping. (%v)", ds.Path, err)
				continue
			}
			if err != nil {
				return out, fmt.Errorf("dataset %s: %w", ds.Name, err)
			}
		}
		h.logger.Printf("%s: %d vertices, %d edges", ds.Name, g.VertexCount(), g.EdgeCount())

		for _, algo := range h.algos {
			m, err := h.Measure(ds.Name, g, algo)
			if err != nil {
				return out, err
			}
			out = append(out, m)
		}
	}

	return out, nil
}
