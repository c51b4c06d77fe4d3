package bench_test

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/bench"
	"github.com/katalvlaran/roadmst/builder"
	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dimacs"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

func grid(t *testing.T) *core.Graph {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(5)}, builder.Grid(15, 15))
	require.NoError(t, err)
	return g
}

func TestNew_Validation(t *testing.T) {
	_, err := bench.New(bench.WithRuns(0))
	assert.ErrorIs(t, err, bench.ErrNoRuns)

	h, err := bench.New()
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestRun_SyntheticAndFiles(t *testing.T) {
	dir := t.TempDir()
	g := grid(t)
	onDisk := filepath.Join(dir, "grid.gr.gz")
	require.NoError(t, dimacs.Save(onDisk, g))

	var logs bytes.Buffer
	h, err := bench.New(bench.WithRuns(4), bench.WithLogger(log.New(&logs, "", 0)))
	require.NoError(t, err)

	ms, err := h.Run([]bench.Dataset{
		{Name: "MEM", Graph: g},
		{Name: "MISSING", Path: filepath.Join(dir, "USA-road-d.NY.gr.gz")},
		{Name: "DISK", Path: onDisk},
	})
	require.NoError(t, err)
	require.Len(t, ms, 4)

	for _, m := range ms {
		assert.Len(t, m.Durations, 4)
		assert.Equal(t, ms[0].Cost, m.Cost, "connected grid: every algorithm and dataset agrees")
		assert.Equal(t, 225, m.Vertices)
		assert.Equal(t, 224, m.Edges)
		assert.GreaterOrEqual(t, m.Mean()+time.Microsecond, m.Min())
	}
	assert.Equal(t, []string{"MEM", "MEM", "DISK", "DISK"}, []string{ms[0].Dataset, ms[1].Dataset, ms[2].Dataset, ms[3].Dataset})
	assert.Equal(t, "Kruskal", ms[0].Algorithm)
	assert.Equal(t, "Prim", ms[1].Algorithm)
	assert.Contains(t, logs.String(), "skipping")
}

func TestRun_MalformedAborts(t *testing.T) {
	h, err := bench.New(bench.WithLoader(func(string) (*core.Graph, error) {
		return nil, dimacs.ErrMalformed
	}))
	require.NoError(t, err)

	_, err = h.Run([]bench.Dataset{{Name: "BAD", Path: "bad.gr"}})
	assert.ErrorIs(t, err, dimacs.ErrMalformed)
}

func TestMeasure_Errors(t *testing.T) {
	h, err := bench.New(bench.WithRuns(3))
	require.NoError(t, err)
	g := grid(t)

	boom := errors.New("boom")
	_, err = h.Measure("G", g, bench.Algorithm{Name: "fail", Run: func(*core.Graph) (prim_kruskal.Result, error) {
		return prim_kruskal.Result{}, boom
	}})
	assert.ErrorIs(t, err, boom)

	calls := 0
	_, err = h.Measure("G", g, bench.Algorithm{Name: "drift", Run: func(*core.Graph) (prim_kruskal.Result, error) {
		calls++
		return prim_kruskal.Result{Weight: int64(calls)}, nil
	}})
	assert.ErrorIs(t, err, bench.ErrCostMismatch)
}

func TestMeasurement_Stats(t *testing.T) {
	m := bench.Measurement{Durations: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}}
	assert.Equal(t, 2*time.Second, m.Mean())
	assert.Equal(t, time.Second, m.Min())
	assert.InDelta(t, float64(time.Second), float64(m.StdDev()), float64(time.Microsecond))

	var empty bench.Measurement
	assert.Zero(t, empty.Mean())
	assert.Zero(t, empty.Min())
	assert.Zero(t, empty.StdDev())
}

func TestWriteTable(t *testing.T) {
	ms := []bench.Measurement{
		{Dataset: "NY", Algorithm: "Kruskal", Durations: []time.Duration{500 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond}, Cost: 42},
		{Dataset: "NY", Algorithm: "Prim", Durations: []time.Duration{time.Second, time.Second, time.Second}, Cost: 42},
		{Dataset: "BAY", Algorithm: "Kruskal", Durations: []time.Duration{250 * time.Millisecond}, Cost: 7},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, ms))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)

	assert.Equal(t, "Dataset    | Algo     | Run 1  | Run 2  | Run 3  | Avg    | Std    | Cost      ", lines[0])
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[1])
	assert.Equal(t, "NY         | Kruskal  | 0.50   | 0.50   | 0.50   | 0.50   | 0.00   | 42", lines[2])
	assert.Equal(t, "NY         | Prim     | 1.00   | 1.00   | 1.00   | 1.00   | 0.00   | 42", lines[3])
	assert.Equal(t, lines[1], lines[4])
	assert.Equal(t, "BAY        | Kruskal  | 0.25   | -      | -      | 0.25   | 0.00   | 7", lines[5])
	assert.Equal(t, lines[1], lines[6])
}
