package dimacs_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/builder"
	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dimacs"
)

const sample = `c 9th DIMACS Implementation Challenge: Shortest Paths
c sample road graph
p sp 3 4

a 1 2 803
a 2 1 803
a 2 3 158
a 3 1 774
`

func TestParse_Sample(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 803},
		{From: 2, To: 1, Weight: 803},
		{From: 2, To: 3, Weight: 158},
		{From: 3, To: 1, Weight: 774},
	}, g.Edges())

	arcs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{Weight: 803, To: 2}, {Weight: 803, To: 2}, {Weight: 774, To: 3}}, arcs)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"arc before p":    "a 1 2 3\np sp 2 1\n",
		"short p":         "p sp\n",
		"bad n":           "p sp x 1\n",
		"negative n":      "p sp -2 1\n",
		"duplicate p":     "p sp 2 1\np sp 2 1\n",
		"short arc":       "p sp 2 1\na 1 2\n",
		"long arc":        "p sp 2 1\na 1 2 3 4\n",
		"non-integer arc": "p sp 2 1\na 1 two 3\n",
		"missing p":       "c nothing here\n",
		"empty":           "",
		"huge n":          "p sp 9223372036854775807 1\n",
		"n past limit":    "p sp 67108865 1\n",
		"n overflows int": "p sp 99999999999999999999 1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dimacs.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, dimacs.ErrMalformed)
		})
	}
}

// The edge count on the problem line is only a capacity hint.
func TestParse_EdgeCountHint(t *testing.T) {
	for _, m := range []string{"9223372036854775807", "-4", "many", "99999999999999999999"} {
		in := "p sp 3 " + m + "\na 1 2 4\na 2 3 5\n"
		g, err := dimacs.Parse(strings.NewReader(in))
		require.NoError(t, err, m)
		assert.Equal(t, 2, g.EdgeCount(), m)
		assert.Equal(t, int64(9), g.TotalWeight(), m)
	}
}

func TestParse_LineNumber(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("c x\np sp 2 1\na 1 z 3\n"))
	require.ErrorIs(t, err, dimacs.ErrMalformed)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_GraphRejections(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p sp 2 1\na 1 3 5\n"))
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = dimacs.Parse(strings.NewReader("p sp 2 1\na 1 2 -5\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

// TestParse_IgnoresUnknownLines mirrors the reference loader: only p and a lines matter.
func TestParse_IgnoresUnknownLines(t *testing.T) {
	g, err := dimacs.Parse(strings.NewReader("x junk\np sp 2\n  \nn 1\na 1 2 9\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReadError(t *testing.T) {
	_, err := dimacs.Parse(failingReader{})
	assert.ErrorIs(t, err, dimacs.ErrInputUnavailable)
}

func TestWriteParse_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(9)}, builder.RandomConnected(50, 70), builder.Isolated(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g, "generated\nby test"))
	assert.True(t, strings.HasPrefix(buf.String(), "c generated\nc by test\np sp 52 119\n"))

	back, err := dimacs.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), back.VertexCount())
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Adjacency(), back.Adjacency())
}

func TestLoad_Missing(t *testing.T) {
	for _, name := range []string{"USA-road-d.NOPE.gr.gz", "nope.gr"} {
		_, err := dimacs.Load(filepath.Join(t.TempDir(), name))
		assert.ErrorIs(t, err, dimacs.ErrInputUnavailable)
	}
}

func TestLoad_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gr.gz")
	require.NoError(t, os.WriteFile(path, []byte("definitely not gzip"), 0o644))

	_, err := dimacs.Load(path)
	assert.ErrorIs(t, err, dimacs.ErrInputUnavailable)
}

func TestLoad_TruncatedGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("p sp 3 40000\n" + strings.Repeat("a 1 2 803\na 2 3 158\n", 20000)))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "cut.gr.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes()[:buf.Len()/2], 0o644))

	_, err = dimacs.Load(path)
	assert.ErrorIs(t, err, dimacs.ErrInputUnavailable)
}

// TestSaveLoad covers both transports: gzip stream and memory-mapped plain file.
func TestSaveLoad(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(4)}, builder.Grid(8, 9))
	require.NoError(t, err)

	for _, name := range []string{"grid.gr.gz", "grid.gr"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, dimacs.Save(path, g, "grid 8x9"))

			back, err := dimacs.Load(path)
			require.NoError(t, err)
			assert.Equal(t, g.VertexCount(), back.VertexCount())
			assert.Equal(t, g.Edges(), back.Edges())
		})
	}
}

func TestLoad_EmptyPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gr")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := dimacs.Load(path)
	assert.ErrorIs(t, err, dimacs.ErrMalformed)
}
