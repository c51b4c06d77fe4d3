package dimacs

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/roadmst/core"
)

// Write emits g in DIMACS form: one "c" line per comment, the "p sp N M" line and
// one "a" line per edge in edge-list order. Parse(Write(g)) yields an equal graph.
func Write(w io.Writer, g *core.Graph, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			bw.WriteString("c ")
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}

	bw.WriteString("p sp ")
	bw.WriteString(strconv.Itoa(g.VertexCount()))
	bw.WriteByte(' ')
	bw.WriteString(strconv.Itoa(g.EdgeCount()))
	bw.WriteByte('\n')

	buf := make([]byte, 0, 64)
	for _, e := range g.Edges() {
		buf = append(buf[:0], "a "...)
		buf = strconv.AppendInt(buf, int64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return errors.Wrap(bw.Flush(), "dimacs: write")
}

// Save writes g to path, gzip-compressed when the name ends in ".gz".
func Save(path string, g *core.Graph, comments ...string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dimacs: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "dimacs: close %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, g, comments...)
	}

	zw := gzip.NewWriter(f)
	if err := Write(zw, g, comments...); err != nil {
		return err
	}

	return errors.Wrapf(zw.Close(), "dimacs: gzip %s", path)
}
