package dimacs

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/katalvlaran/roadmst/core"
)

// ErrInputUnavailable indicates the input could not be opened or decoded.
var ErrInputUnavailable = errors.New("dimacs: input unavailable")

// ErrMalformed indicates content that does not follow the DIMACS format.
var ErrMalformed = errors.New("dimacs: malformed input")

// maxLineBytes bounds a single line; real files stay far below it.
const maxLineBytes = 1 << 20

// Load reads the DIMACS graph stored at path.
// Files ending in ".gz" are decompressed on the fly; others are memory-mapped.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrInputUnavailable, "open %s: %v", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(ErrInputUnavailable, "gzip %s: %v", path, err)
		}
		defer zr.Close()

		g, err := Parse(zr)
		return g, errors.WithMessagef(err, "load %s", path)
	}

	g, err := parseMapped(f)
	return g, errors.WithMessagef(err, "load %s", path)
}

// parseMapped maps f read-only and parses the mapping.
func parseMapped(f *os.File) (*core.Graph, error) {
	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(ErrInputUnavailable, "stat: %v", err)
	}
	// Zero-length files cannot be mapped.
	if st.Size() == 0 {
		return Parse(bytes.NewReader(nil))
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(ErrInputUnavailable, "mmap: %v", err)
	}
	defer m.Unmap()

	return Parse(bytes.NewReader(m))
}

// Parse reads a DIMACS graph from r.
//
// Rules:
//   - Blank lines, "c" lines and lines of any other type are ignored.
//   - Exactly one "p" line; its third field is N, its optional fourth is M.
//   - "a u v w" lines must follow the problem line and have exactly four fields.
//
// Read failures (including corrupt gzip streams) wrap ErrInputUnavailable; format
// violations wrap ErrMalformed with the 1-based line number. A read failure wins
// over a malformed line, since a truncated stream ends in a partial line.
func Parse(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var p parser
	for sc.Scan() {
		p.lineNo++
		if err := p.line(sc.Text()); err != nil {
			if rerr := sc.Err(); rerr != nil {
				return nil, readFailure(rerr, p.lineNo)
			}
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, readFailure(err, p.lineNo+1)
	}
	if p.g == nil {
		return nil, malformed(p.lineNo, "missing problem line")
	}

	return p.g, nil
}

// parser holds the state of one Parse call.
type parser struct {
	g      *core.Graph
	lineNo int
}

func (p *parser) line(text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "p":
		return p.problem(fields)
	case "a":
		return p.arc(fields, text)
	}

	return nil
}

func (p *parser) problem(fields []string) error {
	if p.g != nil {
		return malformed(p.lineNo, "duplicate problem line")
	}
	if len(fields) < 3 {
		return malformed(p.lineNo, "problem line needs at least 3 fields, got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return malformed(p.lineNo, "bad vertex count %q", fields[2])
	}
	if n > core.MaxVertexCount {
		return malformed(p.lineNo, "vertex count %d exceeds %d", n, core.MaxVertexCount)
	}

	// M is advisory; an unparsable or absurd value just skips or caps preallocation.
	var opts []core.GraphOption
	if len(fields) >= 4 {
		if m, err := strconv.Atoi(fields[3]); err == nil {
			opts = append(opts, core.WithEdgeCapacity(m))
		}
	}
	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return errors.WithMessagef(err, "line %d", p.lineNo)
	}
	p.g = g

	return nil
}

func (p *parser) arc(fields []string, text string) error {
	if p.g == nil {
		return malformed(p.lineNo, "arc before problem line")
	}
	if len(fields) != 4 {
		return malformed(p.lineNo, "arc line needs 4 fields, got %d", len(fields))
	}
	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	w, errW := strconv.ParseInt(fields[3], 10, 64)
	if errU != nil || errV != nil || errW != nil {
		return malformed(p.lineNo, "non-integer field in %q", text)
	}

	return errors.WithMessagef(p.g.AddEdge(u, v, w), "line %d", p.lineNo)
}

func readFailure(err error, line int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return malformed(line, "line longer than %d bytes", maxLineBytes)
	}

	return errors.Wrapf(ErrInputUnavailable, "read near line %d: %v", line, err)
}

func malformed(line int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, "line %d: %s", line, fmt.Sprintf(format, args...))
}
