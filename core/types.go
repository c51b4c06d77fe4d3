package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a negative vertex count or one above MaxVertexCount.
	ErrInvalidVertexCount = errors.New("core: invalid vertex count")

	// ErrVertexOutOfRange indicates an edge referenced a vertex outside [1, N].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// MaxVertexCount bounds N for a single Graph. The full USA road network has ~24M vertices.
const MaxVertexCount = 1 << 26

// maxEdgePrealloc caps the capacity hint taken by WithEdgeCapacity; larger lists grow by append.
const maxEdgePrealloc = 1 << 24

// Edge is one undirected, weighted connection between two vertices.
// From and To keep the order the edge was listed in; algorithms ignore it.
type Edge struct {
	// From is the first endpoint (source field of a DIMACS arc line).
	From int

	// To is the second endpoint.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Arc is a single adjacency entry: the weight of the edge and the vertex it leads to.
type Arc struct {
	Weight int64
	To     int
}

// Adjacency maps a vertex ID (used as index) to its outgoing arcs.
// Length is N+1; index 0 is unused.
type Adjacency [][]Arc

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-allocates room for m edges in the edge list.
// The DIMACS problem line announces m up front, so the loader can avoid regrowth.
// m is only a hint: non-positive values are ignored and large ones are capped.
func WithEdgeCapacity(m int) GraphOption {
	return func(g *Graph) {
		if m <= 0 {
			return
		}
		if m > maxEdgePrealloc {
			m = maxEdgePrealloc
		}
		g.edges = make([]Edge, 0, m)
	}
}

// Graph is a weighted undirected graph over vertices 1..N.
//
// It is filled once through AddEdge and read many times afterwards; it carries no
// locks because nothing writes to it after loading.
type Graph struct {
	n     int       // number of vertices
	edges []Edge    // insertion order
	adj   Adjacency // both directions of every edge
}

// NewGraph creates an empty graph over vertices 1..n.
// Returns ErrInvalidVertexCount when n < 0 or n > MaxVertexCount.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	// Reject before allocating: n+1 slots are made below.
	if n < 0 || n > MaxVertexCount {
		return nil, ErrInvalidVertexCount
	}
	g := &Graph{
		n:   n,
		adj: make(Adjacency, n+1),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
