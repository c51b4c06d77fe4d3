package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

// ErrNilGraph indicates a nil *core.Graph was handed to a wrapper.
var ErrNilGraph = errors.New("prim_kruskal: nil graph")

// ErrInvalidRoot indicates Prim's start vertex lies outside [1, n].
var ErrInvalidRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrAdjacencySize indicates the adjacency has fewer than n+1 slots.
var ErrAdjacencySize = errors.New("prim_kruskal: adjacency shorter than n+1")

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the vertex Prim starts from unless WithRoot says otherwise.
// DIMACS numbering starts at 1.
const DefaultRoot = 1

// Result is the outcome of one MST run.
type Result struct {
	// Weight is the sum of the selected edge weights.
	Weight int64

	// Edges is the number of edges selected.
	Edges int

	// Vertices is the number of vertices covered: every vertex for Kruskal,
	// the visited set for Prim.
	Vertices int

	// Tree holds the selected edges in selection order. Only filled with WithTree.
	Tree []core.Edge
}

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() for the defaults (Kruskal, root 1, full pass, no tree).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// EarlyExit lets Kruskal stop as soon as n-1 edges are selected.
	EarlyExit bool

	// KeepTree records the selected edges in Result.Tree.
	KeepTree bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithEarlyExit stops Kruskal once the tree has n-1 edges.
func WithEarlyExit() Option {
	return func(opts *MSTOptions) {
		opts.EarlyExit = true
	}
}

// WithTree asks both algorithms to return the selected edges.
func WithTree() Option {
	return func(opts *MSTOptions) {
		opts.KeepTree = true
	}
}

// DefaultOptions returns MSTOptions for Kruskal, root DefaultRoot, full pass, no tree.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   DefaultRoot,
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the algorithm selected by WithMethod (Kruskal by default) on g.
//
//	– MethodKruskal: Kruskal(g.VertexCount(), g.Edges(), ...).
//	– MethodPrim:    Prim(g.VertexCount(), g.Adjacency(), root, ...).
//	– Otherwise:     ErrUnknownMethod.
//
// This is the pure computation entry point; timing lives in package bench.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g.VertexCount(), g.Edges(), opts...)
	case MethodPrim:
		return Prim(g.VertexCount(), g.Adjacency(), o.Root, opts...)
	default:
		return Result{}, fmt.Errorf("method %q: %w", o.Method, ErrUnknownMethod)
	}
}

// KruskalGraph runs Kruskal over g's edge list.
func KruskalGraph(g *core.Graph, opts ...Option) (Result, error) {
	return Compute(g, append(opts[:len(opts):len(opts)], WithMethod(MethodKruskal))...)
}

// PrimGraph runs Prim over g's adjacency, from WithRoot or DefaultRoot.
func PrimGraph(g *core.Graph, opts ...Option) (Result, error) {
	return Compute(g, append(opts[:len(opts):len(opts)], WithMethod(MethodPrim))...)
}
