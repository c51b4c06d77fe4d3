package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/unionfind"
)

// Kruskal computes the minimum spanning forest of the undirected graph over
// vertices 1..n described by edges.
//
// Steps:
//  1. Validate n and every edge (endpoints in [1, n], weight ≥ 0).
//  2. Copy edges and sort the copy by ascending Weight with sort.SliceStable,
//     so equal weights keep input order. The caller's slice is never reordered.
//  3. Initialize a fresh union-find over 0..n.
//  4. For each edge (u, v, w): if Union(u, v) merged two components, take it.
//     Otherwise it would close a cycle and is dropped.
//  5. Scan the full list, or stop at n-1 edges with WithEarlyExit.
//
// A disconnected input yields the forest weight with Edges < n-1; that is not an error.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []core.Edge, opts ...Option) (Result, error) {
	o := resolve(opts)

	// 1. Validate before touching any state.
	if n < 0 {
		return Result{}, core.ErrInvalidVertexCount
	}
	for i, e := range edges {
		// Both endpoints must name real vertices; slot 0 is never valid.
		if !core.InRange(e.From, n) || !core.InRange(e.To, n) {
			return Result{}, fmt.Errorf("Kruskal: edge #%d (%d-%d) outside [1,%d]: %w",
				i, e.From, e.To, n, core.ErrVertexOutOfRange)
		}
		// Negative costs would break the greedy choice.
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("Kruskal: edge #%d weight %d: %w", i, e.Weight, core.ErrNegativeWeight)
		}
	}

	// Nothing to span: report the vertex count with zero weight.
	res := Result{Vertices: n}
	if n == 0 || len(edges) == 0 {
		return res, nil
	}

	// 2. Stable sort on a private copy.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Fresh disjoint-set per run.
	uf := unionfind.New(n)
	if o.KeepTree {
		res.Tree = make([]core.Edge, 0, n-1)
	}

	// 4. Greedy pass.
	for _, e := range sorted {
		// Same component already: this edge would close a cycle.
		if !uf.Union(e.From, e.To) {
			continue
		}
		// Accept the edge into the forest.
		res.Weight += e.Weight
		res.Edges++
		// Record it only when the caller asked for the tree.
		if o.KeepTree {
			res.Tree = append(res.Tree, e)
		}
		// 5. Remaining edges could only fail Union.
		if o.EarlyExit && res.Edges == n-1 {
			break
		}
	}

	return res, nil
}
