package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

// Prim grows a minimum spanning tree from root over the adjacency of the
// undirected graph over vertices 1..n.
//
// Steps:
//  1. n == 0 → zero Result. Validate root ∈ [1, n] and len(adj) ≥ n+1.
//  2. Seed a min-heap with (0, root) and allocate a fresh visited set.
//  3. While the heap is non-empty and fewer than n vertices are visited:
//     a. Pop the lightest entry (w, u).
//     b. If u is already visited the entry is stale: skip it.
//     c. Mark u visited and add w to the total.
//     d. Push (weight, neighbor) for every arc of u to an unvisited neighbor.
//  4. Return the total once everything reachable is visited or the heap drains.
//
// On a disconnected graph only the root's component is spanned; Result.Vertices
// is then smaller than n. This is not an error.
// Complexity: O(E log E) time (pushes without decrease-key), O(V + E) memory.
func Prim(n int, adj core.Adjacency, root int, opts ...Option) (Result, error) {
	o := resolve(opts)

	// 1. Validate.
	// Negative N is a caller error; N=0 has nothing to span.
	if n < 0 {
		return Result{}, core.ErrInvalidVertexCount
	}
	if n == 0 {
		return Result{}, nil
	}
	if !core.InRange(root, n) {
		return Result{}, fmt.Errorf("Prim: root %d not in [1,%d]: %w", root, n, ErrInvalidRoot)
	}
	// Every vertex 1..n must have an adjacency slot.
	if len(adj) < n+1 {
		return Result{}, fmt.Errorf("Prim: len(adj)=%d, n=%d: %w", len(adj), n, ErrAdjacencySize)
	}

	// 2. Fresh per-run state.
	var res Result
	visited := make([]bool, n+1)
	// Seed with the root itself; from=0 marks "no tree edge".
	pq := &arcPQ{{weight: 0, vertex: root}}
	if o.KeepTree {
		res.Tree = make([]core.Edge, 0, n-1)
	}

	// 3. Expand.
	for pq.Len() > 0 && res.Vertices < n {
		// 3a. Lightest frontier entry.
		it := heap.Pop(pq).(pqItem)
		u := it.vertex
		if visited[u] {
			// Stale entry from an earlier, heavier push.
			continue
		}

		// 3c. u joins the tree through the arc it was pushed with.
		visited[u] = true
		res.Vertices++
		res.Weight += it.weight
		if it.from != 0 {
			res.Edges++
			if o.KeepTree {
				res.Tree = append(res.Tree, core.Edge{From: it.from, To: u, Weight: it.weight})
			}
		}

		// 3d. Offer every arc to the frontier, checking it on the way.
		for _, a := range adj[u] {
			if !core.InRange(a.To, n) {
				return Result{}, fmt.Errorf("Prim: arc %d->%d outside [1,%d]: %w", u, a.To, n, core.ErrVertexOutOfRange)
			}
			if a.Weight < 0 {
				return Result{}, fmt.Errorf("Prim: arc %d->%d weight %d: %w", u, a.To, a.Weight, core.ErrNegativeWeight)
			}
			// Arcs back into the tree are never useful.
			if !visited[a.To] {
				heap.Push(pq, pqItem{weight: a.Weight, vertex: a.To, from: u})
			}
		}
	}

	// 4. Done: all reachable vertices visited, or n reached.
	return res, nil
}

// pqItem is one heap entry: the weight of the arc that reaches vertex, and the
// tree vertex it was pushed from (0 for the seed).
type pqItem struct {
	weight int64
	vertex int
	from   int
}

// arcPQ implements heap.Interface as a min-heap ordered by weight, then vertex ID.
type arcPQ []pqItem

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].vertex < pq[j].vertex
}

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *arcPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes the last element; heap.Pop has already swapped the minimum there.
func (pq *arcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
