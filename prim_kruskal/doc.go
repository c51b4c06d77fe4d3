// Package prim_kruskal computes Minimum Spanning Trees of large, weighted, undirected
// road graphs with two classical algorithms: Kruskal's and Prim's.
//
// Both algorithms work on the plain structures held by a *core.Graph rather than on
// the graph itself, so they can be timed in isolation:
//
//	Kruskal(n, edges, opts...)     — edge list, sort + union-find.
//	Prim(n, adjacency, root, ...)  — adjacency list, lazy min-heap expansion.
//
// KruskalGraph, PrimGraph and Compute are thin wrappers taking a *core.Graph.
//
// Kruskal
//
//   - Copies the edge list and sorts the copy with a stable sort by weight; ties keep
//     input order, so repeated runs select the same tree.
//   - Feeds each edge to unionfind.Union; a false return means the endpoints already
//     share a component and the edge would close a cycle.
//   - Scans the whole list by default. WithEarlyExit stops once n-1 edges are taken;
//     every remaining edge would fail Union, so the weight is identical.
//   - Time O(E log E), memory O(V + E).
//
// Prim
//
//   - Seeds a min-heap with (0, root) and pops the lightest entry until the heap
//     drains or all n vertices are visited.
//   - Entries are never removed or re-keyed: a vertex may sit in the heap several
//     times, and only its first pop counts. Stale pops are skipped (lazy deletion),
//     which replaces decrease-key.
//   - Time O(E log E), memory O(V + E).
//
// Disconnected graphs
//
//	Neither algorithm reports an error. Kruskal returns the minimum spanning forest
//	(sum over all components); Prim returns the tree of the root's component only.
//	The two weights differ on purpose; Result.Vertices tells how far Prim reached.
//
// Empty graphs (n == 0, or no edges) yield a zero Result.
//
// Error Conditions
//
//   - core.ErrInvalidVertexCount : n < 0.
//   - core.ErrVertexOutOfRange   : an edge or arc references a vertex outside [1, n].
//   - core.ErrNegativeWeight     : an edge or arc carries a negative weight.
//   - ErrInvalidRoot (Prim)      : root outside [1, n] while n > 0.
//   - ErrAdjacencySize (Prim)    : adjacency shorter than n+1.
//   - ErrNilGraph, ErrUnknownMethod (wrappers).
//
// Every call allocates its own union-find, heap and visited set; nothing carries over
// between runs and the input slices are never written.
package prim_kruskal
