// Package core defines the in-memory road graph shared by every algorithm in roadmst:
// integer vertices, weighted undirected edges, and a per-vertex adjacency list.
//
// Vertices are 1-indexed integers in [1, N], exactly as DIMACS numbers them.
// Every per-vertex slice is sized N+1 and slot 0 is left unused, so a vertex ID
// can index straight into it without an offset.
//
// A Graph keeps two views of the same edges:
//
//	Edges()      — the edge list in insertion (input) order, consumed by Kruskal.
//	Adjacency()  — vertex → []Arc{Weight, To}, both directions of every edge, consumed by Prim.
//
// Both views are built once by AddEdge while loading and are treated as an immutable
// snapshot afterwards. Algorithms never mutate them, so the same Graph may be handed to
// any number of repeated measurement runs.
//
// Errors:
//
//	ErrInvalidVertexCount - negative vertex count passed to NewGraph.
//	ErrVertexOutOfRange   - an edge endpoint outside [1, N].
//	ErrNegativeWeight     - an edge weight below zero.
package core
