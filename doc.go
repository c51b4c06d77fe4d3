// Package roadmst computes Minimum Spanning Trees over large road networks in
// DIMACS format and compares Kruskal's and Prim's algorithms on them.
//
// Under the hood, everything is organized in subpackages:
//
//	core/          — Graph snapshot: 1-indexed vertices, edge list, adjacency list
//	unionfind/     — disjoint-set forest (path compression, union by rank)
//	prim_kruskal/  — Kruskal (sort + union-find) and Prim (lazy min-heap)
//	dimacs/        — .gr / .gr.gz reader (gzip or mmap) and writer
//	builder/       — deterministic seeded synthetic road graphs
//	bench/         — repeated timing runs and the comparison table
//	cmd/mstbench   — benchmark CLI over the USA-road-d datasets
//	cmd/grgen      — synthetic DIMACS generator
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
// Kruskal and Prim both return the same MST weight on a connected graph. On a
// disconnected one Kruskal returns the spanning forest and Prim the tree of its
// root's component.
package roadmst
