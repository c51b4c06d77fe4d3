// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// Package builder produces deterministic, seeded synthetic road graphs for tests,
// benchmarks and the grgen tool.
//
// One orchestrator, BuildGraph(opts, cons...), sizes a single *core.Graph for the sum
// of every constructor's vertices and lets each constructor emit edges inside its own
// contiguous ID block. Several constructors therefore yield a graph with several
// connected components, which is how disconnected fixtures are made:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Grid(10, 10),   // vertices   1..100
//		builder.Path(5),        // vertices 101..105
//	)
//
// Constructors:
//
//	Path(n)                 – P_n, n ≥ 1.
//	Cycle(n)                – C_n, n ≥ 3.
//	Grid(rows, cols)        – orthogonal lattice, the typical city-block shape.
//	RandomConnected(n, k)   – random recursive tree plus k extra random edges.
//	Isolated(n)             – n vertices, no edges.
//
// Determinism: the same options, seed and constructor order always give the same
// edge list, including weights. The default seed is DefaultSeed.
package builder
