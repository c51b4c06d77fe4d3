package core

import "fmt"

// AddEdge appends the undirected edge {u, v} with weight w.
// The edge goes to the end of the edge list and both (w, v) into adj[u] and
// (w, u) into adj[v]. A self-loop adds a single edge and two arcs on the same vertex,
// which both algorithms discard naturally.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [1, N].
//   - ErrNegativeWeight if w < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	// Validate both endpoints and the weight before mutating anything.
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("edge %d-%d weight %d: %w", u, v, w, ErrNegativeWeight)
	}

	// One entry in the edge list, two arcs in the adjacency.
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.adj[u] = append(g.adj[u], Arc{Weight: w, To: v})
	g.adj[v] = append(g.adj[v], Arc{Weight: w, To: u})

	return nil
}

// VertexCount returns N.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns the edge list in insertion order.
// The slice is shared with the graph and must be treated as read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// Adjacency returns the adjacency structure (length N+1).
// The slices are shared with the graph and must be treated as read-only.
func (g *Graph) Adjacency() Adjacency { return g.adj }

// Neighbors returns the arcs leaving v.
// Returns ErrVertexOutOfRange for v outside [1, N].
func (g *Graph) Neighbors(v int) ([]Arc, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.adj[v], nil
}

// TotalWeight sums the weights of every edge in the graph.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	var sum int64
	// Each undirected edge is stored once in the list, so no halving is needed.
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// InRange reports whether v is a valid vertex ID for a graph over 1..n.
func InRange(v, n int) bool { return v >= 1 && v <= n }

// checkVertex wraps ErrVertexOutOfRange with the offending ID.
func (g *Graph) checkVertex(v int) error {
	if !InRange(v, g.n) {
		return fmt.Errorf("vertex %d not in [1,%d]: %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}
