// Package unionfind implements a disjoint-set forest with path compression and
// union by rank, sized for 1-indexed vertex IDs.
//
// Kruskal relies on the boolean returned by Union: false means both endpoints
// already share a representative, so the edge would close a cycle.
//
// Complexity: Find and Union run in amortized O(α(n)), where α is the inverse
// Ackermann function. Memory: two int slices of length n+1.
package unionfind

// UnionFind tracks a partition of the elements 0..n.
// Element 0 exists so that vertex IDs 1..n index directly.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int // disjoint sets among 0..n
}

// New returns a UnionFind over elements 0..n where every element is its own
// representative with rank 0. A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n+1)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{
		parent: parent,
		rank:   make([]int, n+1),
		sets:   n + 1,
	}
}

// Len returns the number of elements tracked, n+1.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the number of disjoint sets among all elements 0..n.
// When element 0 is never unioned, the sets over 1..n number Sets()-1.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the representative of x's set and repoints every node on the
// path directly at it. x must lie in [0, n]; anything else panics.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: compress the path.
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge happened.
// The root of lower rank is attached under the other; on equal ranks y's root goes
// under x's root, whose rank grows by one.
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	if uf.rank[rootX] < uf.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	if uf.rank[rootX] == uf.rank[rootY] {
		uf.rank[rootX]++
	}
	uf.sets--

	return true
}

// Connected reports whether x and y share a representative.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}
