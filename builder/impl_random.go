// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// impl_random.go — RandomConnected(n, extra) and Isolated(n).
//
// RandomConnected first attaches every vertex i ≥ 2 to a uniformly chosen earlier
// vertex (a random recursive tree, so the block is connected), then adds `extra`
// random edges between distinct vertices. Extra edges may repeat an existing pair,
// the way DIMACS road files list both directions of a road.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

const (
	methodRandomConnected = "RandomConnected"
	methodIsolated        = "Isolated"
	minRandomNodes        = 1
	minIsolatedNodes      = 1
)

// RandomConnected returns a Constructor for a connected random graph on n vertices
// with n-1 tree edges plus extra additional edges.
func RandomConnected(n, extra int) Constructor {
	if n < minRandomNodes {
		return invalid(methodRandomConnected, fmt.Errorf("n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices))
	}
	if extra < 0 {
		return invalid(methodRandomConnected, fmt.Errorf("extra=%d < 0: %w", extra, ErrTooFewVertices))
	}

	return Constructor{
		name: methodRandomConnected,
		n:    n,
		emit: func(g *core.Graph, base int, cfg builderConfig) error {
			// Spanning tree.
			for i := 2; i <= n; i++ {
				j := 1 + cfg.rng.Intn(i-1)
				if err := g.AddEdge(base+j, base+i, cfg.weight()); err != nil {
					return err
				}
			}
			// A single vertex has no distinct pair to connect.
			if n < 2 {
				return nil
			}
			for k := 0; k < extra; {
				u := 1 + cfg.rng.Intn(n)
				v := 1 + cfg.rng.Intn(n)
				if u == v {
					continue
				}
				if err := g.AddEdge(base+u, base+v, cfg.weight()); err != nil {
					return err
				}
				k++
			}

			return nil
		},
	}
}

// Isolated returns a Constructor that claims n vertices and adds no edges.
func Isolated(n int) Constructor {
	if n < minIsolatedNodes {
		return invalid(methodIsolated, fmt.Errorf("n=%d < min=%d: %w", n, minIsolatedNodes, ErrTooFewVertices))
	}

	return Constructor{
		name: methodIsolated,
		n:    n,
		emit: func(*core.Graph, int, builderConfig) error { return nil },
	}
}
