// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Edge order: (i, i+1) for i ascending; Cycle appends the closing (n, 1).
// Weights: one draw per edge, in edge order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path on n vertices.
func Path(n int) Constructor {
	if n < minPathNodes {
		return invalid(methodPath, fmt.Errorf("n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices))
	}

	return Constructor{
		name: methodPath,
		n:    n,
		emit: func(g *core.Graph, base int, cfg builderConfig) error {
			return chain(g, base, n, cfg)
		},
	}
}

// Cycle returns a Constructor for the cycle on n vertices.
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return invalid(methodCycle, fmt.Errorf("n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices))
	}

	return Constructor{
		name: methodCycle,
		n:    n,
		emit: func(g *core.Graph, base int, cfg builderConfig) error {
			if err := chain(g, base, n, cfg); err != nil {
				return err
			}

			return g.AddEdge(base+n, base+1, cfg.weight())
		},
	}
}

// chain links base+1 — base+2 — … — base+n.
func chain(g *core.Graph, base, n int, cfg builderConfig) error {
	for i := 1; i < n; i++ {
		if err := g.AddEdge(base+i, base+i+1, cfg.weight()); err != nil {
			return err
		}
	}

	return nil
}
