// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// api.go — Constructor type and the BuildGraph orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmst/core"
)

// Constructor describes one block of vertices and how to wire edges between them.
// Values come from Path, Cycle, Grid, RandomConnected and Isolated; the zero value
// is rejected by BuildGraph.
type Constructor struct {
	name string
	n    int   // vertices claimed by this block
	err  error // parameter validation result, reported by BuildGraph
	emit func(g *core.Graph, base int, cfg builderConfig) error
}

// Vertices returns how many vertices the constructor occupies (0 if invalid).
func (c Constructor) Vertices() int { return c.n }

// BuildGraph resolves opts, allocates one graph large enough for every constructor and
// runs them in order. Constructor i owns vertex IDs base_i+1 .. base_i+n_i, where
// base_i is the number of vertices claimed by constructors 0..i-1. Blocks never share
// an edge, so k constructors produce at least k components.
//
// Errors: ErrInvalidWeightRange, ErrNilConstructor, or the constructor's own sentinel
// (ErrTooFewVertices), wrapped as "BuildGraph: ...: %w".
//
// Complexity: O(V + E) plus RNG draws.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	total := 0
	for i, c := range cons {
		if c.emit == nil {
			return nil, fmt.Errorf("BuildGraph: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", c.err)
		}
		total += c.n
	}

	g, err := core.NewGraph(total)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	base := 0
	for _, c := range cons {
		if err := c.emit(g, base, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %s: %w", c.name, err)
		}
		base += c.n
	}

	return g, nil
}

// invalid builds a Constructor that only carries a validation error.
func invalid(name string, err error) Constructor {
	return Constructor{
		name: name,
		err:  fmt.Errorf("%s: %w", name, err),
		emit: func(*core.Graph, int, builderConfig) error { return nil },
	}
}
