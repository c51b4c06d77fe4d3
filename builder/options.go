// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Deterministic defaults:
//   • seed   = DefaultSeed
//   • weight = uniform integer in [DefaultMinWeight, DefaultMaxWeight]

package builder

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultSeed      int64 = 1
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 100
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors only read it.
type builderConfig struct {
	rng       *rand.Rand
	minWeight int64
	maxWeight int64
}

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// WithSeed seeds a fresh *rand.Rand for weights and random topology.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightRange draws edge weights uniformly from [min, max].
// An invalid range surfaces as ErrInvalidWeightRange from BuildGraph, because the
// values usually come straight from command-line flags.
func WithWeightRange(min, max int64) Option {
	return func(c *builderConfig) {
		c.minWeight = min
		c.maxWeight = max
	}
}

// newBuilderConfig applies opts over the defaults, later options winning.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:       rand.New(rand.NewSource(DefaultSeed)),
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) validate() error {
	if c.minWeight < 0 || c.maxWeight < c.minWeight {
		return fmt.Errorf("min=%d max=%d: %w", c.minWeight, c.maxWeight, ErrInvalidWeightRange)
	}

	return nil
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	if c.maxWeight == c.minWeight {
		return c.minWeight
	}

	return c.minWeight + c.rng.Int63n(c.maxWeight-c.minWeight+1)
}
