// SPDX-License-Identifier: MIT
// Package: roadmst/builder
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidWeightRange indicates WithWeightRange(min, max) with min < 0 or max < min.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrNilConstructor indicates a zero Constructor was passed to BuildGraph.
var ErrNilConstructor = errors.New("builder: nil constructor")
