// SPDX-License-Identifier: MIT
// Package: fairrand/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (stream name, budget, method) is attached with %w at the call
//     site, never baked into the sentinel text.
//   • Generation never panics; only option constructors (WithX) panic on
//     meaningless values.

package generator

import "errors"

// ErrRetryBudgetExceeded indicates that every candidate drawn within the
// retry budget completed a forbidden pattern. It signals an over-constrained
// filter or a domain too narrow for it, and is never retried internally.
// Usage: if errors.Is(err, ErrRetryBudgetExceeded) { /* relax the filter */ }.
var ErrRetryBudgetExceeded = errors.New("generator: retry budget exceeded")

// ErrNeedRandSource indicates a constructor called without a stream or raw
// generator. There is no process-wide default source.
var ErrNeedRandSource = errors.New("generator: random source is required")

// ErrOptionViolation indicates an option that is well-formed on its own but
// does not fit the generator it was passed to, e.g. WithFilter of a
// *filter.Filter[int] given to a bool generator.
var ErrOptionViolation = errors.New("generator: invalid option value")

// ErrBadCount indicates a negative count passed to GenerateN.
var ErrBadCount = errors.New("generator: count must be non-negative")

const (
	methodNew       = "New"
	methodGenerate  = "Generate"
	methodGenerateN = "GenerateN"
	methodSetRange  = "SetRange"
)
