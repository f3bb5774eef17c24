// SPDX-License-Identifier: MIT
// Package: fairrand/window
//
// errors.go - sentinel errors for the window package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached at the call site with %w.

package window

import "errors"

// ErrProtocolViolation indicates that Commit was called with a value that was
// not the candidate most recently passed to Cache (or with nothing cached).
// It is an internal invariant breach of the caller and is never retried.
var ErrProtocolViolation = errors.New("window: commit of an untested value")

// ErrBadCapacity indicates a negative capacity.
var ErrBadCapacity = errors.New("window: capacity must be non-negative")

// ErrBadOffset indicates a neighbour offset smaller than one.
var ErrBadOffset = errors.New("window: neighbour offset must be positive")

// Method tags used as error prefixes.
const (
	methodNew    = "New"
	methodCommit = "Commit"
)
