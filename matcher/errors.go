// SPDX-License-Identifier: MIT
// Package: fairrand/matcher
//
// errors.go - sentinel errors and method tags for the matcher package.
//
// Error policy:
//   • Constructors validate look-back parameters and return ErrInvalidParameter.
//   • Errors from the window and predicate packages are wrapped with %w and
//     the pattern name, so errors.Is still sees window.ErrProtocolViolation
//     or predicate.ErrRangeNotSet.

package matcher

import "errors"

// ErrInvalidParameter indicates look-back or threshold parameters that can
// never describe a pattern (offset < 1, matchAmount > checkAmount, ...).
var ErrInvalidParameter = errors.New("matcher: invalid parameter")

const (
	methodNewNeighbour   = "NewNeighbour"
	methodNewOccurrence  = "NewOccurrence"
	methodNewList        = "NewList"
	methodMatchValue     = "MatchValue"
	methodRegisterValue  = "RegisterValue"
	methodMatchSequence  = "MatchSequence"
	methodSetRange       = "SetRange"
	methodPrototypeBuild = "Prototype.Build"
)
