// SPDX-License-Identifier: MIT
// Package: fairrand/predicate
//
// builder.go - Identity and Range predicate builders.
//
// Contract:
//   • Identity.Build never fails once constructed.
//   • Range is two-phase: unbound until SetRange succeeds. Build on an unbound
//     Range returns ErrRangeNotSet; nothing silently defaults.
//   • Range calls its Factory at most once per distinct (min, max).

package predicate

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a domain with max <= min (or a NaN bound), on
// which percentage-of-range predicates are undefined.
var ErrInvalidRange = errors.New("predicate: range max must be greater than min")

// ErrRangeNotSet indicates Build was called on a range-bound builder before
// any range was supplied.
var ErrRangeNotSet = errors.New("predicate: range not set")

// ErrNilPredicate indicates a nil predicate or factory was supplied.
var ErrNilPredicate = errors.New("predicate: nil predicate")

// Builder produces the predicate a matcher applies. T is the value type of
// the domain bounds, P the predicate parameter (a value, or a Pair).
type Builder[T, P any] interface {
	// SetRange supplies the value domain. Builders that do not depend on it
	// ignore the call.
	SetRange(min, max T) error
	// Build returns the concrete predicate.
	Build() (func(P) bool, error)
}

// Factory turns a value domain into a predicate.
type Factory[T, P any] func(min, max T) func(P) bool

// Identity is a Builder around a fixed predicate.
type Identity[T, P any] struct {
	pred func(P) bool
}

// NewIdentity wraps pred. It fails with ErrNilPredicate on nil.
func NewIdentity[T, P any](pred func(P) bool) (*Identity[T, P], error) {
	if pred == nil {
		return nil, fmt.Errorf("NewIdentity: %w", ErrNilPredicate)
	}

	return &Identity[T, P]{pred: pred}, nil
}

// SetRange is a no-op.
func (b *Identity[T, P]) SetRange(_, _ T) error { return nil }

// Build returns the wrapped predicate.
func (b *Identity[T, P]) Build() (func(P) bool, error) { return b.pred, nil }

// Range is a Builder whose predicate depends on a runtime value domain.
type Range[T cmp.Ordered, P any] struct {
	factory Factory[T, P]

	min, max T
	bound    bool

	built  func(P) bool
	builds int
}

// NewRange returns an unbound range builder around factory.
func NewRange[T cmp.Ordered, P any](factory Factory[T, P]) (*Range[T, P], error) {
	if factory == nil {
		return nil, fmt.Errorf("NewRange: %w", ErrNilPredicate)
	}

	return &Range[T, P]{factory: factory}, nil
}

// SetRange validates and stores the domain. A different domain invalidates
// the cached predicate; the same domain keeps it. On error the previous
// binding, if any, is left untouched.
func (b *Range[T, P]) SetRange(min, max T) error {
	if isNaN(min) || isNaN(max) || !cmp.Less(min, max) {
		return fmt.Errorf("SetRange: [%v, %v]: %w", min, max, ErrInvalidRange)
	}
	if b.bound && b.min == min && b.max == max {
		return nil
	}

	b.min, b.max = min, max
	b.bound = true
	b.built = nil

	return nil
}

// Build returns the predicate for the current domain, constructing it on
// first use.
func (b *Range[T, P]) Build() (func(P) bool, error) {
	if !b.bound {
		return nil, fmt.Errorf("Build: %w", ErrRangeNotSet)
	}
	if b.built == nil {
		b.built = b.factory(b.min, b.max)
		b.builds++
		if b.built == nil {
			return nil, fmt.Errorf("Build: factory returned nil for [%v, %v]: %w", b.min, b.max, ErrNilPredicate)
		}
	}

	return b.built, nil
}

// Bounds returns the current domain; ok is false while unbound.
func (b *Range[T, P]) Bounds() (min, max T, ok bool) {
	return b.min, b.max, b.bound
}

// Builds reports how many times the factory has been invoked.
func (b *Range[T, P]) Builds() int { return b.builds }

// isNaN reports whether x is a floating-point NaN; always false for other
// ordered types.
func isNaN[T cmp.Ordered](x T) bool {
	return x != x
}
