// SPDX-License-Identifier: MIT
// Package: fairrand/filter
//
// filter.go - an ordered, fixed set of pattern matchers.
//
// Contract:
//   • MatchCandidate calls MatchValue on every matcher, even after one has
//     already matched, so each matcher holds a cached candidate for the
//     following RegisterValue.
//   • RegisterValue must be called once per accepted value, with the value
//     most recently passed to MatchCandidate.
//   • ValidateSequence and Violations never touch live state.
//   • Broadcast failures are combined with errors.Join.

package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fairrand/matcher"
)

// Filter aggregates matchers and answers whether a candidate completes any
// forbidden pattern. An empty Filter accepts everything.
type Filter[T comparable] struct {
	matchers []matcher.Matcher[T]
	last     []string
}

// New returns a Filter over matchers, in order. The slice is copied.
func New[T comparable](matchers ...matcher.Matcher[T]) (*Filter[T], error) {
	for i, m := range matchers {
		if m == nil {
			return nil, fmt.Errorf("New: matcher %d: %w", i, ErrNilMatcher)
		}
	}

	return &Filter[T]{matchers: append([]matcher.Matcher[T](nil), matchers...)}, nil
}

// FromPrototypes builds one fresh matcher per prototype and wraps them.
func FromPrototypes[T comparable](protos ...matcher.Prototype[T]) (*Filter[T], error) {
	ms, err := matcher.BuildAll(protos...)
	if err != nil {
		return nil, fmt.Errorf("FromPrototypes: %w", err)
	}

	return New(ms...)
}

// SetRange forwards the value domain to every matcher.
func (f *Filter[T]) SetRange(min, max T) error {
	var errs []error
	for _, m := range f.matchers {
		errs = append(errs, m.SetRange(min, max))
	}

	return errors.Join(errs...)
}

// MatchCandidate reports whether v completes any pattern. Names of the
// patterns that fired are available from LastMatches until the next call.
func (f *Filter[T]) MatchCandidate(v T) (bool, error) {
	f.last = f.last[:0]
	var errs []error
	for _, m := range f.matchers {
		hit, err := m.MatchValue(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if hit {
			f.last = append(f.last, m.PatternName())
		}
	}
	if err := errors.Join(errs...); err != nil {
		return false, err
	}

	return len(f.last) > 0, nil
}

// LastMatches returns the pattern names that fired on the last candidate.
func (f *Filter[T]) LastMatches() []string {
	return append([]string(nil), f.last...)
}

// RegisterValue commits v to every matcher.
func (f *Filter[T]) RegisterValue(v T) error {
	var errs []error
	for _, m := range f.matchers {
		errs = append(errs, m.RegisterValue(v))
	}

	return errors.Join(errs...)
}

// ValidateSequence reports whether values contain none of the patterns.
func (f *Filter[T]) ValidateSequence(values []T) (bool, error) {
	names, err := f.Violations(values)
	if err != nil {
		return false, err
	}

	return len(names) == 0, nil
}

// Violations returns the names of the patterns that fire somewhere in values.
func (f *Filter[T]) Violations(values []T) ([]string, error) {
	var (
		names []string
		errs  []error
	)
	for _, m := range f.matchers {
		hit, err := m.MatchSequence(values)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if hit {
			names = append(names, m.PatternName())
		}
	}

	return names, errors.Join(errs...)
}

// MinLookBack is the smallest MinLookBack among the matchers, 0 when empty.
func (f *Filter[T]) MinLookBack() int {
	if len(f.matchers) == 0 {
		return 0
	}
	lo := f.matchers[0].MinLookBack()
	for _, m := range f.matchers[1:] {
		lo = min(lo, m.MinLookBack())
	}

	return lo
}

// MaxLookBack is the largest MaxLookBack among the matchers, 0 when empty.
func (f *Filter[T]) MaxLookBack() int {
	hi := 0
	for _, m := range f.matchers {
		hi = max(hi, m.MaxLookBack())
	}

	return hi
}

// Patterns returns the pattern names in filter order.
func (f *Filter[T]) Patterns() []string {
	names := make([]string, len(f.matchers))
	for i, m := range f.matchers {
		names[i] = m.PatternName()
	}

	return names
}

// Len returns the number of matchers.
func (f *Filter[T]) Len() int { return len(f.matchers) }
