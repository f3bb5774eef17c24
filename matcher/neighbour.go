// SPDX-License-Identifier: MIT
// Package: fairrand/matcher
//
// neighbour.go - pairwise displaced comparison.
//
// A Neighbour matcher compares each value with the value offset steps before
// it. Every comparison that holds sets the newest slot's flag; the pattern
// fires when the candidate's own comparison holds and, together with it,
// matchAmount comparisons inside the look-back window hold.
//
// Look-back:
//   • minLookBack = matchAmount + offset (shortest sequence that can fire).
//   • maxLookBack = checkAmount + offset; the live window keeps
//     maxLookBack-1 values, the candidate being the last one.

package matcher

import (
	"fmt"

	"github.com/katalvlaran/fairrand/predicate"
	"github.com/katalvlaran/fairrand/window"
)

// Neighbour is the pairwise displaced comparison matcher.
type Neighbour[T comparable] struct {
	name        string
	checkAmount int
	matchAmount int
	offset      int

	builder predicate.Builder[T, predicate.Pair[T]]
	history *window.Window[T]
}

// NewNeighbour returns a matcher that fires when matchAmount of the last
// checkAmount comparisons between a value and the one offset steps earlier
// hold. It fails with ErrInvalidParameter unless offset >= 1 and
// 1 <= matchAmount <= checkAmount.
func NewNeighbour[T comparable](name string, checkAmount, matchAmount, offset int,
	compare func(predicate.Pair[T]) bool) (*Neighbour[T], error) {
	if err := checkName(methodNewNeighbour, name); err != nil {
		return nil, err
	}
	if offset < 1 {
		return nil, fmt.Errorf("%s(%q): offset=%d: %w", methodNewNeighbour, name, offset, ErrInvalidParameter)
	}
	if matchAmount < 1 || matchAmount > checkAmount {
		return nil, fmt.Errorf("%s(%q): matchAmount=%d checkAmount=%d: %w",
			methodNewNeighbour, name, matchAmount, checkAmount, ErrInvalidParameter)
	}

	builder, err := predicate.NewIdentity[T](compare)
	if err != nil {
		return nil, wrap(methodNewNeighbour, name, err)
	}

	m := &Neighbour[T]{
		name:        name,
		checkAmount: checkAmount,
		matchAmount: matchAmount,
		offset:      offset,
		builder:     builder,
	}
	if m.history, err = m.newWindow(); err != nil {
		return nil, wrap(methodNewNeighbour, name, err)
	}

	return m, nil
}

func (m *Neighbour[T]) newWindow() (*window.Window[T], error) {
	return window.NewNeighbour[T](m.MaxLookBack()-1, m.offset)
}

// SetRange is forwarded to the comparison builder, which ignores it.
func (m *Neighbour[T]) SetRange(min, max T) error {
	return wrap(methodSetRange, m.name, m.builder.SetRange(min, max))
}

// MatchValue tests v against the live history and caches it.
func (m *Neighbour[T]) MatchValue(v T) (bool, error) {
	compare, err := m.builder.Build()
	if err != nil {
		return false, wrap(methodMatchValue, m.name, err)
	}

	return m.step(m.history, v, compare), nil
}

// step computes the local flag of v against h, caches it, and reports
// whether the threshold is reached.
func (m *Neighbour[T]) step(h *window.Window[T], v T, compare func(predicate.Pair[T]) bool) bool {
	flag := false
	if n := h.Len(); n >= m.offset {
		partner, _ := h.At(n - m.offset)
		flag = compare(predicate.Pair[T]{Value: v, Neighbour: partner})
	}
	h.Cache(v, flag)

	return flag && h.Matches()+1 >= m.matchAmount
}

// RegisterValue commits the last tested candidate.
func (m *Neighbour[T]) RegisterValue(v T) error {
	return wrap(methodRegisterValue, m.name, m.history.Commit(v))
}

// MatchSequence replays values on a scratch window.
func (m *Neighbour[T]) MatchSequence(values []T) (bool, error) {
	if len(values) < m.MinLookBack() {
		return false, nil
	}
	compare, err := m.builder.Build()
	if err != nil {
		return false, wrap(methodMatchSequence, m.name, err)
	}
	h, err := m.newWindow()
	if err != nil {
		return false, wrap(methodMatchSequence, m.name, err)
	}

	for _, v := range values {
		if m.step(h, v, compare) {
			return true, nil
		}
		if err := h.Commit(v); err != nil {
			return false, wrap(methodMatchSequence, m.name, err)
		}
	}

	return false, nil
}

// PatternName returns the pattern name.
func (m *Neighbour[T]) PatternName() string { return m.name }

// MinLookBack returns matchAmount + offset.
func (m *Neighbour[T]) MinLookBack() int { return m.matchAmount + m.offset }

// MaxLookBack returns checkAmount + offset.
func (m *Neighbour[T]) MaxLookBack() int { return m.checkAmount + m.offset }

// Kind returns KindNeighbour.
func (m *Neighbour[T]) Kind() Kind { return KindNeighbour }

// Matches returns the number of holding comparisons in the live window.
func (m *Neighbour[T]) Matches() int { return m.history.Matches() }

// History returns a copy of the live window, oldest first.
func (m *Neighbour[T]) History() []T { return m.history.Snapshot() }

func (m *Neighbour[T]) sealed() {}
