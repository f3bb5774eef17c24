// SPDX-License-Identifier: MIT
// Package: fairrand/matcher
//
// occurrence.go - range-membership frequency over a window.
//
// The predicate depends on the value domain, so an Occurrence matcher is
// unusable until SetRange succeeds: MatchValue and MatchSequence return
// predicate.ErrRangeNotSet before that.

package matcher

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/fairrand/predicate"
	"github.com/katalvlaran/fairrand/window"
)

// Occurrence fires when the candidate satisfies the predicate and, counting
// it, matchCount values of the window do.
type Occurrence[T cmp.Ordered] struct {
	name        string
	matchCount  int
	minLookBack int
	maxLookBack int
	mode        AuditMode

	builder *predicate.Range[T, T]
	history *window.Window[T]
}

// NewOccurrence returns an unbound Occurrence matcher. It fails with
// ErrInvalidParameter unless 1 <= minLookBack <= maxLookBack and
// 1 <= matchCount <= maxLookBack.
func NewOccurrence[T cmp.Ordered](name string, matchCount, minLookBack, maxLookBack int,
	factory predicate.Factory[T, T], mode AuditMode) (*Occurrence[T], error) {
	if err := checkName(methodNewOccurrence, name); err != nil {
		return nil, err
	}
	if err := checkLookBack(methodNewOccurrence, minLookBack, maxLookBack); err != nil {
		return nil, wrap(methodNewOccurrence, name, err)
	}
	if matchCount < 1 || matchCount > maxLookBack {
		return nil, fmt.Errorf("%s(%q): matchCount=%d maxLookBack=%d: %w",
			methodNewOccurrence, name, matchCount, maxLookBack, ErrInvalidParameter)
	}
	if mode != AuditWindowed && mode != AuditWholeSequence {
		return nil, fmt.Errorf("%s(%q): audit mode %d: %w", methodNewOccurrence, name, mode, ErrInvalidParameter)
	}

	builder, err := predicate.NewRange(factory)
	if err != nil {
		return nil, wrap(methodNewOccurrence, name, err)
	}
	history, err := window.NewOccurrence[T](maxLookBack - 1)
	if err != nil {
		return nil, wrap(methodNewOccurrence, name, err)
	}

	return &Occurrence[T]{
		name:        name,
		matchCount:  matchCount,
		minLookBack: minLookBack,
		maxLookBack: maxLookBack,
		mode:        mode,
		builder:     builder,
		history:     history,
	}, nil
}

// SetRange binds the predicate to [min, max]. Fails with
// predicate.ErrInvalidRange unless min < max.
func (m *Occurrence[T]) SetRange(min, max T) error {
	return wrap(methodSetRange, m.name, m.builder.SetRange(min, max))
}

// MatchValue tests v against the live history and caches it.
func (m *Occurrence[T]) MatchValue(v T) (bool, error) {
	pred, err := m.builder.Build()
	if err != nil {
		return false, wrap(methodMatchValue, m.name, err)
	}

	return m.step(m.history, v, pred), nil
}

func (m *Occurrence[T]) step(h *window.Window[T], v T, pred func(T) bool) bool {
	flag := pred(v)
	h.Cache(v, flag)

	return flag && h.Matches()+1 >= m.matchCount
}

// RegisterValue commits the last tested candidate.
func (m *Occurrence[T]) RegisterValue(v T) error {
	return wrap(methodRegisterValue, m.name, m.history.Commit(v))
}

// MatchSequence audits values according to the matcher's AuditMode.
func (m *Occurrence[T]) MatchSequence(values []T) (bool, error) {
	if len(values) < m.minLookBack {
		return false, nil
	}
	pred, err := m.builder.Build()
	if err != nil {
		return false, wrap(methodMatchSequence, m.name, err)
	}

	if m.mode == AuditWholeSequence {
		hits := 0
		for _, v := range values {
			if pred(v) {
				hits++
			}
		}

		return hits >= m.matchCount, nil
	}

	h, err := window.NewOccurrence[T](m.maxLookBack - 1)
	if err != nil {
		return false, wrap(methodMatchSequence, m.name, err)
	}
	for _, v := range values {
		if m.step(h, v, pred) {
			return true, nil
		}
		if err := h.Commit(v); err != nil {
			return false, wrap(methodMatchSequence, m.name, err)
		}
	}

	return false, nil
}

// PatternName returns the pattern name.
func (m *Occurrence[T]) PatternName() string { return m.name }

// MinLookBack returns the shortest sequence the audit considers.
func (m *Occurrence[T]) MinLookBack() int { return m.minLookBack }

// MaxLookBack returns the window length including the candidate.
func (m *Occurrence[T]) MaxLookBack() int { return m.maxLookBack }

// Kind returns KindOccurrence.
func (m *Occurrence[T]) Kind() Kind { return KindOccurrence }

// AuditMode returns how MatchSequence counts.
func (m *Occurrence[T]) AuditMode() AuditMode { return m.mode }

// Matches returns the number of satisfying values in the live window.
func (m *Occurrence[T]) Matches() int { return m.history.Matches() }

// History returns a copy of the live window, oldest first.
func (m *Occurrence[T]) History() []T { return m.history.Snapshot() }

func (m *Occurrence[T]) sealed() {}
