// SPDX-License-Identifier: MIT
// Package: fairrand/matcher
//
// prototype.go - immutable matcher blueprints.
//
// A Prototype holds only constructor parameters. Build returns a fresh
// matcher with its own window and predicate builder, so two instances built
// from one prototype never share mutable state. Prototypes are values and
// are safe to share between goroutines.

package matcher

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/fairrand/predicate"
)

// Params are the numeric parameters of a prototype. Fields that do not apply
// to the prototype's kind are zero.
type Params struct {
	CheckAmount int       // Neighbour
	MatchAmount int       // Neighbour
	Offset      int       // Neighbour
	MatchCount  int       // Occurrence
	MinLookBack int       // Occurrence, List
	MaxLookBack int       // Occurrence, List
	Audit       AuditMode // Occurrence
}

// Prototype is a blueprint for one kind of matcher.
type Prototype[T comparable] struct {
	name   string
	kind   Kind
	params Params
	build  func(name string, p Params) (Matcher[T], error)
}

// NeighbourPrototype describes a Neighbour matcher.
func NeighbourPrototype[T comparable](name string, checkAmount, matchAmount, offset int,
	compare func(predicate.Pair[T]) bool) Prototype[T] {
	return Prototype[T]{
		name:   name,
		kind:   KindNeighbour,
		params: Params{CheckAmount: checkAmount, MatchAmount: matchAmount, Offset: offset},
		build: func(name string, p Params) (Matcher[T], error) {
			m, err := NewNeighbour(name, p.CheckAmount, p.MatchAmount, p.Offset, compare)
			if err != nil {
				return nil, err
			}

			return m, nil
		},
	}
}

// OccurrencePrototype describes an Occurrence matcher auditing in
// AuditWindowed mode.
func OccurrencePrototype[T cmp.Ordered](name string, matchCount, minLookBack, maxLookBack int,
	factory predicate.Factory[T, T]) Prototype[T] {
	return Prototype[T]{
		name: name,
		kind: KindOccurrence,
		params: Params{
			MatchCount:  matchCount,
			MinLookBack: minLookBack,
			MaxLookBack: maxLookBack,
			Audit:       AuditWindowed,
		},
		build: func(name string, p Params) (Matcher[T], error) {
			m, err := NewOccurrence(name, p.MatchCount, p.MinLookBack, p.MaxLookBack, factory, p.Audit)
			if err != nil {
				return nil, err
			}

			return m, nil
		},
	}
}

// ListPrototype describes a List matcher.
func ListPrototype[T comparable](name string, minLookBack, maxLookBack int, pred func([]T) bool) Prototype[T] {
	return Prototype[T]{
		name:   name,
		kind:   KindList,
		params: Params{MinLookBack: minLookBack, MaxLookBack: maxLookBack},
		build: func(name string, p Params) (Matcher[T], error) {
			m, err := NewList(name, p.MinLookBack, p.MaxLookBack, pred)
			if err != nil {
				return nil, err
			}

			return m, nil
		},
	}
}

// Name returns the pattern name.
func (p Prototype[T]) Name() string { return p.name }

// Kind returns the matcher kind.
func (p Prototype[T]) Kind() Kind { return p.kind }

// Params returns a copy of the parameters.
func (p Prototype[T]) Params() Params { return p.params }

// WithAudit returns a copy whose Occurrence matchers audit in mode. It has no
// effect on other kinds.
func (p Prototype[T]) WithAudit(mode AuditMode) Prototype[T] {
	if p.kind == KindOccurrence {
		p.params.Audit = mode
	}

	return p
}

// WithName returns a copy with a different pattern name.
func (p Prototype[T]) WithName(name string) Prototype[T] {
	p.name = name

	return p
}

// Build instantiates a fresh matcher.
func (p Prototype[T]) Build() (Matcher[T], error) {
	if p.build == nil {
		return nil, fmt.Errorf("%s: zero prototype: %w", methodPrototypeBuild, ErrInvalidParameter)
	}
	m, err := p.build(p.name, p.params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPrototypeBuild, err)
	}

	return m, nil
}

// Validate reports whether Build would succeed.
func (p Prototype[T]) Validate() error {
	_, err := p.Build()

	return err
}

// BuildAll instantiates one fresh matcher per prototype, in order.
func BuildAll[T comparable](protos ...Prototype[T]) ([]Matcher[T], error) {
	out := make([]Matcher[T], 0, len(protos))
	for i, p := range protos {
		m, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("BuildAll: prototype %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}
