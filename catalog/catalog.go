// SPDX-License-Identifier: MIT
// Package: fairrand/catalog
//
// catalog.go - default pattern lists per value type.
//
// Every function returns a fresh slice of prototypes; callers may reorder,
// trim or extend it without affecting other callers. Prototypes are
// immutable, so building matchers from them never shares history.

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/predicate"
)

// ErrUnknownPattern indicates a pattern name missing from a catalog.
var ErrUnknownPattern = errors.New("catalog: unknown pattern")

// Bool returns the default boolean patterns.
func Bool() []matcher.Prototype[bool] {
	return []matcher.Prototype[bool]{
		matcher.NeighbourPrototype("4 in a row", 3, 3, 1, predicate.Equal[bool]),
		matcher.NeighbourPrototype("Duplicate sequence", 4, 4, 4, predicate.Equal[bool]),
		matcher.ListPrototype("Opposite sequence", 5, 5, predicate.OppositeRun[bool]),
	}
}

// Int returns the default integer patterns. The range-heavy patterns never
// fire on domains narrower than ten values.
func Int() []matcher.Prototype[int] {
	return []matcher.Prototype[int]{
		matcher.NeighbourPrototype("Repeating Number", 1, 1, 1, predicate.Equal[int]),
		matcher.NeighbourPrototype("Alternated Number", 1, 1, 2, predicate.Equal[int]),
		matcher.NeighbourPrototype("Ascending Sequence", 3, 3, 1, predicate.Greater[int]),
		matcher.NeighbourPrototype("Descending Sequence", 3, 3, 1, predicate.Less[int]),
		matcher.ListPrototype("Repeating 2 numbers", 4, 9, predicate.DuplicateSequence[int](2, 1)),
		matcher.ListPrototype("Too Many of single number", 4, 10, predicate.DuplicateSequence[int](1, 3)),
		matcher.OccurrencePrototype("Bottom heavy", 7, 7, 10, predicate.IntPercentBetween(10, 0, 30)),
		matcher.OccurrencePrototype("Top Heavy", 7, 7, 10, predicate.IntPercentBetween(10, 70, 100)),
	}
}

// Float returns the default floating-point patterns.
func Float() []matcher.Prototype[float64] {
	return []matcher.Prototype[float64]{
		matcher.NeighbourPrototype("Too small difference from last", 1, 1, 1, predicate.Within(0.02)),
		matcher.NeighbourPrototype("3 values too close", 2, 2, 1, predicate.Within(0.1)),
		matcher.NeighbourPrototype("Ascending Sequence", 4, 4, 1, predicate.Greater[float64]),
		matcher.NeighbourPrototype("Descending Sequence", 4, 4, 1, predicate.Less[float64]),
		matcher.OccurrencePrototype("Too Many in bottom of range", 7, 7, 10, predicate.PercentBetween[float64](0, 0.3)),
		matcher.OccurrencePrototype("Too Many in top of range", 7, 7, 10, predicate.PercentBetween[float64](0.7, 1)),
	}
}

// Gaussian returns the Float patterns followed by patterns about the
// distance from the mean. The domain of a Gaussian stream is mean ± 3σ, so
// 0.5 is the mean and 0.17/0.83 sit one σ inside the domain edges.
func Gaussian() []matcher.Prototype[float64] {
	return append(Float(),
		matcher.OccurrencePrototype("Consecutive Above Mean", 4, 1, 4, predicate.AbovePercent[float64](0.5)),
		matcher.OccurrencePrototype("Consecutive Below Mean", 4, 1, 4, predicate.BelowPercent[float64](0.5)),
		matcher.OccurrencePrototype("Too Few In First Deviation", 4, 1, 4, predicate.AnyOf(
			predicate.BelowPercent[float64](0.33),
			predicate.AbovePercent[float64](0.67),
		)),
		matcher.OccurrencePrototype("Too Many In Third Deviation", 4, 1, 4, predicate.AnyOf(
			predicate.BelowPercent[float64](0.17),
			predicate.AbovePercent[float64](0.83),
		)),
	)
}

// Find returns the prototype named name, compared case-insensitively.
func Find[T comparable](protos []matcher.Prototype[T], name string) (matcher.Prototype[T], error) {
	for _, p := range protos {
		if strings.EqualFold(p.Name(), strings.TrimSpace(name)) {
			return p, nil
		}
	}

	return matcher.Prototype[T]{}, fmt.Errorf("Find(%q): %w", name, ErrUnknownPattern)
}

// Select returns the named prototypes in the given order.
func Select[T comparable](protos []matcher.Prototype[T], names ...string) ([]matcher.Prototype[T], error) {
	out := make([]matcher.Prototype[T], 0, len(names))
	for _, n := range names {
		p, err := Find(protos, n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Names lists prototype names in order.
func Names[T comparable](protos []matcher.Prototype[T]) []string {
	out := make([]string, len(protos))
	for i, p := range protos {
		out[i] = p.Name()
	}

	return out
}
