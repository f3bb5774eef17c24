package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/predicate"
)

// prototypes resolves a stream's pattern list against its catalog. Custom
// entries are built by custom.
func prototypes[T comparable](s Stream, defaults []matcher.Prototype[T],
	custom func(Pattern) (matcher.Prototype[T], error)) ([]matcher.Prototype[T], error) {
	if s.Unfiltered {
		return []matcher.Prototype[T]{}, nil
	}
	if len(s.Patterns) == 0 {
		return defaults, nil
	}

	out := make([]matcher.Prototype[T], 0, len(s.Patterns))
	for _, p := range s.Patterns {
		var (
			proto matcher.Prototype[T]
			err   error
		)
		if p.Kind == "" {
			proto, err = catalog.Find(defaults, p.Name)
		} else {
			proto, err = custom(p)
			if err == nil {
				err = proto.Validate()
			}
		}
		if err != nil {
			return nil, fmt.Errorf("stream %q: pattern %q: %w", s.Name, p.Name, err)
		}
		out = append(out, proto)
	}

	return out, nil
}

func boolPattern(p Pattern) (matcher.Prototype[bool], error) {
	kind, err := matcher.ParseKind(p.Kind)
	if err != nil {
		return matcher.Prototype[bool]{}, err
	}
	switch kind {
	case matcher.KindNeighbour:
		var cmpFn func(predicate.Pair[bool]) bool
		switch p.Compare {
		case "", "equal":
			cmpFn = predicate.Equal[bool]
		case "not_equal":
			cmpFn = predicate.NotEqual[bool]
		default:
			return matcher.Prototype[bool]{}, fmt.Errorf("compare %q: %w", p.Compare, ErrUnsupportedPattern)
		}
		return matcher.NeighbourPrototype(p.Name, p.Check, p.Match, p.Offset, cmpFn), nil
	case matcher.KindList:
		return listPattern[bool](p)
	default:
		return matcher.Prototype[bool]{}, fmt.Errorf("kind %q: %w", p.Kind, ErrUnsupportedPattern)
	}
}

func intPattern(p Pattern) (matcher.Prototype[int], error) {
	return numberPattern(p, func(lo, hi float64) predicate.Factory[int, int] {
		return predicate.IntPercentBetween(p.MinRangeSize, int(math.Round(lo*100)), int(math.Round(hi*100)))
	})
}

func floatPattern(p Pattern) (matcher.Prototype[float64], error) {
	return numberPattern(p, predicate.PercentBetween[float64])
}

// numberPattern builds custom patterns for numeric streams; band turns the
// configured [low, high] fractions into an occurrence factory.
func numberPattern[T predicate.Number](p Pattern,
	band func(lo, hi float64) predicate.Factory[T, T]) (matcher.Prototype[T], error) {
	var zero matcher.Prototype[T]
	kind, err := matcher.ParseKind(p.Kind)
	if err != nil {
		return zero, err
	}

	switch kind {
	case matcher.KindNeighbour:
		var cmpFn func(predicate.Pair[T]) bool
		switch p.Compare {
		case "", "equal":
			cmpFn = predicate.Equal[T]
		case "not_equal":
			cmpFn = predicate.NotEqual[T]
		case "greater":
			cmpFn = predicate.Greater[T]
		case "less":
			cmpFn = predicate.Less[T]
		case "within":
			tol := T(p.Tolerance)
			if tol <= 0 {
				return zero, fmt.Errorf("tolerance %v: %w", p.Tolerance, matcher.ErrInvalidParameter)
			}
			cmpFn = predicate.Within(tol)
		}
		return matcher.NeighbourPrototype(p.Name, p.Check, p.Match, p.Offset, cmpFn), nil

	case matcher.KindOccurrence:
		proto := matcher.OccurrencePrototype(p.Name, p.Count, p.MinLookBack, p.MaxLookBack, band(p.Low, p.High))
		if p.Audit == matcher.AuditWholeSequence.String() {
			proto = proto.WithAudit(matcher.AuditWholeSequence)
		}
		return proto, nil

	default:
		return listPattern[T](p)
	}
}

func listPattern[T comparable](p Pattern) (matcher.Prototype[T], error) {
	switch p.Rule {
	case "opposite":
		return matcher.ListPrototype(p.Name, p.MinLookBack, p.MaxLookBack, predicate.OppositeRun[T]), nil
	case "duplicate":
		if p.Length < 1 || p.Repeats < 1 {
			return matcher.Prototype[T]{}, fmt.Errorf("duplicate length=%d repeats=%d: %w",
				p.Length, p.Repeats, matcher.ErrInvalidParameter)
		}
		return matcher.ListPrototype(p.Name, p.MinLookBack, p.MaxLookBack,
			predicate.DuplicateSequence[T](p.Length, p.Repeats)), nil
	default:
		return matcher.Prototype[T]{}, fmt.Errorf("list rule %q: %w", p.Rule, matcher.ErrInvalidParameter)
	}
}
