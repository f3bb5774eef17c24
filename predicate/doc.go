// Package predicate provides the boolean tests used by pattern matchers and
// the builders that bind range-dependent tests to a value domain after the
// matcher already exists.
//
// Two builder kinds share the Builder interface:
//
//   - Identity wraps a ready predicate; SetRange is a no-op.
//   - Range    wraps a Factory(min, max); the predicate is built lazily on
//     the first Build after SetRange and cached until the range changes.
//     Build before SetRange fails with ErrRangeNotSet; SetRange with
//     max <= min fails with ErrInvalidRange.
//
// The package also holds the comparison catalog: pair comparisons for
// neighbour matchers (Equal, Greater, Within, ...), percentage-of-range
// factories for occurrence matchers (PercentBetween, BelowPercent, ...) and
// whole-list predicates for list matchers (DuplicateSequence, OppositeRun).
package predicate
