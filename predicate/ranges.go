// SPDX-License-Identifier: MIT
// Package: fairrand/predicate
//
// ranges.go - percentage-of-range factories.
//
// A value's position inside [min, max] is the fraction (v-min)/(max-min):
// 0 at min, 1 at max, outside [0,1] for values beyond the domain (possible
// for Gaussian streams, whose domain is only mean ± 3σ).
//
// Factories are only ever called with min < max; Range enforces this.

package predicate

import "fmt"

// PercentOf returns the fractional position of value inside [min, max].
func PercentOf[T Number](value, min, max T) float64 {
	return (float64(value) - float64(min)) / (float64(max) - float64(min))
}

// PercentBetween matches values whose fractional position lies in [lo, hi].
func PercentBetween[T Number](lo, hi float64) Factory[T, T] {
	checkBand("PercentBetween", lo, hi)

	return func(min, max T) func(T) bool {
		return func(v T) bool {
			p := PercentOf(v, min, max)
			return p >= lo && p <= hi
		}
	}
}

// BelowPercent matches values whose fractional position is below p.
func BelowPercent[T Number](p float64) Factory[T, T] {
	return func(min, max T) func(T) bool {
		return func(v T) bool {
			return PercentOf(v, min, max) < p
		}
	}
}

// AbovePercent matches values whose fractional position is above p.
func AbovePercent[T Number](p float64) Factory[T, T] {
	return func(min, max T) func(T) bool {
		return func(v T) bool {
			return PercentOf(v, min, max) > p
		}
	}
}

// IntPercentBetween matches integers whose whole-number percentage
// (0..100, truncated) inside [min, max] lies in [lo, hi]. Domains narrower
// than minRangeSize never match: on a d6 "bottom 30%" is a single face and
// the pattern is meaningless.
func IntPercentBetween(minRangeSize, lo, hi int) Factory[int, int] {
	checkBand("IntPercentBetween", float64(lo), float64(hi))

	return func(min, max int) func(int) bool {
		if max-min < minRangeSize {
			return func(int) bool { return false }
		}

		return func(v int) bool {
			p := int(PercentOf(v, min, max) * 100)
			return p >= lo && p <= hi
		}
	}
}

// AnyOf combines factories into one whose predicate is true when any of the
// combined predicates is true. Each factory is invoked once per domain.
func AnyOf[T, P any](factories ...Factory[T, P]) Factory[T, P] {
	for i, f := range factories {
		if f == nil {
			panic(fmt.Sprintf("predicate: AnyOf: nil factory at index %d", i))
		}
	}

	return func(min, max T) func(P) bool {
		preds := make([]func(P) bool, len(factories))
		for i, f := range factories {
			preds[i] = f(min, max)
		}

		return func(v P) bool {
			for _, p := range preds {
				if p(v) {
					return true
				}
			}

			return false
		}
	}
}

// checkBand panics on an inverted band; option-style constructors fail fast.
func checkBand(method string, lo, hi float64) {
	if lo > hi {
		panic(fmt.Sprintf("predicate: %s: lo=%v > hi=%v", method, lo, hi))
	}
}
