// SPDX-License-Identifier: MIT
// Package: fairrand/pick
//
// pick.go - choosing list elements with an injected stream.
//
// Policy:
//   • The stream is always an argument; nothing reads a global source.
//   • Inputs are never mutated; results are fresh slices.
//   • Empty inputs are errors (ErrEmpty), not zero values.

package pick

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fairrand/source"
)

// Choose returns a uniformly chosen element.
func Choose[E any](s source.Stream, items []E) (E, error) {
	var zero E
	if len(items) == 0 {
		return zero, fmt.Errorf("Choose: %w", ErrEmpty)
	}

	return items[s.IntN(len(items))], nil
}

// ChooseN returns n elements chosen independently (with replacement).
func ChooseN[E any](s source.Stream, items []E, n int) ([]E, error) {
	if n < 0 {
		return nil, fmt.Errorf("ChooseN: n=%d: %w", n, ErrBadCount)
	}
	if len(items) == 0 && n > 0 {
		return nil, fmt.Errorf("ChooseN: %w", ErrEmpty)
	}
	out := make([]E, n)
	for i := range out {
		out[i] = items[s.IntN(len(items))]
	}

	return out, nil
}

// ChooseDistinct returns n elements at distinct positions, in random
// order. When n >= len(items) every element is returned, shuffled.
func ChooseDistinct[E any](s source.Stream, items []E, n int) ([]E, error) {
	if n < 0 {
		return nil, fmt.Errorf("ChooseDistinct: n=%d: %w", n, ErrBadCount)
	}
	pool := append([]E(nil), items...)
	n = min(n, len(pool))

	// Partial Fisher-Yates: the first n slots end up holding the sample.
	for i := 0; i < n; i++ {
		j := i + s.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n:n], nil
}

// Shuffle returns a random permutation of items.
func Shuffle[E any](s source.Stream, items []E) []E {
	out, _ := ChooseDistinct(s, items, len(items))

	return out
}

// ChooseWeighted returns an element with probability proportional to
// weight(element). Elements of weight 0 are never chosen.
func ChooseWeighted[E any](s source.Stream, items []E, weight func(E) float64) (E, error) {
	var zero E
	if len(items) == 0 {
		return zero, fmt.Errorf("ChooseWeighted: %w", ErrEmpty)
	}

	ws := make([]float64, len(items))
	sum := 0.0
	for i, it := range items {
		w := weight(it)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return zero, fmt.Errorf("ChooseWeighted: weight[%d]=%v: %w", i, w, ErrBadWeights)
		}
		ws[i] = w
		sum += w
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return zero, fmt.Errorf("ChooseWeighted: sum=%v: %w", sum, ErrBadWeights)
	}

	r := s.FloatRange(0, sum)
	last := 0
	for i, w := range ws {
		if w == 0 {
			continue
		}
		last = i
		if r < w {
			return items[i], nil
		}
		r -= w
	}

	// Rounding left r just above the final weight.
	return items[last], nil
}

// ChooseWhere returns a uniformly chosen element satisfying pred.
func ChooseWhere[E any](s source.Stream, items []E, pred func(E) bool) (E, error) {
	v, err := Choose(s, filterItems(items, pred))
	if err != nil {
		return v, fmt.Errorf("ChooseWhere: %w", err)
	}

	return v, nil
}

// ChoosePreferred returns an element satisfying pred when one exists, and
// any element otherwise.
func ChoosePreferred[E any](s source.Stream, items []E, pred func(E) bool) (E, error) {
	if preferred := filterItems(items, pred); len(preferred) > 0 {
		return Choose(s, preferred)
	}
	v, err := Choose(s, items)
	if err != nil {
		return v, fmt.Errorf("ChoosePreferred: %w", err)
	}

	return v, nil
}

// ChoosePreferredN returns up to n distinct elements, taking preferred ones
// first and filling up with the rest.
func ChoosePreferredN[E any](s source.Stream, items []E, pred func(E) bool, n int) ([]E, error) {
	if n < 0 {
		return nil, fmt.Errorf("ChoosePreferredN: n=%d: %w", n, ErrBadCount)
	}
	var preferred, rest []E
	for _, it := range items {
		if pred(it) {
			preferred = append(preferred, it)
		} else {
			rest = append(rest, it)
		}
	}

	out, _ := ChooseDistinct(s, preferred, n)
	if len(out) == n {
		return out, nil
	}
	fill, _ := ChooseDistinct(s, rest, n-len(out))

	return append(out, fill...), nil
}

func filterItems[E any](items []E, pred func(E) bool) []E {
	var out []E
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}

	return out
}
