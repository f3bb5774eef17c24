package predicate

import (
	"cmp"
	"fmt"
)

// Number is the set of scalar types that percentage and distance
// predicates can do arithmetic on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Pair holds a candidate value and the earlier value it is compared to.
type Pair[T any] struct {
	Value     T // the newer value
	Neighbour T // the value offset steps before it
}

// Equal reports whether both values of p are equal.
func Equal[T comparable](p Pair[T]) bool {
	return p.Value == p.Neighbour
}

// NotEqual reports whether the values of p differ.
func NotEqual[T comparable](p Pair[T]) bool {
	return p.Value != p.Neighbour
}

// Greater reports whether the newer value is greater than its neighbour.
func Greater[T cmp.Ordered](p Pair[T]) bool {
	return cmp.Compare(p.Value, p.Neighbour) > 0
}

// Less reports whether the newer value is less than its neighbour.
func Less[T cmp.Ordered](p Pair[T]) bool {
	return cmp.Compare(p.Value, p.Neighbour) < 0
}

// Within returns a pair test that is true when the two values are closer
// than epsilon. Panics if epsilon is not positive.
func Within[T Number](epsilon T) func(Pair[T]) bool {
	if epsilon <= 0 {
		panic(fmt.Sprintf("predicate: Within(%v): epsilon must be > 0", epsilon))
	}

	return func(p Pair[T]) bool {
		d := p.Value - p.Neighbour
		if d < 0 {
			d = -d
		}

		return d < epsilon
	}
}
