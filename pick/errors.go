package pick

import "errors"

// ErrEmpty indicates a choice from an empty list, or from a list with no
// element satisfying the predicate.
var ErrEmpty = errors.New("pick: nothing to choose from")

// ErrBadWeights indicates a negative, NaN or infinite weight, or weights
// that sum to zero.
var ErrBadWeights = errors.New("pick: invalid weights")

// ErrBadCount indicates a negative count or retry budget.
var ErrBadCount = errors.New("pick: count must be non-negative")
