package predicate

import "fmt"

// DuplicateSequence returns a list predicate that is true when the final
// length values of the list already occurred at least count times earlier
// in the list (occurrences may overlap the final run itself).
//
// Example: DuplicateSequence(2, 1) matches [3 5 1 3 5]; DuplicateSequence(1, 3)
// matches [4 2 4 1 4 4].
func DuplicateSequence[T comparable](length, count int) func([]T) bool {
	if length < 1 || count < 1 {
		panic(fmt.Sprintf("predicate: DuplicateSequence(%d, %d): arguments must be ≥ 1", length, count))
	}

	return func(list []T) bool {
		n := len(list)
		if n <= length {
			return false
		}
		final := list[n-length:]

		found := 0
		// Candidate runs end right before index end, scanning backwards.
		for end := n - 1; end >= length; end-- {
			if equalRun(list[end-length:end], final) {
				found++
				if found >= count {
					return true
				}
			}
		}

		return false
	}
}

// OppositeRun reports whether the list splits into a first half made of one
// value and a second half made of another, e.g. [1 1 1 0 0 0]. For odd
// lengths the middle element belongs to the second half.
func OppositeRun[T comparable](list []T) bool {
	n := len(list)
	if n < 2 {
		return false
	}
	first, last := list[0], list[n-1]
	if first == last {
		return false
	}

	half := n / 2
	for i := 1; i < half; i++ {
		if list[i] != first {
			return false
		}
	}
	for i := half; i < n-1; i++ {
		if list[i] != last {
			return false
		}
	}

	return true
}

func equalRun[T comparable](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
