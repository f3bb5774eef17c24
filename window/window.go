// SPDX-License-Identifier: MIT
// Package: fairrand/window
//
// window.go - Window type, geometries and the cache/commit protocol.
//
// Contract:
//   • Len() <= Cap() after every Commit; the oldest slot is evicted first.
//   • Matches() == number of true flags retained, after every operation.
//   • Commit consumes the cached candidate; a second Commit without a new
//     Cache fails with ErrProtocolViolation.
//
// Complexity:
//   • Cache, Commit, At, Matches: O(1). Snapshot, Flags: O(Cap).

package window

import "fmt"

// Geometry selects how an evicted slot adjusts the running match count.
type Geometry int

const (
	// Plain keeps values only; flags are ignored and Matches stays 0.
	Plain Geometry = iota
	// Occurrence counts flags that describe their own slot.
	Occurrence
	// Neighbour counts flags that describe the pair (slot, slot-offset).
	Neighbour
)

// String returns the geometry name.
func (g Geometry) String() string {
	switch g {
	case Plain:
		return "plain"
	case Occurrence:
		return "occurrence"
	case Neighbour:
		return "neighbour"
	default:
		return "unknown"
	}
}

// Window is a fixed-capacity history of accepted values with parallel match
// flags and an incrementally maintained match count.
type Window[T comparable] struct {
	capacity int
	geometry Geometry
	offset   int // neighbour distance; 0 for other geometries

	values ring[T]
	flags  ring[bool]

	matches int

	// Last tested, not yet committed candidate.
	cached     T
	cachedFlag bool
	hasCached  bool
}

// NewPlain returns a window without flag bookkeeping.
func NewPlain[T comparable](capacity int) (*Window[T], error) {
	return newWindow[T](capacity, Plain, 0)
}

// NewOccurrence returns a window whose flags describe their own slot.
func NewOccurrence[T comparable](capacity int) (*Window[T], error) {
	return newWindow[T](capacity, Occurrence, 0)
}

// NewNeighbour returns a window whose flag at slot i describes the
// comparison between slot i and slot i-offset.
func NewNeighbour[T comparable](capacity, offset int) (*Window[T], error) {
	if offset < 1 {
		return nil, fmt.Errorf("%s: offset=%d: %w", methodNew, offset, ErrBadOffset)
	}

	return newWindow[T](capacity, Neighbour, offset)
}

func newWindow[T comparable](capacity int, g Geometry, offset int) (*Window[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%s: capacity=%d: %w", methodNew, capacity, ErrBadCapacity)
	}

	// One spare slot holds the newest value until the oldest is evicted.
	return &Window[T]{
		capacity: capacity,
		geometry: g,
		offset:   offset,
		values:   newRing[T](capacity + 1),
		flags:    newRing[bool](capacity + 1),
	}, nil
}

// Cap returns the fixed capacity.
func (w *Window[T]) Cap() int { return w.capacity }

// Len returns the number of retained values.
func (w *Window[T]) Len() int { return w.values.len() }

// Geometry returns the eviction geometry.
func (w *Window[T]) Geometry() Geometry { return w.geometry }

// Offset returns the neighbour distance (0 unless Neighbour).
func (w *Window[T]) Offset() int { return w.offset }

// Matches returns the number of true flags currently retained.
func (w *Window[T]) Matches() int { return w.matches }

// Cache remembers value as the most recently tested candidate together with
// its local match flag. It replaces any earlier uncommitted candidate.
func (w *Window[T]) Cache(value T, isMatch bool) {
	w.cached = value
	w.cachedFlag = isMatch && w.geometry != Plain
	w.hasCached = true
}

// Commit appends the cached (value, flag) pair. value must equal the cached
// candidate. When the capacity is exceeded the oldest pair is evicted and
// the match count adjusted according to the geometry.
func (w *Window[T]) Commit(value T) error {
	if !w.hasCached {
		return fmt.Errorf("%s: no candidate cached: %w", methodCommit, ErrProtocolViolation)
	}
	if w.cached != value {
		return fmt.Errorf("%s: value %v is not the tested candidate %v: %w",
			methodCommit, value, w.cached, ErrProtocolViolation)
	}

	flag := w.cachedFlag
	w.clearCache()

	w.values.push(value)
	w.flags.push(flag)
	if flag {
		w.matches++
	}

	if w.values.len() > w.capacity {
		w.evict()
	}

	return nil
}

// evict drops the oldest slot and applies the geometry-specific adjustment.
func (w *Window[T]) evict() {
	if w.geometry == Neighbour && w.offset < w.flags.len() && w.flags.at(w.offset) {
		// The pair (offset, 0) loses its partner.
		w.matches--
		w.flags.set(w.offset, false)
	}
	if w.flags.popFront() {
		w.matches--
	}
	w.values.popFront()
}

func (w *Window[T]) clearCache() {
	var zero T
	w.cached = zero
	w.cachedFlag = false
	w.hasCached = false
}

// At returns the i-th retained value counted from the oldest (0-based).
// ok is false when i is out of range.
func (w *Window[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= w.values.len() {
		return value, false
	}

	return w.values.at(i), true
}

// Snapshot returns a copy of the retained values, oldest first.
func (w *Window[T]) Snapshot() []T {
	out := make([]T, w.values.len())
	for i := range out {
		out[i] = w.values.at(i)
	}

	return out
}

// Flags returns a copy of the retained flags, oldest first.
func (w *Window[T]) Flags() []bool {
	out := make([]bool, w.flags.len())
	for i := range out {
		out[i] = w.flags.at(i)
	}

	return out
}

// Reset empties the window and drops any cached candidate.
func (w *Window[T]) Reset() {
	w.values.reset()
	w.flags.reset()
	w.matches = 0
	w.clearCache()
}
