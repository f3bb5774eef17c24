package pick

import (
	"fmt"

	"github.com/katalvlaran/fairrand/generator"
	"github.com/katalvlaran/fairrand/source"
)

// DefaultAttempts is the budget GenerateValid uses when given 0.
const DefaultAttempts = generator.DefaultRetryBudget

// GenerateValid draws from g until accept holds, at most budget times
// (DefaultAttempts when budget is 0). It carries no history; use a
// generator.Generator for pattern filtering.
func GenerateValid[T any](g source.Generator[T], accept func(T) bool, budget int) (T, error) {
	var zero T
	if budget < 0 {
		return zero, fmt.Errorf("GenerateValid: budget=%d: %w", budget, ErrBadCount)
	}
	if budget == 0 {
		budget = DefaultAttempts
	}
	for i := 0; i < budget; i++ {
		if v := g.Generate(); accept(v) {
			return v, nil
		}
	}

	return zero, fmt.Errorf("GenerateValid: %d attempts: %w", budget, generator.ErrRetryBudgetExceeded)
}

// FilteredChooser picks list elements through a filtered index generator,
// so the default int patterns (no immediate repeats, no alternation, no
// long runs up or down the list) apply to positions.
//
// Short lists constrain the filter heavily; below about ten elements Next
// may exhaust its budget.
type FilteredChooser[E any] struct {
	items []E
	idx   *generator.Generator[int]
}

// NewFilteredChooser copies items. Options are passed to generator.NewInt.
func NewFilteredChooser[E any](stream source.Stream, items []E, opts ...generator.Option) (*FilteredChooser[E], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("NewFilteredChooser: %w", ErrEmpty)
	}
	idx, err := generator.NewInt(stream, 0, len(items), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFilteredChooser: %w", err)
	}

	return &FilteredChooser[E]{items: append([]E(nil), items...), idx: idx}, nil
}

// Next returns the next element.
func (c *FilteredChooser[E]) Next() (E, error) {
	i, err := c.idx.Generate()
	if err != nil {
		var zero E
		return zero, err
	}

	return c.items[i], nil
}

// NextN returns n elements.
func (c *FilteredChooser[E]) NextN(n int) ([]E, error) {
	is, err := c.idx.GenerateN(n)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(is))
	for k, i := range is {
		out[k] = c.items[i]
	}

	return out, nil
}

// Indices exposes the underlying index generator.
func (c *FilteredChooser[E]) Indices() *generator.Generator[int] { return c.idx }

// Len returns the number of items.
func (c *FilteredChooser[E]) Len() int { return len(c.items) }
