// SPDX-License-Identifier: MIT
// Package: fairrand/generator
//
// generator.go - the rejection-sampling loop.
//
// Contract:
//   • Generate draws at most RetryBudget candidates. Each one is tested by
//     the filter; the first candidate that completes no pattern is
//     registered and returned.
//   • When every draw is rejected Generate returns ErrRetryBudgetExceeded
//     and the history is unchanged.
//   • Accepted values enter the history in exactly the order they are
//     returned.

package generator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fairrand/filter"
	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/source"
)

// Generator couples a raw source with a filter and a retry budget.
// It is not safe for concurrent use; build one per logical stream.
type Generator[T comparable] struct {
	raw    source.Generator[T]
	filter *filter.Filter[T]
	budget int
	name   string
	log    *slog.Logger
	obs    Observer

	min, max T
	hasRange bool
}

// New returns a generator drawing from raw. Without WithFilter or
// WithPrototypes the filter holds the default catalog for T (bool, int or
// float64) or is empty for other types. The filter's range is left unset;
// call SetRange when it holds range-bound patterns.
func New[T comparable](raw source.Generator[T], opts ...Option) (*Generator[T], error) {
	return newGenerator(raw, "default", defaultPrototypes[T](), opts)
}

func newGenerator[T comparable](raw source.Generator[T], name string, defaults []matcher.Prototype[T], opts []Option) (*Generator[T], error) {
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNeedRandSource)
	}
	cfg := newConfig(name, opts...)
	f, err := resolveFilter(cfg, defaults)
	if err != nil {
		return nil, err
	}

	return &Generator[T]{
		raw:    raw,
		filter: f,
		budget: cfg.budget,
		name:   cfg.name,
		log:    cfg.logger,
		obs:    cfg.observer,
	}, nil
}

// Generate returns the next value that completes no pattern.
func (g *Generator[T]) Generate() (T, error) {
	var zero T
	for attempt := 1; attempt <= g.budget; attempt++ {
		v := g.raw.Generate()

		hit, err := g.filter.MatchCandidate(v)
		if err != nil {
			return zero, fmt.Errorf("%s(%s): %w", methodGenerate, g.name, err)
		}
		if hit {
			patterns := g.filter.LastMatches()
			g.log.Debug("candidate rejected",
				slog.String("stream", g.name),
				slog.Int("attempt", attempt),
				slog.Any("value", v),
				slog.Any("patterns", patterns))
			g.obs.Rejected(g.name, patterns)
			continue
		}

		if err := g.filter.RegisterValue(v); err != nil {
			return zero, fmt.Errorf("%s(%s): %w", methodGenerate, g.name, err)
		}
		g.obs.Accepted(g.name)

		return v, nil
	}

	g.log.Warn("retry budget exhausted",
		slog.String("stream", g.name),
		slog.Int("budget", g.budget))
	g.obs.Exhausted(g.name)

	return zero, fmt.Errorf("%s(%s): no candidate accepted in %d attempts: %w",
		methodGenerate, g.name, g.budget, ErrRetryBudgetExceeded)
}

// GenerateN returns n accepted values. On failure no values are returned,
// although the ones accepted before the failure stay in the history.
func (g *Generator[T]) GenerateN(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%s): n=%d: %w", methodGenerateN, g.name, n, ErrBadCount)
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: value %d of %d: %w", methodGenerateN, i+1, n, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// SetRange forwards the value domain to the filter.
func (g *Generator[T]) SetRange(min, max T) error {
	if err := g.filter.SetRange(min, max); err != nil {
		return fmt.Errorf("%s(%s): %w", methodSetRange, g.name, err)
	}
	g.min, g.max, g.hasRange = min, max, true

	return nil
}

// Range returns the domain last passed to SetRange; ok is false before.
func (g *Generator[T]) Range() (min, max T, ok bool) { return g.min, g.max, g.hasRange }

// Filter exposes the filter, e.g. for ValidateSequence audits.
func (g *Generator[T]) Filter() *filter.Filter[T] { return g.filter }

// Name returns the stream label.
func (g *Generator[T]) Name() string { return g.name }

// RetryBudget returns the number of draws per Generate call.
func (g *Generator[T]) RetryBudget() int { return g.budget }
