// SPDX-License-Identifier: MIT
// Package: fairrand/generator
//
// config.go - resolved construction settings and defaults.
//
// Defaults:
//   • budget   = DefaultRetryBudget (50)
//   • logger   = discard (library code stays silent unless asked)
//   • observer = no-op
//   • name     = the constructor's kind ("int", "gaussian", ...)
//   • filter   = one fresh matcher per catalog prototype of the value type

package generator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/filter"
	"github.com/katalvlaran/fairrand/matcher"
)

// DefaultRetryBudget is the number of candidates drawn per Generate call
// before giving up.
const DefaultRetryBudget = 50

type config struct {
	budget   int
	logger   *slog.Logger
	observer Observer
	name     string

	// Exactly one of these is set by WithFilter/WithPrototypes; both nil
	// selects the default catalog.
	filter any // *filter.Filter[T]
	protos any // []matcher.Prototype[T]
}

func newConfig(name string, opts ...Option) config {
	cfg := config{
		budget:   DefaultRetryBudget,
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
		name:     name,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveFilter returns the filter selected by the options, falling back to
// defaults when neither WithFilter nor WithPrototypes was given.
func resolveFilter[T comparable](cfg config, defaults []matcher.Prototype[T]) (*filter.Filter[T], error) {
	switch {
	case cfg.filter != nil:
		f, ok := cfg.filter.(*filter.Filter[T])
		if !ok {
			var zero T
			return nil, fmt.Errorf("%s: WithFilter(%T) on a %T generator: %w", methodNew, cfg.filter, zero, ErrOptionViolation)
		}
		return f, nil
	case cfg.protos != nil:
		ps, ok := cfg.protos.([]matcher.Prototype[T])
		if !ok {
			var zero T
			return nil, fmt.Errorf("%s: WithPrototypes(%T) on a %T generator: %w", methodNew, cfg.protos, zero, ErrOptionViolation)
		}
		return filter.FromPrototypes(ps...)
	default:
		return filter.FromPrototypes(defaults...)
	}
}

// defaultPrototypes returns the catalog matching T, or nil for value types
// without one.
func defaultPrototypes[T comparable]() []matcher.Prototype[T] {
	var (
		zero   T
		protos any
	)
	switch any(zero).(type) {
	case bool:
		protos = catalog.Bool()
	case int:
		protos = catalog.Int()
	case float64:
		protos = catalog.Float()
	}
	ps, _ := protos.([]matcher.Prototype[T])

	return ps
}
