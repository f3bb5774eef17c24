// SPDX-License-Identifier: MIT
// Package: fairrand/generator
//
// options.go - functional options for generator constructors.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input
//     (nil logger, budget < 1). Generation itself never panics.
//   • Options are applied in order; later options override earlier ones.
//   • WithFilter and WithPrototypes are typed by the filter value; a type
//     mismatch with the generator surfaces as ErrOptionViolation from the
//     constructor.

package generator

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/fairrand/filter"
	"github.com/katalvlaran/fairrand/matcher"
)

// Option customizes a generator before construction.
type Option func(*config)

// WithFilter uses f instead of the default catalog. The generator takes
// ownership: f must not be shared with another generator.
func WithFilter[T comparable](f *filter.Filter[T]) Option {
	if f == nil {
		panic("generator: WithFilter(nil)")
	}

	return func(c *config) {
		c.filter = f
		c.protos = nil
	}
}

// WithPrototypes builds a fresh filter from protos instead of the default
// catalog. An empty list yields a filter that accepts everything.
func WithPrototypes[T comparable](protos ...matcher.Prototype[T]) Option {
	ps := append([]matcher.Prototype[T]{}, protos...)

	return func(c *config) {
		c.protos = ps
		c.filter = nil
	}
}

// WithRetryBudget sets how many candidates are drawn before Generate fails
// with ErrRetryBudgetExceeded. Panics if n < 1.
func WithRetryBudget(n int) Option {
	if n < 1 {
		panic("generator: WithRetryBudget(n<1)")
	}

	return func(c *config) { c.budget = n }
}

// WithLogger routes rejection (Debug) and exhaustion (Warn) records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithObserver reports accept/reject/exhaust events to o. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("generator: WithObserver(nil)")
	}

	return func(c *config) { c.observer = o }
}

// WithName labels the stream in logs, errors and metrics. Panics on an
// empty name.
func WithName(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("generator: WithName(\"\")")
	}

	return func(c *config) { c.name = name }
}
