// Package fairrand produces random values that feel fair to people: coin
// flips, dice rolls, floats and Gaussian samples that avoid the streaks and
// clumps true randomness keeps producing.
//
// 🚀 What is fairrand?
//
//	A pseudorandom generator wrapped in a rejection filter. Each candidate is
//	checked against a set of patterns ("4 in a row", "ascending sequence",
//	"too many in the bottom of the range", ...) over the recent history; a
//	candidate that would complete any pattern is redrawn, up to a retry
//	budget.
//
// ✨ Why fairrand?
//
//   - Deterministic: every stream is seeded, and sub-streams are derived
//   - Explicit failure: a cornered generator returns ErrRetryBudgetExceeded
//     instead of silently giving up on its patterns
//   - Auditable: the online filter and the offline sequence audit agree
//   - Observable: slog logging and Prometheus counters per stream
//
// Packages:
//
//	window/     fixed-capacity history ring with cache/commit bookkeeping
//	predicate/  pair comparisons, range-bound factories, list predicates
//	matcher/    Neighbour, Occurrence and List pattern matchers + prototypes
//	filter/     a set of matchers evaluated together
//	source/     seeded streams and raw (unfiltered) generators
//	catalog/    the built-in pattern sets for bool, int, float and Gaussian
//	generator/  the rejection loop, options and typed constructors
//	pick/       choosing list elements, plain or filtered
//	metrics/    Prometheus observer
//	config/     YAML + environment stream definitions
//	cmd/fairrand command-line front end
//
// Quick example:
//
//	g, _ := generator.NewInt(source.NewRand(42), 1, 7) // a d6
//	roll, err := g.Generate()
//
//	go get github.com/katalvlaran/fairrand
package fairrand
