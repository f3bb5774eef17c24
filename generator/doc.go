// Package generator is the public entry point of fairrand: it draws raw
// values from a source, rejects any candidate that would complete a
// pattern tracked by its filter, and returns the first acceptable one.
//
// 🚀 What is filtered randomness?
//
//	Uniform draws produce streaks that people read as unfair: four heads in
//	a row, the same dice face twice, seven low rolls out of ten. A filtered
//	generator keeps the per-value distribution close to the raw source but
//	suppresses those recent-history patterns by rejection sampling.
//
// ⚙️ Usage:
//
//	d20, err := generator.NewInt(source.NewRand(seed), 1, 21)
//	roll, err := d20.Generate()
//
// Generate fails with ErrRetryBudgetExceeded when every candidate within
// the budget (DefaultRetryBudget unless WithRetryBudget is given) completes
// a pattern; that means the filter is too strict for the domain.
//
// A Generator is not safe for concurrent use. Build one per logical stream;
// streams built from the same prototypes never share history.
package generator
