// Package source provides the raw, unfiltered value producers that feed the
// filtered generators: seedable uniform streams and scalar generators
// (uniform int, uniform float, biased coin, Gaussian).
//
// Determinism: every stream is seeded explicitly. Seed 0 selects DefaultSeed,
// so the zero value of a configuration is still reproducible. Use Derive to
// split one seed into independent per-stream sources.
//
// Streams and generators are not safe for concurrent use.
package source
