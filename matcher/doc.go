// Package matcher implements the three pattern matchers that decide whether a
// candidate value would complete a humanly noticeable pattern in the recent
// history of accepted values.
//
// Variants:
//
//   - Neighbour: compares each value with the one offset steps before it
//     (runs, ascending/descending streaks, alternation, near-repeats).
//   - Occurrence: counts values in the window that satisfy a range-bound
//     predicate (too many rolls in the bottom 30% of the range).
//   - List: evaluates a structural predicate over the whole trailing window
//     (repeated sub-sequences, mirrored runs).
//
// Every matcher supports an online test (MatchValue followed by
// RegisterValue for the accepted candidate) and an offline audit
// (MatchSequence) that replays the same bookkeeping on a scratch window and
// never touches live state.
//
// Matchers are stateful and not safe for concurrent use. Build independent
// instances from a Prototype for each logical stream.
package matcher
