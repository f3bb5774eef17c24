// Package filter combines pattern matchers into the accept/reject decision
// used by the generator, and audits externally supplied sequences against
// the same matchers.
//
//	f, _ := filter.FromPrototypes(catalog.Int()...)
//	_ = f.SetRange(1, 21)
//	hit, _ := f.MatchCandidate(v) // test
//	if !hit {
//		_ = f.RegisterValue(v) // accept
//	}
//
// A Filter is not safe for concurrent use.
package filter
