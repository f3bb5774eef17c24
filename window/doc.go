// Package window implements the fixed-capacity sliding history that every
// pattern matcher keeps of the values it has already accepted.
//
// 🚀 What is a Window?
//
//	A FIFO buffer of the most recently committed values plus one boolean
//	flag per slot. The flag records whether that slot, at the moment it was
//	the newest candidate, satisfied the owning matcher's local test. A
//	running Matches counter is updated in O(1) on every enqueue and evict,
//	never by rescanning the flags.
//
// ✨ Geometries:
//
//   - Plain       values only; Matches stays 0 (whole-window predicates).
//   - Occurrence  a flag is a property of its own slot; evicting a true
//     flag decrements Matches.
//   - Neighbour   a flag at slot i describes the pair (i, i-offset). When
//     slot 0 is evicted, the pair that dies is the one stored offset slots
//     later, so that flag is decremented and cleared.
//
// ⚙️ Protocol:
//
//	w, _ := window.NewOccurrence[int](9)
//	w.Cache(v, isMatch) // remember the tested candidate
//	err := w.Commit(v)  // accept it; fails with ErrProtocolViolation if v
//	                    // was not the cached candidate
//
// A Window is not safe for concurrent use.
package window
