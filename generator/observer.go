package generator

// Observer receives one event per generation step. Implementations must be
// cheap; they run inside the retry loop.
type Observer interface {
	// Accepted is called once per returned value.
	Accepted(stream string)
	// Rejected is called once per rejected candidate with the names of the
	// patterns it completed.
	Rejected(stream string, patterns []string)
	// Exhausted is called when Generate fails with ErrRetryBudgetExceeded.
	Exhausted(stream string)
}

type nopObserver struct{}

func (nopObserver) Accepted(string)           {}
func (nopObserver) Rejected(string, []string) {}
func (nopObserver) Exhausted(string)          {}
