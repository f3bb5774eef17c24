package matcher

import (
	"github.com/katalvlaran/fairrand/window"
)

// List evaluates a structural predicate over the trailing window with the
// candidate appended. The window keeps maxLookBack values, so the predicate
// sees at most maxLookBack+1 values; it is only evaluated once that list
// holds at least minLookBack values.
type List[T comparable] struct {
	name        string
	minLookBack int
	maxLookBack int

	pred    func([]T) bool
	history *window.Window[T]
}

// NewList returns a List matcher. It fails with ErrInvalidParameter on a nil
// predicate or unless 1 <= minLookBack <= maxLookBack.
func NewList[T comparable](name string, minLookBack, maxLookBack int, pred func([]T) bool) (*List[T], error) {
	if err := checkName(methodNewList, name); err != nil {
		return nil, err
	}
	if err := checkLookBack(methodNewList, minLookBack, maxLookBack); err != nil {
		return nil, wrap(methodNewList, name, err)
	}
	if pred == nil {
		return nil, wrap(methodNewList, name, ErrInvalidParameter)
	}

	history, err := window.NewPlain[T](maxLookBack)
	if err != nil {
		return nil, wrap(methodNewList, name, err)
	}

	return &List[T]{
		name:        name,
		minLookBack: minLookBack,
		maxLookBack: maxLookBack,
		pred:        pred,
		history:     history,
	}, nil
}

// SetRange is a no-op; structural predicates do not depend on the domain.
func (m *List[T]) SetRange(_, _ T) error { return nil }

// MatchValue tests the live window plus v and caches v.
func (m *List[T]) MatchValue(v T) (bool, error) {
	return m.step(m.history, v), nil
}

func (m *List[T]) step(h *window.Window[T], v T) bool {
	h.Cache(v, false)
	values := append(h.Snapshot(), v)
	if len(values) < m.minLookBack {
		return false
	}

	return m.pred(values)
}

// RegisterValue commits the last tested candidate.
func (m *List[T]) RegisterValue(v T) error {
	return wrap(methodRegisterValue, m.name, m.history.Commit(v))
}

// MatchSequence replays values on a scratch window.
func (m *List[T]) MatchSequence(values []T) (bool, error) {
	if len(values) < m.minLookBack {
		return false, nil
	}
	h, err := window.NewPlain[T](m.maxLookBack)
	if err != nil {
		return false, wrap(methodMatchSequence, m.name, err)
	}

	for _, v := range values {
		if m.step(h, v) {
			return true, nil
		}
		if err := h.Commit(v); err != nil {
			return false, wrap(methodMatchSequence, m.name, err)
		}
	}

	return false, nil
}

// PatternName returns the pattern name.
func (m *List[T]) PatternName() string { return m.name }

// MinLookBack returns the shortest list the predicate is applied to.
func (m *List[T]) MinLookBack() int { return m.minLookBack }

// MaxLookBack returns the window capacity.
func (m *List[T]) MaxLookBack() int { return m.maxLookBack }

// Kind returns KindList.
func (m *List[T]) Kind() Kind { return KindList }

// History returns a copy of the live window, oldest first.
func (m *List[T]) History() []T { return m.history.Snapshot() }

func (m *List[T]) sealed() {}
