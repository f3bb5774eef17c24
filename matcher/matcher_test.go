package matcher_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairrand/matcher"
	"github.com/katalvlaran/fairrand/predicate"
	"github.com/katalvlaran/fairrand/window"
)

// feed runs the online protocol over values and returns the MatchValue
// results. Every value is registered, matching or not.
func feed[T comparable](t *testing.T, m matcher.Matcher[T], values ...T) []bool {
	t.Helper()
	out := make([]bool, len(values))
	for i, v := range values {
		hit, err := m.MatchValue(v)
		require.NoError(t, err)
		out[i] = hit
		require.NoError(t, m.RegisterValue(v))
	}

	return out
}

func TestNeighbour_FourInARow(t *testing.T) {
	newRun := func() *matcher.Neighbour[int] {
		m, err := matcher.NewNeighbour("run", 3, 3, 1, predicate.Equal[int])
		require.NoError(t, err)
		return m
	}

	assert.Equal(t, []bool{false, false, false, true}, feed[int](t, newRun(), 1, 1, 1, 1))
	assert.Equal(t, []bool{false, false, false, false}, feed[int](t, newRun(), 1, 1, 1, 2))

	m := newRun()
	assert.Equal(t, 4, m.MinLookBack())
	assert.Equal(t, 4, m.MaxLookBack())
	assert.Equal(t, matcher.KindNeighbour, m.Kind())

	hit, err := m.MatchSequence([]int{1, 1, 1, 1})
	require.NoError(t, err)
	assert.True(t, hit)
	hit, err = m.MatchSequence([]int{1, 1, 1, 2})
	require.NoError(t, err)
	assert.False(t, hit)
	hit, err = m.MatchSequence([]int{1, 1, 1})
	require.NoError(t, err)
	assert.False(t, hit, "shorter than minLookBack")
}

func TestNeighbour_SlidingWindowForgets(t *testing.T) {
	// Two equal pairs out of the last three comparisons.
	m, err := matcher.NewNeighbour("pairs", 3, 2, 1, predicate.Equal[int])
	require.NoError(t, err)

	got := feed[int](t, m, 5, 5, 1, 2, 3, 3)
	assert.Equal(t, []bool{false, false, false, false, false, false}, got,
		"the 5,5 pair left the window before 3,3 arrived")
	assert.Equal(t, 1, m.Matches())
	assert.Equal(t, []int{2, 3, 3}, m.History())
}

func TestNeighbour_Alternation(t *testing.T) {
	m, err := matcher.NewNeighbour("alternated", 1, 1, 2, predicate.Equal[int])
	require.NoError(t, err)
	assert.Equal(t, 3, m.MinLookBack())

	assert.Equal(t, []bool{false, false, true}, feed[int](t, m, 4, 7, 4))
}

func TestOccurrence_FiresOnKthSatisfyingValue(t *testing.T) {
	newLow := func(mode matcher.AuditMode) *matcher.Occurrence[int] {
		m, err := matcher.NewOccurrence("low", 3, 3, 5, predicate.BelowPercent[int](0.5), mode)
		require.NoError(t, err)
		require.NoError(t, m.SetRange(0, 100))
		return m
	}

	assert.Equal(t, []bool{false, false, false, false, true}, feed[int](t, newLow(matcher.AuditWindowed), 10, 90, 20, 80, 30))

	// The first low value leaves the five-value window before the third arrives.
	spread := []int{10, 90, 90, 90, 20, 30}
	assert.Equal(t, []bool{false, false, false, false, false, false}, feed[int](t, newLow(matcher.AuditWindowed), spread...))

	windowed := newLow(matcher.AuditWindowed)
	hit, err := windowed.MatchSequence(spread)
	require.NoError(t, err)
	assert.False(t, hit, "windowed audit agrees with the online test")

	whole := newLow(matcher.AuditWholeSequence)
	assert.Equal(t, matcher.AuditWholeSequence, whole.AuditMode())
	hit, err = whole.MatchSequence(spread)
	require.NoError(t, err)
	assert.True(t, hit, "whole-sequence audit counts three lows anywhere")
}

func TestOccurrence_RangeBinding(t *testing.T) {
	m, err := matcher.NewOccurrence("top", 2, 2, 4, predicate.AbovePercent[float64](0.7), matcher.AuditWindowed)
	require.NoError(t, err)

	_, err = m.MatchValue(0.9)
	assert.ErrorIs(t, err, predicate.ErrRangeNotSet)
	_, err = m.MatchSequence([]float64{0.9, 0.9})
	assert.ErrorIs(t, err, predicate.ErrRangeNotSet)

	assert.ErrorIs(t, m.SetRange(1, 1), predicate.ErrInvalidRange)
	assert.ErrorIs(t, m.SetRange(2, 1), predicate.ErrInvalidRange)

	require.NoError(t, m.SetRange(0, 1))
	assert.Equal(t, []bool{false, true}, feed[float64](t, m, 0.9, 0.8))

	// Rebinding to a wider domain moves the threshold immediately.
	require.NoError(t, m.SetRange(0, 10))
	hit, err := m.MatchValue(0.9)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestList_OppositeRun(t *testing.T) {
	m, err := matcher.NewList("opposite", 5, 5, predicate.OppositeRun[bool])
	require.NoError(t, err)
	assert.Equal(t, matcher.KindList, m.Kind())
	assert.NoError(t, m.SetRange(false, true))

	// Two values t,f would be an opposite run on their own; too short to count.
	got := feed[bool](t, m, true, false)
	assert.Equal(t, []bool{false, false}, got)

	m2, err := matcher.NewList("opposite", 5, 5, predicate.OppositeRun[bool])
	require.NoError(t, err)
	got = feed[bool](t, m2, true, true, true, false, false, false)
	assert.Equal(t, []bool{false, false, false, false, false, true}, got)

	hit, err := m2.MatchSequence([]bool{true, true, false, false, false})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestList_DuplicateSequence(t *testing.T) {
	m, err := matcher.NewList("repeat pair", 4, 9, predicate.DuplicateSequence[int](2, 1))
	require.NoError(t, err)

	got := feed[int](t, m, 3, 5, 1, 3, 5)
	assert.Equal(t, []bool{false, false, false, false, true}, got)
}

func TestRegisterWithoutMatch(t *testing.T) {
	n, err := matcher.NewNeighbour("run", 2, 2, 1, predicate.Equal[int])
	require.NoError(t, err)
	o, err := matcher.NewOccurrence("low", 1, 1, 2, predicate.BelowPercent[int](0.5), matcher.AuditWindowed)
	require.NoError(t, err)
	l, err := matcher.NewList("dup", 2, 3, predicate.DuplicateSequence[int](1, 1))
	require.NoError(t, err)

	for _, m := range []matcher.Matcher[int]{n, o, l} {
		t.Run(m.PatternName(), func(t *testing.T) {
			assert.ErrorIs(t, m.RegisterValue(1), window.ErrProtocolViolation)
		})
	}

	// Testing 1 then committing 2 is refused too.
	_, err = n.MatchValue(1)
	require.NoError(t, err)
	assert.ErrorIs(t, n.RegisterValue(2), window.ErrProtocolViolation)
}

func TestMatchSequence_LeavesLiveStateAlone(t *testing.T) {
	m, err := matcher.NewNeighbour("run", 3, 3, 1, predicate.Equal[int])
	require.NoError(t, err)
	feed[int](t, m, 7, 7)
	before := m.History()

	hit, err := m.MatchSequence([]int{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, before, m.History())
	assert.Equal(t, 1, m.Matches())

	// A pending candidate survives the audit too.
	_, err = m.MatchValue(7)
	require.NoError(t, err)
	_, err = m.MatchSequence([]int{2, 2, 2, 2})
	require.NoError(t, err)
	assert.NoError(t, m.RegisterValue(7))
}

func TestConstructorValidation(t *testing.T) {
	eq := predicate.Equal[int]
	low := predicate.BelowPercent[int](0.5)
	dup := predicate.DuplicateSequence[int](1, 1)

	tests := []struct {
		name string
		make func() error
	}{
		{"neighbour/offset-zero", func() error { _, err := matcher.NewNeighbour("x", 2, 1, 0, eq); return err }},
		{"neighbour/match-above-check", func() error { _, err := matcher.NewNeighbour("x", 2, 3, 1, eq); return err }},
		{"neighbour/match-zero", func() error { _, err := matcher.NewNeighbour("x", 2, 0, 1, eq); return err }},
		{"neighbour/empty-name", func() error { _, err := matcher.NewNeighbour(" ", 2, 1, 1, eq); return err }},
		{"occurrence/count-zero", func() error {
			_, err := matcher.NewOccurrence("x", 0, 1, 4, low, matcher.AuditWindowed)
			return err
		}},
		{"occurrence/count-above-max", func() error {
			_, err := matcher.NewOccurrence("x", 5, 1, 4, low, matcher.AuditWindowed)
			return err
		}},
		{"occurrence/min-above-max", func() error {
			_, err := matcher.NewOccurrence("x", 2, 5, 4, low, matcher.AuditWindowed)
			return err
		}},
		{"occurrence/bad-mode", func() error {
			_, err := matcher.NewOccurrence("x", 2, 1, 4, low, matcher.AuditMode(9))
			return err
		}},
		{"list/min-zero", func() error { _, err := matcher.NewList("x", 0, 4, dup); return err }},
		{"list/nil-predicate", func() error { _, err := matcher.NewList[int]("x", 1, 4, nil); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.make(), matcher.ErrInvalidParameter)
		})
	}

	_, err := matcher.NewNeighbour[int]("x", 2, 1, 1, nil)
	assert.ErrorIs(t, err, predicate.ErrNilPredicate)
}

func TestKindAndAuditModeNames(t *testing.T) {
	for _, k := range []matcher.Kind{matcher.KindNeighbour, matcher.KindOccurrence, matcher.KindList} {
		parsed, err := matcher.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	k, err := matcher.ParseKind(" Neighbor ")
	require.NoError(t, err)
	assert.Equal(t, matcher.KindNeighbour, k)

	_, err = matcher.ParseKind("spiral")
	assert.ErrorIs(t, err, matcher.ErrInvalidParameter)
	assert.Equal(t, "unknown", matcher.Kind(42).String())
	assert.Equal(t, "windowed", matcher.AuditWindowed.String())
	assert.Equal(t, "whole-sequence", matcher.AuditWholeSequence.String())
}

// An audit of any prefix agrees with the online decisions made while the
// same values were fed one by one.
func TestOnlineAndAuditAgree(t *testing.T) {
	protos := []matcher.Prototype[int]{
		matcher.NeighbourPrototype("repeat", 1, 1, 1, predicate.Equal[int]),
		matcher.NeighbourPrototype("ascending", 3, 3, 1, predicate.Greater[int]),
		matcher.NeighbourPrototype("loose", 5, 2, 2, predicate.Equal[int]),
		matcher.OccurrencePrototype("bottom", 3, 3, 6, predicate.IntPercentBetween(5, 0, 30)),
		matcher.ListPrototype("repeat pair", 4, 9, predicate.DuplicateSequence[int](2, 1)),
	}
	rng := rand.New(rand.NewPCG(3, 11))

	for _, p := range protos {
		t.Run(p.Name(), func(t *testing.T) {
			online, err := p.Build()
			require.NoError(t, err)
			audit, err := p.Build()
			require.NoError(t, err)
			require.NoError(t, online.SetRange(0, 10))
			require.NoError(t, audit.SetRange(0, 10))

			var seq []int
			firedOnline := false
			for i := 0; i < 200; i++ {
				v := rng.IntN(10)
				hit, err := online.MatchValue(v)
				require.NoError(t, err)
				firedOnline = firedOnline || hit
				require.NoError(t, online.RegisterValue(v))
				seq = append(seq, v)

				firedAudit, err := audit.MatchSequence(seq)
				require.NoError(t, err)
				require.Equal(t, firedOnline, firedAudit, "prefix %v", seq)
				if firedOnline {
					return
				}
			}
		})
	}
}
