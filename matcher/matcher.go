package matcher

import (
	"fmt"
	"strings"
)

// Kind names one of the three matcher geometries.
type Kind int

const (
	// KindNeighbour compares a value with the one offset steps before it.
	KindNeighbour Kind = iota
	// KindOccurrence counts window values that satisfy a predicate.
	KindOccurrence
	// KindList applies a predicate to the whole trailing window.
	KindList
)

// String returns the lower-case kind name used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindNeighbour:
		return "neighbour"
	case KindOccurrence:
		return "occurrence"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. "neighbor" is accepted too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neighbour", "neighbor":
		return KindNeighbour, nil
	case "occurrence":
		return KindOccurrence, nil
	case "list":
		return KindList, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidParameter)
	}
}

// AuditMode selects how an Occurrence matcher audits a whole sequence.
type AuditMode int

const (
	// AuditWindowed replays the online sliding window over the sequence, so
	// the audit agrees with what MatchValue would have decided.
	AuditWindowed AuditMode = iota
	// AuditWholeSequence counts predicate hits anywhere in the sequence,
	// ignoring the window. It is looser than the online test and can flag
	// sequences the online test accepted.
	AuditWholeSequence
)

// String returns the mode name.
func (m AuditMode) String() string {
	switch m {
	case AuditWindowed:
		return "windowed"
	case AuditWholeSequence:
		return "whole-sequence"
	default:
		return "unknown"
	}
}

// Matcher is the capability every pattern matcher exposes to a filter.
// The set of implementations is closed: Neighbour, Occurrence and List.
type Matcher[T comparable] interface {
	// SetRange forwards the value domain to the predicate builder.
	SetRange(min, max T) error
	// MatchValue tests v against the live history and caches it for
	// RegisterValue. True means v would complete the pattern.
	MatchValue(v T) (bool, error)
	// RegisterValue commits the candidate most recently passed to MatchValue.
	RegisterValue(v T) error
	// MatchSequence audits values from an empty history without touching
	// live state and reports whether the pattern fires anywhere.
	MatchSequence(values []T) (bool, error)

	PatternName() string
	MinLookBack() int
	MaxLookBack() int
	Kind() Kind

	sealed()
}

func checkName(method, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s: empty pattern name: %w", method, ErrInvalidParameter)
	}

	return nil
}

func checkLookBack(method string, minLookBack, maxLookBack int) error {
	if minLookBack < 1 || minLookBack > maxLookBack {
		return fmt.Errorf("%s: lookBack=[%d, %d]: want 1 <= min <= max: %w",
			method, minLookBack, maxLookBack, ErrInvalidParameter)
	}

	return nil
}

// wrap attaches the method and pattern name to err; nil stays nil.
func wrap(method, pattern string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s(%q): %w", method, pattern, err)
}
