package filter

import "errors"

// ErrNilMatcher indicates a nil matcher passed to New.
var ErrNilMatcher = errors.New("filter: nil matcher")
