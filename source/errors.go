package source

import "errors"

// ErrBadParameter indicates generator parameters with no meaningful
// distribution (min >= max, stddev <= 0, chance outside [0,1], NaN).
var ErrBadParameter = errors.New("source: invalid generator parameter")

// ErrNilStream indicates a generator constructed without a stream.
var ErrNilStream = errors.New("source: stream is required")
