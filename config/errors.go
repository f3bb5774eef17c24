package config

import "errors"

var (
	// ErrInvalidConfig wraps every decoding and validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedPattern indicates a pattern that cannot apply to the
	// stream's value type, e.g. an occurrence pattern on a bool stream.
	ErrUnsupportedPattern = errors.New("config: pattern not supported for stream kind")
)
