package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil destination.
	ErrNilConfig = errors.New("config: nil destination")
	// ErrParsingConfig is returned when environment values cannot be
	// parsed into the destination struct.
	ErrParsingConfig = errors.New("config: failed to parse")
)
