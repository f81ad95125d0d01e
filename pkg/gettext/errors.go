package gettext

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// ErrNoCatalog is a distinguishable condition, not a failure: callers of the jsmessages domain
// render an empty script body when they see it instead of failing the request.
var (
	// Catalog resolution
	ErrNoCatalog = errors.New("no compiled catalog found for any requested language")

	// Compiled catalog parsing
	ErrBadMagic       = errors.New("not a compiled gettext catalog: bad magic number")
	ErrTruncatedFile  = errors.New("compiled catalog is truncated")
	ErrFailedToReadMo = errors.New("failed to read compiled catalog file")

	// Source catalog parsing
	ErrFailedToReadPo = errors.New("failed to read source catalog file")
	ErrEmptyPo        = errors.New("source catalog file has no entries")
)
