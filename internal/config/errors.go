package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidMaxBytes is returned for a negative clipboard size limit.
	ErrInvalidMaxBytes = errors.New("invalid clipboard size limit")

	// ErrInvalidCols is returned for a non-positive default width.
	ErrInvalidCols = errors.New("invalid default column count")

	// ErrInvalidMaxRows is returned for a non-positive segment row bound.
	ErrInvalidMaxRows = errors.New("invalid max row count")
)
