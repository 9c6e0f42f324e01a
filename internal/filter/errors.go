package filter

import "errors"

// Sentinel errors for the filter package.
var (
	// ErrNoFilterFunction is returned when a script defines no global
	// "filter" function.
	ErrNoFilterFunction = errors.New("script does not define a filter function")

	// ErrFilterClosed is returned when applying a closed filter.
	ErrFilterClosed = errors.New("filter is closed")
)
