package session

import "errors"

// Sentinel errors for the session package.
var (
	// ErrSessionClosed is returned when dispatching to a closed session.
	ErrSessionClosed = errors.New("session is closed")

	// ErrSessionNotFound is returned when a session id is not found.
	ErrSessionNotFound = errors.New("session not found")

	// ErrManagerClosed is returned when operations are attempted on a closed manager.
	ErrManagerClosed = errors.New("session manager is closed")

	// ErrInvalidSize is returned when the reported terminal width is invalid.
	ErrInvalidSize = errors.New("invalid terminal size")
)
