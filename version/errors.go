package version

import "errors"

var (
	// ErrInvalidVersion reports a malformed version token.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMissingMinorVersion reports a minor version key expected in a catalogue but absent from it.
	ErrMissingMinorVersion = errors.New("missing minor version")
)
