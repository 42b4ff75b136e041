package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineNotFound indicates that the requested magazine is not registered.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrInvalidMagazineID indicates a nil magazine ID.
	ErrInvalidMagazineID = errors.New("invalid magazine ID")
)
