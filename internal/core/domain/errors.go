package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotAuthorized indicates bad credentials or an unusable token.
	// Unknown-user and wrong-password lookups deliberately surface this
	// same value so callers cannot probe for username existence.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidToken indicates the token is malformed, its signature does
	// not verify, or its expiry has passed
	ErrInvalidToken = errors.New("token invalid")

	// ErrMissingSubject indicates the token verified but carries no usable
	// subject identifier
	ErrMissingSubject = errors.New("token subject missing")
)
