package router

import "errors"

var (
	// Lookup errors
	ErrNotFound         = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// Construction errors
	ErrInvalidPattern   = errors.New("routing pattern must begin with '/'")
	ErrNilHandler       = errors.New("route handler cannot be nil")
	ErrDuplicateParam   = errors.New("routing pattern contains duplicate param key")
	ErrWildcardPosition = errors.New("'{+param}' must be the last segment of a route")
	ErrDuplicateName    = errors.New("duplicate route name")

	// Reverse lookup errors
	ErrUnknownRoute = errors.New("no route registered under this name")
	ErrMissingParam = errors.New("missing value for route param")
)
