package domain

import "errors"

var (
	// ErrInternalServerError is returned when an adapter call fails in a way
	// the caller cannot act on; storage internals never leak past it
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when the requested item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict is returned when a uniqueness rule is violated (slug, tag
	// name, email, username)
	ErrConflict = errors.New("your item already exists")
	// ErrUnauthorized is returned when the acting user does not own the resource
	ErrUnauthorized = errors.New("you are not allowed to modify this item")
	// ErrBadParamInput is returned when the given request parameters are invalid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss is returned by cache adapters when a key is absent
	ErrCacheMiss = errors.New("cache miss")
)
