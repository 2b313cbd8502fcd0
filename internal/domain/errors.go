package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are malformed
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSearchUnavailable is returned when the remote search service cannot
	// be reached or answers with an error; always recovered locally
	ErrSearchUnavailable = errors.New("remote search unavailable")

	// ErrCatalogUnavailable is returned when the recipe catalog cannot be
	// read at all; the only failure surfaced to callers
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when an upstream rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
