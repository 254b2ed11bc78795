package reddit

import "errors"

// Sentinel errors for the reddit package.
var (
	// ErrRateLimited is returned when the API rejects a call for
	// exceeding the rate limit. Callers log it and try again on the
	// next cycle.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotFound is returned when a post or comment no longer exists.
	ErrNotFound = errors.New("post not found")

	// ErrAuth is returned when credentials are rejected.
	ErrAuth = errors.New("authentication failed")
)
