package domain

import "errors"

// Domain errors for series fetching and caching.
// These represent hard failures and are never retried internally; callers
// decide how to surface them.
var (
	// ErrMissingAPIKey indicates that a required API credential is not
	// configured. Returned before any network call is attempted.
	ErrMissingAPIKey = errors.New("api key is not configured")

	// ErrRemoteService indicates that an external API call failed: the HTTP
	// request did not succeed, returned a non-2xx status, or the response
	// body could not be parsed into the expected schema.
	ErrRemoteService = errors.New("remote service request failed")

	// ErrCacheCorrupted indicates that a cache snapshot file exists but
	// cannot be parsed. It is surfaced rather than silently bypassed so that
	// a previously written bad state is not masked by a live fetch.
	ErrCacheCorrupted = errors.New("cache snapshot is corrupted")
)
