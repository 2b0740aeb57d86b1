package domain

import "errors"

var (
	// ErrUnknownToken is returned when an identifier does not resolve via the
	// token registry. Never retried.
	ErrUnknownToken = errors.New("unknown token")

	// ErrChainMismatch is returned when a resolved token belongs to a
	// different chain than the one requested. Never retried.
	ErrChainMismatch = errors.New("token belongs to a different chain")

	// ErrUpstreamRateLimited marks transient provider throttling, retried
	// with bounded backoff inside the aggregator only
	ErrUpstreamRateLimited = errors.New("upstream rate limited")

	// ErrAggregationFailed is any non-recoverable failure while scanning or
	// summing burn events
	ErrAggregationFailed = errors.New("aggregation failed")

	// ErrCacheUnavailable is returned when the cache store is unreachable;
	// user-facing reads degrade to a placeholder instead of failing
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrRefreshInFlight is returned when a recomputation for the token is
	// already running and the in-flight guard rejects a duplicate
	ErrRefreshInFlight = errors.New("refresh already in flight")
)
