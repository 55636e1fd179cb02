// Package constants defines timeout values and retry limits used throughout the application.
package constants

import "time"

const (
	// Request timeout for a single upstream HTTP call
	RequestTimeout = 30 * time.Second

	// Minimum gap between any two upstream requests, the BGG XML API
	// throttles aggressive clients
	MinRequestInterval = 2 * time.Second

	// Delay before a queued-or-rate-limited request is attempted again
	ThrottleRetryDelay = 4 * time.Second

	// Maximum retry attempts for a throttled request
	MaxThrottleRetries = 3

	// How often the periodic cache cleanup runs
	CachePruneInterval = 1 * time.Hour
)
