package model

import "time"

// RateLimitDecision is the outcome of accounting one request of a client
type RateLimitDecision struct {
	Allowed bool
	Count   int
	Limit   int
	ResetAt time.Time
	// RetryAfter is the number of whole seconds until ResetAt, rounded up
	RetryAfter int
}
