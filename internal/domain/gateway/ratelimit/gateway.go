package ratelimit

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

// Gateway stores the request counters of each client
type Gateway interface {
	// Hit accounts one request of clientID at now and reports whether it is allowed
	Hit(ctx context.Context, clientID string, now time.Time) (model.RateLimitDecision, error)
	// Sweep evicts the entries whose window ended before now and returns how many were removed
	Sweep(ctx context.Context, now time.Time) (int, error)
	Health(ctx context.Context) model.ComponentHealthStatus
}

// retryAfterSeconds rounds the time left until resetAt up to whole seconds
func retryAfterSeconds(resetAt, now time.Time) int {
	left := resetAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
