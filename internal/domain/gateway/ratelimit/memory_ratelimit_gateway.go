package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"todo-api/internal/domain/model"
)

type window struct {
	count   int
	resetAt time.Time
}

// MemoryRateLimitGateway keeps the counters in a map owned by the process
type MemoryRateLimitGateway struct {
	mu      sync.Mutex
	clients map[string]*window
	window  time.Duration
	limit   int
}

func NewMemoryRateLimitGateway(windowSize time.Duration, limit int) *MemoryRateLimitGateway {
	return &MemoryRateLimitGateway{
		clients: make(map[string]*window),
		window:  windowSize,
		limit:   limit,
	}
}

func (gateway *MemoryRateLimitGateway) Hit(_ context.Context, clientID string, now time.Time) (model.RateLimitDecision, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	entry, ok := gateway.clients[clientID]
	if !ok || now.After(entry.resetAt) {
		entry = &window{count: 1, resetAt: now.Add(gateway.window)}
		gateway.clients[clientID] = entry
	} else {
		entry.count++
	}

	decision := model.RateLimitDecision{
		Allowed: entry.count <= gateway.limit,
		Count:   entry.count,
		Limit:   gateway.limit,
		ResetAt: entry.resetAt,
	}
	if !decision.Allowed {
		decision.RetryAfter = retryAfterSeconds(entry.resetAt, now)
	}
	return decision, nil
}

func (gateway *MemoryRateLimitGateway) Sweep(_ context.Context, now time.Time) (int, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	removed := 0
	for clientID, entry := range gateway.clients {
		if now.After(entry.resetAt) {
			delete(gateway.clients, clientID)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of tracked clients
func (gateway *MemoryRateLimitGateway) Len() int {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return len(gateway.clients)
}

func (gateway *MemoryRateLimitGateway) Health(_ context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"store":   "memory",
			"clients": strconv.Itoa(gateway.Len()),
			"limit":   strconv.Itoa(gateway.limit),
			"window":  gateway.window.String(),
		},
	}
}
