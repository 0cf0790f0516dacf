package ratelimit

import (
	"context"

	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Allow accounts one request of clientID. A rejected request returns a RateLimited error.
	Allow(ctx context.Context, clientID string) (model.RateLimitDecision, error)
	// Sweep evicts the expired client entries
	Sweep(ctx context.Context) (int, error)
}
