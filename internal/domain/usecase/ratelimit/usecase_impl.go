package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/ratelimit"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type rateLimitUseCase struct {
	gateway ratelimit.Gateway
	now     func() time.Time
}

func NewRateLimitUseCase(gateway ratelimit.Gateway) UseCase {
	return NewRateLimitUseCaseWithClock(gateway, time.Now)
}

// NewRateLimitUseCaseWithClock uses now instead of the wall clock
func NewRateLimitUseCaseWithClock(gateway ratelimit.Gateway, now func() time.Time) UseCase {
	return &rateLimitUseCase{
		gateway: gateway,
		now:     now,
	}
}

// Allow lets the request through when the store fails, an unavailable limiter must not take the API down
func (uc *rateLimitUseCase) Allow(ctx context.Context, clientID string) (model.RateLimitDecision, error) {
	decision, err := uc.gateway.Hit(ctx, clientID, uc.now())
	if err != nil {
		log.Warn(msg.GetMessage("rate-limit.error.store-unavailable"),
			zap.String("client", clientID),
			zap.Error(err),
		)
		return model.RateLimitDecision{Allowed: true}, nil
	}

	if !decision.Allowed {
		return decision, model.NewRateLimitedError(msg.GetMessage("security.error.rate-limited"), decision.RetryAfter)
	}
	return decision, nil
}

func (uc *rateLimitUseCase) Sweep(ctx context.Context) (int, error) {
	return uc.gateway.Sweep(ctx, uc.now())
}
