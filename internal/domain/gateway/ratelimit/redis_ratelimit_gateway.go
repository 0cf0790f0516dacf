package ratelimit

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

const healthTimeout = 2 * time.Second

type windowCounter interface {
	Hit(ctx context.Context, key string) (int64, time.Duration, error)
	ActiveKeys(ctx context.Context) (int64, error)
}

// RedisRateLimitGateway shares the counters between instances through Redis.
// Redis expires the keys itself, so there is nothing to sweep.
type RedisRateLimitGateway struct {
	client  *redis.Client
	counter windowCounter
	window  time.Duration
	limit   int
}

func NewRedisRateLimitGateway(client *redis.Client, namespace string, windowSize time.Duration, limit int) (*RedisRateLimitGateway, error) {
	counter, err := redis.NewWindowCounter(client, namespace, windowSize)
	if err != nil {
		return nil, err
	}

	return &RedisRateLimitGateway{
		client:  client,
		counter: counter,
		window:  windowSize,
		limit:   limit,
	}, nil
}

func (gateway *RedisRateLimitGateway) Hit(ctx context.Context, clientID string, now time.Time) (model.RateLimitDecision, error) {
	count, ttl, err := gateway.counter.Hit(ctx, clientID)
	if err != nil {
		return model.RateLimitDecision{}, err
	}

	resetAt := now.Add(ttl)
	decision := model.RateLimitDecision{
		Allowed: count <= int64(gateway.limit),
		Count:   int(count),
		Limit:   gateway.limit,
		ResetAt: resetAt,
	}
	if !decision.Allowed {
		decision.RetryAfter = retryAfterSeconds(resetAt, now)
	}
	return decision, nil
}

func (gateway *RedisRateLimitGateway) Sweep(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (gateway *RedisRateLimitGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	details, err := gateway.client.Health(ctx)
	details["store"] = "redis"
	details["limit"] = strconv.Itoa(gateway.limit)
	details["window"] = gateway.window.String()
	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	active, err := gateway.counter.ActiveKeys(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("rate-limit.error.count-failed"), zap.Error(err))
		details["clients-error"] = err.Error()
	} else {
		details["clients"] = strconv.FormatInt(active, 10)
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
