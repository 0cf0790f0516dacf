package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// windowScript increments the counter of a key and starts its window on the first hit.
// It returns the new count and the remaining window in milliseconds.
var windowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// WindowCounter counts hits per key in fixed windows. A window starts with the
// first hit of a key and the key expires when the window ends.
type WindowCounter struct {
	client    *Client
	namespace string
	window    time.Duration
}

// NewWindowCounter creates a fixed window counter
func NewWindowCounter(client *Client, namespace string, window time.Duration) (*WindowCounter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if window < time.Millisecond {
		return nil, fmt.Errorf("invalid window: %v, must be at least 1ms", window)
	}

	return &WindowCounter{
		client:    client,
		namespace: namespace,
		window:    window,
	}, nil
}

// buildKey constructs the full key using Namespace::key format
func (wc *WindowCounter) buildKey(key string) string {
	if wc.namespace != "" {
		return wc.namespace + "::" + key
	}
	return key
}

// Hit counts one hit for key and returns the count within the current window
// together with the time left until the window resets.
func (wc *WindowCounter) Hit(ctx context.Context, key string) (int64, time.Duration, error) {
	result, err := windowScript.Run(ctx, wc.client.GetClient(), []string{wc.buildKey(key)},
		wc.window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count hit: %w", err)
	}
	if len(result) != 2 {
		return 0, 0, fmt.Errorf("unexpected window script result: %v", result)
	}

	return result[0], time.Duration(result[1]) * time.Millisecond, nil
}

// ActiveKeys counts the keys of the namespace that are still inside their window
func (wc *WindowCounter) ActiveKeys(ctx context.Context) (int64, error) {
	var (
		cursor uint64
		total  int64
	)
	for {
		keys, next, err := wc.client.GetClient().Scan(ctx, cursor, wc.buildKey("*"), 100).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan keys: %w", err)
		}
		total += int64(len(keys))
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}
