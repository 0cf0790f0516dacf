package redis

import (
	"context"
	"strconv"
)

// Health pings the server and reports the connection pool statistics.
// The details are filled even when the ping fails.
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	stats := c.Stats()
	details := map[string]string{
		"addr":        c.config.Addr(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		"hits":        strconv.FormatUint(uint64(stats.Hits), 10),
		"misses":      strconv.FormatUint(uint64(stats.Misses), 10),
		"timeouts":    strconv.FormatUint(uint64(stats.Timeouts), 10),
	}

	if err := c.Ping(ctx); err != nil {
		return details, err
	}
	return details, nil
}
