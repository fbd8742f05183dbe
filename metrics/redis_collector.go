package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

/* RedisCollector implements the Collector interface for Redis-backed
 * metrics. Counts come from the same keys the repositories maintain:
 * endpoint record hashes, per-endpoint request indexes, and the global
 * recency sorted set the capture path feeds.
 */

const (
	endpointRecordPattern = "endpoint:id:*"
	requestIndexPattern   = "request:endpoint:*"
	requestIndexPrefix    = "request:endpoint:"
	recentKey             = "request:recent"
)

type RedisCollector struct {
	client *redis.Client
}

// NewRedisCollector creates a new Redis metrics collector
func NewRedisCollector(client *redis.Client) *RedisCollector {
	return &RedisCollector{
		client: client,
	}
}

// Collect gathers all metrics from Redis
func (c *RedisCollector) Collect(ctx context.Context) (Metrics, error) {
	endpointCount, err := c.GetEndpointCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting endpoint count: %w", err)
	}

	requestCount, err := c.GetRequestCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting request count: %w", err)
	}

	backlogs, err := c.GetBacklogs(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting backlogs: %w", err)
	}

	throughput, err := c.GetThroughput(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting throughput: %w", err)
	}

	return Metrics{
		EndpointCount: endpointCount,
		RequestCount:  requestCount,
		Backlogs:      backlogs,
		Throughput:    throughput,
		Timestamp:     time.Now(),
	}, nil
}

// GetEndpointCount counts endpoint records via SCAN
func (c *RedisCollector) GetEndpointCount(ctx context.Context) (int64, error) {
	return c.countKeys(ctx, endpointRecordPattern)
}

// GetRequestCount sums stored requests across all endpoint indexes
func (c *RedisCollector) GetRequestCount(ctx context.Context) (int64, error) {
	backlogs, err := c.GetBacklogs(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, count := range backlogs {
		total += count
	}
	return total, nil
}

// GetBacklogs returns the stored request count per endpoint
func (c *RedisCollector) GetBacklogs(ctx context.Context) (map[string]int64, error) {
	backlogs := make(map[string]int64)

	iter := c.client.Scan(ctx, 0, requestIndexPattern, 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		count, err := c.client.ZCard(ctx, key).Result()
		if err != nil && err != redis.Nil {
			// Continue even if one index fails
			continue
		}

		endpointID := strings.TrimPrefix(key, requestIndexPrefix)
		backlogs[endpointID] = count
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning request indexes: %w", err)
	}

	return backlogs, nil
}

// GetThroughput counts recent captures over 1m/5m/15m windows
func (c *RedisCollector) GetThroughput(ctx context.Context) (ThroughputMetrics, error) {
	now := time.Now()

	// Drop entries older than the widest window before counting
	cutoff := now.Add(-15 * time.Minute).UnixNano()
	if err := c.client.ZRemRangeByScore(ctx, recentKey, "-inf", fmt.Sprintf("%d", cutoff)).Err(); err != nil && err != redis.Nil {
		return ThroughputMetrics{}, fmt.Errorf("trimming recency set: %w", err)
	}

	lastMinute, err := c.countSince(ctx, now.Add(-1*time.Minute))
	if err != nil {
		return ThroughputMetrics{}, err
	}

	lastFive, err := c.countSince(ctx, now.Add(-5*time.Minute))
	if err != nil {
		return ThroughputMetrics{}, err
	}

	lastFifteen, err := c.countSince(ctx, now.Add(-15*time.Minute))
	if err != nil {
		return ThroughputMetrics{}, err
	}

	return ThroughputMetrics{
		LastMinute:         lastMinute,
		LastFiveMinutes:    lastFive,
		LastFifteenMinutes: lastFifteen,
	}, nil
}

func (c *RedisCollector) countSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := c.client.ZCount(ctx, recentKey, fmt.Sprintf("%d", since.UnixNano()), "+inf").Result()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("counting recent captures: %w", err)
	}
	return count, nil
}

func (c *RedisCollector) countKeys(ctx context.Context, pattern string) (int64, error) {
	var count int64

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scanning keys: %w", err)
	}

	return count, nil
}
