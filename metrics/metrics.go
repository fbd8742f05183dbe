package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the capture service.
type Metrics struct {
	// EndpointCount is the number of provisioned endpoints
	EndpointCount int64 `json:"endpoint_count"`

	// RequestCount is the total number of stored captured requests
	RequestCount int64 `json:"request_count"`

	// Backlogs maps endpoint_id to the number of requests stored for it
	Backlogs map[string]int64 `json:"backlogs"`

	// Throughput represents captures over recent time windows
	Throughput ThroughputMetrics `json:"throughput"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// ThroughputMetrics represents captured requests over different time windows.
type ThroughputMetrics struct {
	// LastMinute is requests captured in the last 1 minute
	LastMinute int64 `json:"last_minute"`

	// LastFiveMinutes is requests captured in the last 5 minutes
	LastFiveMinutes int64 `json:"last_five_minutes"`

	// LastFifteenMinutes is requests captured in the last 15 minutes
	LastFifteenMinutes int64 `json:"last_fifteen_minutes"`
}

// Collector defines the interface for collecting metrics from the capture service.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetEndpointCount returns the number of provisioned endpoints
	GetEndpointCount(ctx context.Context) (int64, error)

	// GetRequestCount returns the total number of stored requests
	GetRequestCount(ctx context.Context) (int64, error)

	// GetBacklogs returns the stored request count per endpoint
	GetBacklogs(ctx context.Context) (map[string]int64, error)

	// GetThroughput returns captures over time windows
	GetThroughput(ctx context.Context) (ThroughputMetrics, error)
}
