package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hookvault/hookvault/capture"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of capture.Repository
 * Uses a Redis Hash per captured request plus a lexicographic Sorted
 * Set per endpoint as the by-endpoint index. Index members are
 * "{padded_unix_nano}:{request_id}", so members sort in capture order
 * and double as the opaque page cursor: a page after cursor C is an
 * exclusive ZRangeByLex from C, which stays valid after everything at
 * or before C has been deleted. That property is what lets the delete
 * cascade page and batch without ever holding the full child set in
 * memory.
 *
 * A capped global Sorted Set of recent captures feeds the throughput
 * metrics collector.
 */

const (
	recordPrefix = "request:id"       // Record: request:id:{request_id}
	indexPrefix  = "request:endpoint" // Index: request:endpoint:{endpoint_id} -> ZSET of members
	recentKey    = "request:recent"   // Global recency ZSET scored by capture time
)

type Repository struct {
	client *redis.Client
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Repository{
		client: client,
	}, nil
}

// Append stores one captured request and indexes it under its endpoint
func (r *Repository) Append(ctx context.Context, req capture.Request) error {
	headersJSON, err := json.Marshal(req.Headers)
	if err != nil {
		return fmt.Errorf("marshaling headers: %w", err)
	}

	member := indexMember(req.CreatedAt.UnixNano(), req.ID)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recordKey(req.ID), map[string]interface{}{
			"id":          req.ID,
			"endpoint_id": req.EndpointID,
			"method":      req.Method,
			"headers":     string(headersJSON),
			"body":        req.Body,
			"created_at":  req.CreatedAt.UnixNano(),
		})
		pipe.ZAdd(ctx, indexKey(req.EndpointID), redis.Z{Score: 0, Member: member})
		pipe.ZAdd(ctx, recentKey, redis.Z{
			Score:  float64(req.CreatedAt.UnixNano()),
			Member: member,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing request: %w", err)
	}

	return nil
}

// PageByEndpoint returns one page of full request records in capture order
func (r *Repository) PageByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]capture.Request, string, error) {
	members, next, err := r.pageMembers(ctx, endpointID, cursor, limit)
	if err != nil {
		return nil, "", err
	}

	requests := make([]capture.Request, 0, len(members))
	for _, member := range members {
		data, err := r.client.HGetAll(ctx, recordKey(idFromMember(member))).Result()
		if err != nil {
			return nil, "", fmt.Errorf("getting request: %w", err)
		}
		if len(data) == 0 {
			// Record deleted between the index read and now; skip it
			continue
		}

		req, err := parseRequest(data)
		if err != nil {
			return nil, "", err
		}
		requests = append(requests, req)
	}

	return requests, next, nil
}

// PageKeysByEndpoint returns one page of opaque request keys for bulk deletion
func (r *Repository) PageKeysByEndpoint(ctx context.Context, endpointID, cursor string, limit int) ([]string, string, error) {
	return r.pageMembers(ctx, endpointID, cursor, limit)
}

/* DeleteBatch removes up to capture.DeleteBatchLimit requests in one
 * round trip: the record hash, the by-endpoint index member, and the
 * recency entry for each key. Keys that are already gone are ignored,
 * so a resumed cascade can safely re-delete.
 */
func (r *Repository) DeleteBatch(ctx context.Context, endpointID string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if len(keys) > capture.DeleteBatchLimit {
		return fmt.Errorf("batch of %d exceeds delete limit of %d", len(keys), capture.DeleteBatchLimit)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, member := range keys {
			pipe.Del(ctx, recordKey(idFromMember(member)))
			pipe.ZRem(ctx, indexKey(endpointID), member)
			pipe.ZRem(ctx, recentKey, member)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch-deleting requests: %w", err)
	}

	return nil
}

// Close closes the Redis connection
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (r *Repository) GetClient() *redis.Client {
	return r.client
}

// pageMembers reads one page of index members after the cursor
func (r *Repository) pageMembers(ctx context.Context, endpointID, cursor string, limit int) ([]string, string, error) {
	min := "-"
	if cursor != "" {
		// Exclusive range: the cursor itself was the last member of
		// the previous page
		min = "(" + cursor
	}

	members, err := r.client.ZRangeByLex(ctx, indexKey(endpointID), &redis.ZRangeBy{
		Min:   min,
		Max:   "+",
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, "", fmt.Errorf("paging request index: %w", err)
	}

	/* A full page gets a continuation cursor even when it happens to be
	 * the last one; the follow-up call answers an empty page with no
	 * cursor, which is the termination signal callers loop on.
	 */
	next := ""
	if len(members) == limit {
		next = members[len(members)-1]
	}

	return members, next, nil
}

// Helper functions

func recordKey(id string) string {
	return fmt.Sprintf("%s:%s", recordPrefix, id)
}

func indexKey(endpointID string) string {
	return fmt.Sprintf("%s:%s", indexPrefix, endpointID)
}

/* indexMember builds the sortable index entry for a request. The nano
 * timestamp is zero-padded so lexicographic order equals capture order;
 * the ID suffix keeps members unique even for same-instant captures.
 */
func indexMember(unixNano int64, id string) string {
	return fmt.Sprintf("%020d:%s", unixNano, id)
}

func idFromMember(member string) string {
	if i := strings.IndexByte(member, ':'); i >= 0 {
		return member[i+1:]
	}
	return member
}

func parseRequest(data map[string]string) (capture.Request, error) {
	headers := make(map[string]string)
	if headersStr, ok := data["headers"]; ok && headersStr != "" {
		if err := json.Unmarshal([]byte(headersStr), &headers); err != nil {
			return capture.Request{}, fmt.Errorf("unmarshaling headers: %w", err)
		}
	}

	return capture.Request{
		ID:         data["id"],
		EndpointID: data["endpoint_id"],
		Method:     data["method"],
		Headers:    headers,
		Body:       data["body"],
		CreatedAt:  time.Unix(0, parseInt64(data["created_at"])),
	}, nil
}

func parseInt64(s string) int64 {
	result, _ := strconv.ParseInt(s, 10, 64)
	return result
}
