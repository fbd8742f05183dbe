package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hookvault/hookvault/endpoint"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of endpoint.Repository
 * Uses Redis Hashes for endpoint records plus two secondary indexes:
 * a plain key per routing token and a Set per owner. The indexes stand
 * in for the by-token and by-owner covering queries a table store
 * would provide.
 */

const (
	recordPrefix = "endpoint:id"    // Record: endpoint:id:{endpoint_id}
	tokenPrefix  = "endpoint:token" // Token index: endpoint:token:{token} -> endpoint_id
	ownerPrefix  = "endpoint:owner" // Owner index: endpoint:owner:{owner_id} -> Set of endpoint_ids
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

// Insert stores an endpoint record and its secondary index entries
func (r *Repository) Insert(ctx context.Context, e endpoint.Endpoint) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, recordKey(e.ID), map[string]interface{}{
			"id":         e.ID,
			"owner_id":   e.OwnerID,
			"token":      e.Token,
			"created_at": e.CreatedAt.Unix(),
		})
		pipe.Set(ctx, tokenKey(e.Token), e.ID, 0)
		pipe.SAdd(ctx, ownerKey(e.OwnerID), e.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing endpoint: %w", err)
	}

	return nil
}

// Get retrieves an endpoint by ID
func (r *Repository) Get(ctx context.Context, id string) (endpoint.Endpoint, error) {
	data, err := r.client.HGetAll(ctx, recordKey(id)).Result()
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("getting endpoint: %w", err)
	}
	if len(data) == 0 {
		return endpoint.Endpoint{}, endpoint.ErrNotFound
	}

	return parseEndpoint(data), nil
}

// GetByToken resolves a routing token through the token index
func (r *Repository) GetByToken(ctx context.Context, token string) (endpoint.Endpoint, error) {
	id, err := r.client.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return endpoint.Endpoint{}, endpoint.ErrNotFound
	}
	if err != nil {
		return endpoint.Endpoint{}, fmt.Errorf("resolving token: %w", err)
	}

	/* The record itself may already be gone if a delete just raced us.
	 * That still answers "not found" - a deleted endpoint and a token
	 * that never existed must be indistinguishable.
	 */
	return r.Get(ctx, id)
}

// ListByOwner returns every endpoint in the owner's index
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]endpoint.Endpoint, error) {
	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing owner index: %w", err)
	}

	endpoints := make([]endpoint.Endpoint, 0, len(ids))
	for _, id := range ids {
		e, err := r.Get(ctx, id)
		if err == endpoint.ErrNotFound {
			// Index entry outlived the record; skip it
			continue
		}
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, e)
	}

	return endpoints, nil
}

// Delete removes an endpoint record and its index entries
func (r *Repository) Delete(ctx context.Context, id string) error {
	e, err := r.Get(ctx, id)
	if err == endpoint.ErrNotFound {
		// Already gone; deletion is idempotent
		return nil
	}
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, recordKey(e.ID))
		pipe.Del(ctx, tokenKey(e.Token))
		pipe.SRem(ctx, ownerKey(e.OwnerID), e.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
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

// Helper functions

func recordKey(id string) string {
	return fmt.Sprintf("%s:%s", recordPrefix, id)
}

func tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", tokenPrefix, token)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("%s:%s", ownerPrefix, ownerID)
}

func parseEndpoint(data map[string]string) endpoint.Endpoint {
	return endpoint.Endpoint{
		ID:        data["id"],
		OwnerID:   data["owner_id"],
		Token:     data["token"],
		CreatedAt: time.Unix(parseInt64(data["created_at"]), 0),
	}
}

func parseInt64(s string) int64 {
	result, _ := strconv.ParseInt(s, 10, 64)
	return result
}
