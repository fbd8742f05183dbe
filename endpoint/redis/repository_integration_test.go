//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/hookvault/hookvault/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Insert_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("insert and retrieve endpoint", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		e := endpoint.Endpoint{
			ID:        "ep-1",
			OwnerID:   "owner-1",
			Token:     "tok-1",
			CreatedAt: time.Now().Truncate(time.Second),
		}

		require.NoError(t, repo.Insert(ctx, e))

		got, err := repo.Get(ctx, "ep-1")
		require.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, e.OwnerID, got.OwnerID)
		assert.Equal(t, e.Token, got.Token)
		assert.Equal(t, e.CreatedAt.Unix(), got.CreatedAt.Unix())
	})

	t.Run("get unknown endpoint", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, endpoint.ErrNotFound)
	})
}

func TestRepository_GetByToken_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("token index resolves the endpoint", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		e := endpoint.Endpoint{ID: "ep-1", OwnerID: "owner-1", Token: "tok-1", CreatedAt: time.Now()}
		require.NoError(t, repo.Insert(ctx, e))

		got, err := repo.GetByToken(ctx, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, "ep-1", got.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		_, err := repo.GetByToken(ctx, "ghost")
		assert.ErrorIs(t, err, endpoint.ErrNotFound)
	})
}

func TestRepository_ListByOwner_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("owner index scopes the listing", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		require.NoError(t, repo.Insert(ctx, endpoint.Endpoint{ID: "ep-1", OwnerID: "owner-1", Token: "tok-1", CreatedAt: time.Now()}))
		require.NoError(t, repo.Insert(ctx, endpoint.Endpoint{ID: "ep-2", OwnerID: "owner-1", Token: "tok-2", CreatedAt: time.Now()}))
		require.NoError(t, repo.Insert(ctx, endpoint.Endpoint{ID: "ep-3", OwnerID: "owner-2", Token: "tok-3", CreatedAt: time.Now()}))

		mine, err := repo.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		theirs, err := repo.ListByOwner(ctx, "owner-2")
		require.NoError(t, err)
		assert.Len(t, theirs, 1)

		nobody, err := repo.ListByOwner(ctx, "owner-3")
		require.NoError(t, err)
		assert.Empty(t, nobody)
	})
}

func TestRepository_Delete_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes the record and both indexes", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		e := endpoint.Endpoint{ID: "ep-1", OwnerID: "owner-1", Token: "tok-1", CreatedAt: time.Now()}
		require.NoError(t, repo.Insert(ctx, e))

		require.NoError(t, repo.Delete(ctx, "ep-1"))

		_, err := repo.Get(ctx, "ep-1")
		assert.ErrorIs(t, err, endpoint.ErrNotFound)

		_, err = repo.GetByToken(ctx, "tok-1")
		assert.ErrorIs(t, err, endpoint.ErrNotFound)

		mine, err := repo.ListByOwner(ctx, "owner-1")
		require.NoError(t, err)
		assert.Empty(t, mine)

		assert.False(t, KeyExists(t, redisContainer.Addr, "endpoint:id:ep-1"))
		assert.False(t, KeyExists(t, redisContainer.Addr, "endpoint:token:tok-1"))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		redisContainer, cleanup := SetupRedisContainer(t, ctx)
		defer cleanup()

		repo := CreateTestRepository(t, redisContainer.Addr)
		defer repo.Close(ctx)

		e := endpoint.Endpoint{ID: "ep-1", OwnerID: "owner-1", Token: "tok-1", CreatedAt: time.Now()}
		require.NoError(t, repo.Insert(ctx, e))

		require.NoError(t, repo.Delete(ctx, "ep-1"))
		require.NoError(t, repo.Delete(ctx, "ep-1"))
	})
}
