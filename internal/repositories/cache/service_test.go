package cache

import (
	"context"
	"testing"
	"time"

	"boostify/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRedis keeps values in a map, answering with the same cmd results the
// real client would. TTLs are accepted and ignored.
type fakeRedis struct {
	store map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.store[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	data, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(data), nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.store[key]; ok {
			delete(f.store, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedis) FlushAll(ctx context.Context) *redis.StatusCmd {
	f.store = make(map[string][]byte)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeRedis) Close() error { return nil }

func newTestCache(store *fakeRedis) *CacheService {
	return &CacheService{client: store, ttl: time.Hour}
}

func TestCacheUser(t *testing.T) {
	ctx := context.Background()
	user := &models.User{
		Model: gorm.Model{ID: 7},
		Email: "kamran@example.com",
		Name:  "Kamran",
	}

	t.Run("stores the user under its id key only", func(t *testing.T) {
		store := newFakeRedis()
		svc := newTestCache(store)

		require.NoError(t, svc.CacheUser(ctx, user))

		assert.Len(t, store.store, 1)
		assert.Contains(t, store.store, "user:id:7")

		cached, err := svc.GetUser(ctx, svc.GenerateKey("user", "id", user.ID))
		require.NoError(t, err)
		assert.Equal(t, "kamran@example.com", cached.Email)
	})

	t.Run("invalidation clears every key caching wrote", func(t *testing.T) {
		store := newFakeRedis()
		svc := newTestCache(store)

		require.NoError(t, svc.CacheUser(ctx, user))
		require.NoError(t, svc.InvalidateUser(ctx, user))

		assert.Empty(t, store.store)
		_, err := svc.GetUser(ctx, svc.GenerateKey("user", "id", user.ID))
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("nil user is rejected", func(t *testing.T) {
		svc := newTestCache(newFakeRedis())
		assert.Error(t, svc.CacheUser(ctx, nil))
	})
}

func TestCacheCatalog(t *testing.T) {
	ctx := context.Background()
	store := newFakeRedis()
	svc := newTestCache(store)

	_, found, err := svc.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	catalog := []models.Service{{Name: "Instagram Followers", Category: models.CategoryFollowers}}
	require.NoError(t, svc.CacheCatalog(ctx, catalog))

	cached, found, err := svc.GetCatalog(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Instagram Followers", cached[0].Name)

	require.NoError(t, svc.InvalidateCatalog(ctx))
	_, found, err = svc.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
