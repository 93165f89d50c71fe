package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go-gin-checkout/internal/cache"
	apperrors "go-gin-checkout/pkg/app_errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCheckoutLock_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mr, client := setupRedis(t)
		lock := cache.NewRedisCheckoutLock(client, time.Second)

		release, err := lock.Acquire(ctx, 1)
		require.NoError(t, err)
		assert.True(t, mr.Exists("checkout:cart:1:lock"))

		require.NoError(t, release(ctx))
		assert.False(t, mr.Exists("checkout:cart:1:lock"))

		// 釋放後可再次取得
		release, err = lock.Acquire(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, release(ctx))
	})

	t.Run("Failed - ErrCheckoutInProgress", func(t *testing.T) {
		_, client := setupRedis(t)
		lock := cache.NewRedisCheckoutLock(client, time.Second)

		release, err := lock.Acquire(ctx, 1)
		require.NoError(t, err)
		defer release(ctx)

		_, err = lock.Acquire(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrCheckoutInProgress)

		// 不同購物車互不影響
		other, err := lock.Acquire(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, other(ctx))
	})

	t.Run("Success - Expired lock is not released by old holder", func(t *testing.T) {
		mr, client := setupRedis(t)
		lock := cache.NewRedisCheckoutLock(client, time.Second)

		stale, err := lock.Acquire(ctx, 1)
		require.NoError(t, err)

		mr.FastForward(2 * time.Second)

		fresh, err := lock.Acquire(ctx, 1)
		require.NoError(t, err)

		require.NoError(t, stale(ctx))
		assert.True(t, mr.Exists("checkout:cart:1:lock"))

		require.NoError(t, fresh(ctx))
		assert.False(t, mr.Exists("checkout:cart:1:lock"))
	})

	t.Run("Success - Only one concurrent holder", func(t *testing.T) {
		_, client := setupRedis(t)
		lock := cache.NewRedisCheckoutLock(client, 5*time.Second)

		var wg sync.WaitGroup
		var mu sync.Mutex
		acquired := 0

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := lock.Acquire(ctx, 7); err == nil {
					mu.Lock()
					acquired++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, acquired)
	})

	t.Run("Failed - Redis unavailable", func(t *testing.T) {
		mr, client := setupRedis(t)
		lock := cache.NewRedisCheckoutLock(client, time.Second)
		mr.Close()

		_, err := lock.Acquire(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrCheckoutInProgress)
	})
}
