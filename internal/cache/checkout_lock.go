package cache

import (
	"context"
	"fmt"
	apperrors "go-gin-checkout/pkg/app_errors"
	"go-gin-checkout/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReleaseFunc 釋放鎖；重複呼叫或鎖已過期時不做任何事
type ReleaseFunc func(ctx context.Context) error

type CheckoutLock interface {
	// 取得購物車的結帳鎖，已被持有時回傳 ErrCheckoutInProgress
	Acquire(ctx context.Context, cartID int) (ReleaseFunc, error)
}

type RedisCheckoutLockImpl struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultLockTTL = 30 * time.Second

func NewRedisCheckoutLock(client *redis.Client, ttl time.Duration) CheckoutLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisCheckoutLockImpl{
		client: client,
		ttl:    ttl,
	}
}

// 結帳鎖 key
func (l *RedisCheckoutLockImpl) getLockKey(cartID int) string {
	return fmt.Sprintf("checkout:cart:%d:lock", cartID)
}

func (l *RedisCheckoutLockImpl) Acquire(ctx context.Context, cartID int) (ReleaseFunc, error) {
	key := l.getLockKey(cartID)
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCheckoutInProgress
	}

	return func(ctx context.Context) error {
		return l.release(ctx, key, token)
	}, nil
}

/*
*

	釋放結帳鎖 (使用Lua腳本確保原子性)
	1. 比對 token，確認鎖仍屬於自己
	2. 刪除 key
*/
func (l *RedisCheckoutLockImpl) release(ctx context.Context, key string, token string) error {
	script := `
		-- 1. 取得參數
		local lock_key = KEYS[1]
		local token = ARGV[1]

		-- 2. 鎖已過期或被其他請求取得時不刪除
		if redis.call('GET', lock_key) ~= token then
			return 0
		end

		-- 3. 刪除鎖
		return redis.call('DEL', lock_key)
	`

	result, err := l.client.Eval(ctx, script, []string{key}, token).Int()
	if err != nil {
		return err
	}
	if result == 0 {
		logger.WithComponent("cache").Warn("checkout lock already released or expired", zap.String("key", key))
	}
	return nil
}
