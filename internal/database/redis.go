package database

import (
	"context"
	"fmt"
	"go-gin-checkout/config"
	"go-gin-checkout/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 3 * time.Second

// InitRedis 供結帳鎖與通知 stream 共用
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisPingTimeout,
		ReadTimeout:  redisPingTimeout,
		WriteTimeout: redisPingTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	logger.WithComponent("cache").Info("Redis connected", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB))
	return rdb, nil
}
