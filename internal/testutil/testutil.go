package testutil

import (
	"context"
	"fmt"
	"go-gin-checkout/config"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Setup 連線測試用 Postgres 與 Redis 並套用 migration
func Setup() (*pgxpool.Pool, *redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	log := logger.WithComponent("testutil")

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	if err := database.Migrate(context.Background(), testDB); err != nil {
		testDB.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}
	log.Info("Test database connected", zap.String("db", cfg.Database.DBName))

	testRdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		testDB.Close()
		return nil, nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	log.Info("Test redis connected", zap.String("addr", cfg.Redis.Addr()))

	cleanup := func() {
		testDB.Close()
		testRdb.Close()
	}
	return testDB, testRdb, cleanup, nil
}

// Reset 清空所有資料表與 Redis
func Reset(ctx context.Context, db *pgxpool.Pool, rdb *redis.Client) error {
	if _, err := db.Exec(ctx, "TRUNCATE ticket_lines, tickets, cart_items, carts, products, users RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	if err := rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("flush redis: %w", err)
	}
	return nil
}
