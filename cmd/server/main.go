package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/cache"
	"go-gin-checkout/internal/database"
	"go-gin-checkout/internal/handler"
	"go-gin-checkout/internal/metrics"
	"go-gin-checkout/internal/notification"
	"go-gin-checkout/internal/queue"
	"go-gin-checkout/internal/repository"
	"go-gin-checkout/internal/repository/memory"
	"go-gin-checkout/internal/service"
	"go-gin-checkout/internal/worker"
	"go-gin-checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	users    repository.UserRepository
	carts    repository.CartRepository
	products repository.ProductRepository
	tickets  repository.TicketRepository
	close    func()
}

func main() {
	// .env 不存在時沿用環境變數
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		logger.L.Warn("Invalid log level, keeping default", zap.String("level", cfg.App.LogLevel))
	}
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := initRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.String("driver", cfg.App.StoreDriver), zap.Error(err))
	}
	defer repos.close()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	notificationQueue, err := initQueue(ctx, cfg, rdb)
	if err != nil {
		log.Fatal("Failed to initialize notification queue", zap.Error(err))
	}

	checkoutMetrics := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)

	purchaseOpts := []service.PurchaseOption{
		service.WithNotificationQueue(notificationQueue),
		service.WithMetrics(checkoutMetrics),
		service.WithNotifyTimeout(cfg.Checkout.NotifyTimeout),
	}
	if rdb != nil {
		purchaseOpts = append(purchaseOpts, service.WithCheckoutLock(cache.NewRedisCheckoutLock(rdb, cfg.Checkout.LockTTL)))
	}
	purchaseService := service.NewPurchaseService(repos.users, repos.carts, repos.products, repos.tickets, purchaseOpts...)

	notificationWorker := worker.NewNotificationWorker(notification.NewSender(cfg.Mail), notificationQueue, checkoutMetrics, cfg.Checkout.NotifyTimeout)
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	if err := notificationWorker.Start(workerCtx); err != nil {
		log.Fatal("Failed to start notification worker", zap.Error(err))
	}

	router := handler.NewRouter(cfg.Auth, handler.Handlers{
		Cart:    handler.NewCartHandler(service.NewCartService(repos.carts), purchaseService),
		Ticket:  handler.NewTicketHandler(service.NewTicketService(repos.tickets)),
		Product: handler.NewProductHandler(service.NewProductService(repos.products)),
		User:    handler.NewUserHandler(service.NewUserService(repos.users)),
	}, promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.App.StoreDriver), zap.String("queue", cfg.Queue.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	// 先停 HTTP 再停 worker，讓已排入的通知有機會送出
	cancelWorker()
	notificationWorker.Wait()
	log.Info("Shutdown complete")
}

func initRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	codes := repository.NewTicketCodeGenerator(cfg.Checkout.CodeMaxAttempts)

	if cfg.App.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		return &repositories{
			users:    memory.NewUserRepository(store),
			carts:    memory.NewCartRepository(store),
			products: memory.NewProductRepository(store),
			tickets:  memory.NewTicketRepository(store, codes, cfg.Checkout.CreateMaxAttempts),
			close:    func() {},
		}, nil
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.App.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &repositories{
		users:    repository.NewUserRepository(pool),
		carts:    repository.NewCartRepository(pool),
		products: repository.NewProductRepository(pool),
		tickets:  repository.NewTicketRepository(pool, codes, cfg.Checkout.CreateMaxAttempts),
		close:    pool.Close,
	}, nil
}

func initQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.NotificationQueue, error) {
	if cfg.Queue.Driver != config.QueueDriverRedis {
		return queue.NewNotificationQueue(cfg.Queue.BufferSize, cfg.Queue.MaxRetryCount), nil
	}
	if rdb == nil {
		return nil, errors.New("redis queue requires a redis client")
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "checkout"
	}
	consumerID := hostname + "-" + uuid.NewString()[:8]
	return queue.NewRedisStreamNotificationQueue(ctx, rdb, consumerID, queue.StreamConfigFrom(cfg.Queue))
}
