package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	QueueDriverMemory = "memory"
	QueueDriverRedis  = "redis"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Mail     MailConfig
	Queue    QueueConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Env         string `envconfig:"APP_ENV" default:"dev"`
	Port        string `envconfig:"APP_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"postgres"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"5"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
		"UTC",
	)
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// 關閉時不使用結帳鎖，佇列也只能用 memory
	Enabled bool `envconfig:"REDIS_ENABLED" default:"true"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer    string        `envconfig:"JWT_ISSUER" default:"go-gin-checkout"`
	TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

// MailConfig SMTPHost 為空時只記錄 log，不實際寄信
type MailConfig struct {
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	From         string `envconfig:"MAIL_FROM" default:"no-reply@checkout.local"`
}

type QueueConfig struct {
	Driver             string        `envconfig:"QUEUE_DRIVER" default:"memory"`
	BufferSize         int           `envconfig:"QUEUE_BUFFER_SIZE" default:"256"`
	ClaimMinIdleTime   time.Duration `envconfig:"QUEUE_CLAIM_MIN_IDLE" default:"5s"`
	MaxRetryCount      int           `envconfig:"QUEUE_MAX_RETRY" default:"5"`
	ReadGroupBlockTime time.Duration `envconfig:"QUEUE_BLOCK_TIME" default:"2s"`
}

type CheckoutConfig struct {
	LockTTL           time.Duration `envconfig:"CHECKOUT_LOCK_TTL" default:"30s"`
	NotifyTimeout     time.Duration `envconfig:"CHECKOUT_NOTIFY_TIMEOUT" default:"5s"`
	CodeMaxAttempts   int           `envconfig:"TICKET_CODE_MAX_ATTEMPTS" default:"0"`
	CreateMaxAttempts int           `envconfig:"TICKET_CREATE_MAX_ATTEMPTS" default:"5"`
}

// Loaded 最近一次 LoadConfig 的結果
var Loaded *Config

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	Loaded = &cfg
	return Loaded, nil
}

func (c *Config) validate() error {
	switch c.App.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.App.StoreDriver)
	}
	switch c.Queue.Driver {
	case QueueDriverMemory:
	case QueueDriverRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("QUEUE_DRIVER=redis requires REDIS_ENABLED")
		}
	default:
		return fmt.Errorf("unsupported QUEUE_DRIVER %q", c.Queue.Driver)
	}
	return nil
}

func LoadTestConfig() *Config {
	return &Config{
		App: AppConfig{
			Env:         "test",
			Port:        "8080",
			LogLevel:    "debug",
			StoreDriver: StoreDriverPostgres,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            "5433", // 測試 DB 用 5433 port
			User:            "postgres",
			Password:        "postgres",
			DBName:          "test_db",
			SSLMode:         "disable",
			MaxConns:        25,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
		},
		Redis: RedisConfig{
			Host:    "localhost",
			Port:    "6380", // 測試 Redis 用 6380 port
			DB:      1,
			Enabled: true,
		},
		Auth: AuthConfig{
			JWTSecret: "test-secret",
			Issuer:    "go-gin-checkout-test",
			TokenTTL:  time.Hour,
		},
		Queue: QueueConfig{
			Driver:             QueueDriverMemory,
			BufferSize:         16,
			ClaimMinIdleTime:   100 * time.Millisecond,
			MaxRetryCount:      3,
			ReadGroupBlockTime: 100 * time.Millisecond,
		},
		Checkout: CheckoutConfig{
			LockTTL:           5 * time.Second,
			NotifyTimeout:     time.Second,
			CreateMaxAttempts: 5,
		},
	}
}
