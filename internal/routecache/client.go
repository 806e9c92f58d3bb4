package routecache

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config holds Redis connection parameters and the default entry TTLs.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
	LockTTL  time.Duration
}

// LoadConfigFromEnv loads Config from environment variables.
func LoadConfigFromEnv() *Config {
	port, _ := strconv.Atoi(getEnv("ROUTECACHE_REDIS_PORT", "6379"))
	db, _ := strconv.Atoi(getEnv("ROUTECACHE_REDIS_DB", "0"))
	ttl, _ := time.ParseDuration(getEnv("ROUTECACHE_TTL", "10m"))
	lockTTL, _ := time.ParseDuration(getEnv("ROUTECACHE_LOCK_TTL", "5s"))

	return &Config{
		Host:     getEnv("ROUTECACHE_REDIS_HOST", "localhost"),
		Port:     port,
		Password: getEnv("ROUTECACHE_REDIS_PASSWORD", ""),
		DB:       db,
		TTL:      ttl,
		LockTTL:  lockTTL,
	}
}

// GetClient returns the global Redis client, initializing it on first use.
func GetClient() (*redis.Client, error) {
	clientOnce.Do(func() {
		config := LoadConfigFromEnv()

		opts := &redis.Options{
			Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
			Password:     config.Password,
			DB:           config.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
		}

		if getEnv("ROUTECACHE_REDIS_TLS_ENABLED", "false") == "true" {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		client = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("failed to connect to Redis: %w", err)
		}
	})

	return client, clientErr
}

// Close closes the global Redis client.
func Close() {
	if client != nil {
		client.Close()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
