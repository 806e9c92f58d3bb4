package graphsource

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// Config holds the Postgres connection parameters for the graph schema.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MinConns int32
	MaxConns int32
}

// LoadConfigFromEnv loads Config from environment variables, defaulting to
// a local, unauthenticated Postgres instance.
func LoadConfigFromEnv() *Config {
	port, _ := strconv.Atoi(getEnv("GRAPH_DB_PORT", "5432"))
	minConns, _ := strconv.Atoi(getEnv("GRAPH_DB_MIN_CONNS", "2"))
	maxConns, _ := strconv.Atoi(getEnv("GRAPH_DB_MAX_CONNS", "10"))

	return &Config{
		Host:     getEnv("GRAPH_DB_HOST", "localhost"),
		Port:     port,
		Database: getEnv("GRAPH_DB_NAME", "streetrouter"),
		User:     getEnv("GRAPH_DB_USER", "postgres"),
		Password: getEnv("GRAPH_DB_PASSWORD", ""),
		SSLMode:  getEnv("GRAPH_DB_SSLMODE", "disable"),
		MinConns: int32(minConns),
		MaxConns: int32(maxConns),
	}
}

// GetPool returns the global connection pool, initializing it from the
// environment on first use (singleton pattern).
func GetPool() (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		pool, poolErr = initPool(LoadConfigFromEnv())
	})
	return pool, poolErr
}

func initPool(config *Config) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		config.Host, config.Port, config.Database, config.User, config.Password, config.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MinConns = config.MinConns
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return p, nil
}

// Close closes the global connection pool, if initialized.
func Close() {
	if pool != nil {
		pool.Close()
	}
}

// HealthCheck verifies the pool is reachable and that PostGIS is installed,
// since street_vertex/street_edge geometry columns depend on it.
func HealthCheck(ctx context.Context) error {
	p, err := GetPool()
	if err != nil {
		return fmt.Errorf("graph database connection not initialized: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("graph database ping failed: %w", err)
	}

	var postgisVersion string
	if err := p.QueryRow(ctx, "SELECT PostGIS_Version()").Scan(&postgisVersion); err != nil {
		return fmt.Errorf("PostGIS not available: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
