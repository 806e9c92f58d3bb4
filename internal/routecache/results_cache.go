package routecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/passbi/streetrouter/internal/graphmodel"
)

// ResultsKey derives a deterministic cache key for a completed search's
// reached-vertex result map, scoped by origin, mode, the active dominance
// variable and the visitor's stop condition so distinct searches never
// collide.
func ResultsKey(lat, lon float64, mode graphmodel.Mode, variable string, scope string) string {
	data := fmt.Sprintf("%.6f,%.6f,%s,%s,%s", lat, lon, mode, variable, scope)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("results:%x", hash[:12])
}

// GetResults retrieves a cached reached-vertex cost map, returning (nil,
// false, nil) on a cache miss.
func GetResults(ctx context.Context, key string) (map[graphmodel.VertexIndex]float64, bool, error) {
	c, err := GetClient()
	if err != nil {
		return nil, false, err
	}

	data, err := c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var results map[graphmodel.VertexIndex]float64
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached results: %w", err)
	}
	return results, true, nil
}

// SetResults caches results under key with ttl (pass 0 to use the
// configured default TTL).
func SetResults(ctx context.Context, key string, results map[graphmodel.VertexIndex]float64, ttl time.Duration) error {
	c, err := GetClient()
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = LoadConfigFromEnv().TTL
	}

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return c.Set(ctx, key, data, ttl).Err()
}

// LockKey derives the mutex key guarding concurrent population of key.
func LockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// AcquireLock attempts to claim the population lock for key, returning
// false if another caller already holds it.
func AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	c, err := GetClient()
	if err != nil {
		return false, err
	}
	if ttl <= 0 {
		ttl = LoadConfigFromEnv().LockTTL
	}
	return c.SetNX(ctx, LockKey(key), "1", ttl).Result()
}

// ReleaseLock releases the population lock for key.
func ReleaseLock(ctx context.Context, key string) error {
	c, err := GetClient()
	if err != nil {
		return err
	}
	return c.Del(ctx, LockKey(key)).Err()
}
