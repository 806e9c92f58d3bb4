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

// SplitKey derives a deterministic cache key for a snap query. Coordinates
// are rounded to six decimal places (sub-meter) before hashing so repeated
// requests for effectively the same point share an entry.
func SplitKey(lat, lon, radiusMeters float64, mode graphmodel.Mode) string {
	data := fmt.Sprintf("%.6f,%.6f,%.1f,%s", lat, lon, radiusMeters, mode)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("split:%x", hash[:12])
}

// GetSplit retrieves a cached Split, returning (Split{}, false, nil) on a
// cache miss.
func GetSplit(ctx context.Context, key string) (graphmodel.Split, bool, error) {
	c, err := GetClient()
	if err != nil {
		return graphmodel.Split{}, false, err
	}

	data, err := c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return graphmodel.Split{}, false, nil
	}
	if err != nil {
		return graphmodel.Split{}, false, err
	}

	var split graphmodel.Split
	if err := json.Unmarshal(data, &split); err != nil {
		return graphmodel.Split{}, false, fmt.Errorf("unmarshal cached split: %w", err)
	}
	return split, true, nil
}

// SetSplit caches split under key with ttl (pass 0 to use the configured
// default TTL).
func SetSplit(ctx context.Context, key string, split graphmodel.Split, ttl time.Duration) error {
	c, err := GetClient()
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = LoadConfigFromEnv().TTL
	}

	data, err := json.Marshal(split)
	if err != nil {
		return fmt.Errorf("marshal split: %w", err)
	}
	return c.Set(ctx, key, data, ttl).Err()
}
