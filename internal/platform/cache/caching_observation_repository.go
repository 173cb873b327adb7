// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/usecase"
)

// CachingObservationRepository decorates an ObservationRepository with Redis
// caching. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository.
type CachingObservationRepository struct {
	inner     usecase.ObservationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingObservationRepository decorates an ObservationRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "observations".
func NewCachingObservationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ObservationRepository, namespace string) *CachingObservationRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "observations"
	}
	return &CachingObservationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch inserts or updates observations and invalidates related cache entries.
func (c *CachingObservationRepository) UpsertBatch(ctx context.Context, obs []entity.Observation) error {
	// First upsert to the underlying repository
	if err := c.inner.UpsertBatch(ctx, obs); err != nil {
		return err
	}
	// Exit early if Redis is not configured or there are no observations
	if c.rdb == nil || len(obs) == 0 {
		return nil
	}

	// Invalidate affected cache entries (keys per series)
	seen := map[string]struct{}{}
	for _, o := range obs {
		prefix := c.cacheKeyPrefix(o.SeriesID)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		_ = c.deleteByPattern(ctx, prefix+"*") // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Find retrieves observations, checking cache first then falling back to the store.
func (c *CachingObservationRepository) Find(ctx context.Context, seriesID string, limit int) ([]entity.Observation, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, seriesID, limit)
	}

	key := c.cacheKey(seriesID, limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Observation
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.Find(ctx, seriesID, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingObservationRepository) cacheKey(seriesID string, limit int) string {
	return fmt.Sprintf("%s:%s:%d", c.namespace, safe(seriesID), limit)
}

// cacheKeyPrefix generates a prefix for invalidating related cache entries.
func (c *CachingObservationRepository) cacheKeyPrefix(seriesID string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(seriesID))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingObservationRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
