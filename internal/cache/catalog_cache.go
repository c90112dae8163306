package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/egonzalezhe/techflow/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "catalog:list"

// CatalogCache caches the public service list in Redis.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCatalogCache returns a new CatalogCache.
func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *CatalogCache) GetList(ctx context.Context) ([]dom.Service, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Service
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the list in cache.
func (c *CatalogCache) SetList(ctx context.Context, list []dom.Service) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// Invalidate drops the cached list (called on every write).
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList).Err()
}
