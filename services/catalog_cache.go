package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is an optional Redis-backed cache for full-collection list
// responses. A nil *CatalogCache is valid and disables caching, so the
// handlers never have to branch on configuration.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache connects to Redis and verifies the connection.
func NewCatalogCache(redisURL string, ttl time.Duration) (*CatalogCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func listKey(collection string) string {
	return fmt.Sprintf("catalog:%s:list", collection)
}

// GetList loads a cached collection listing into dest. Returns false on a
// miss or when the cache is disabled; cache errors degrade to a miss.
func (cc *CatalogCache) GetList(ctx context.Context, collection string, dest interface{}) bool {
	if cc == nil {
		return false
	}

	data, err := cc.client.Get(ctx, listKey(collection)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

// SetList caches a collection listing under the configured TTL.
func (cc *CatalogCache) SetList(ctx context.Context, collection string, value interface{}) error {
	if cc == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s listing: %v", collection, err)
	}
	return cc.client.Set(ctx, listKey(collection), data, cc.ttl).Err()
}

// Invalidate drops the cached listing after any write to the collection.
func (cc *CatalogCache) Invalidate(ctx context.Context, collection string) error {
	if cc == nil {
		return nil
	}
	return cc.client.Del(ctx, listKey(collection)).Err()
}
