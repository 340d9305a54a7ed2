package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

const catalogKey = "autoshop:catalog:offers"

var _ catalog.Cache = (*CatalogRedisCache)(nil)

// redisClient is the subset of *redis.Client the cache needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CatalogRedisCache stores the ordered offer list as one JSON value.
// Redis failures degrade to a miss; the store stays the source of truth.
type CatalogRedisCache struct {
	client redisClient
	ttl    time.Duration
}

func NewCatalogRedisCache(client redisClient, ttl time.Duration) *CatalogRedisCache {
	return &CatalogRedisCache{client: client, ttl: ttl}
}

// Dial parses a redis:// URL and pings the server.
func Dial(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *CatalogRedisCache) Get(ctx context.Context) ([]models.ServiceOffer, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Debug("catalog cache miss")
		} else {
			logger.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var offers []models.ServiceOffer
	if err := json.Unmarshal(raw, &offers); err != nil {
		logger.Warn("catalog cache holds bad payload", "error", err)
		return nil, false
	}
	return offers, true
}

func (c *CatalogRedisCache) Set(ctx context.Context, offers []models.ServiceOffer) {
	raw, err := json.Marshal(offers)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		logger.Warn("catalog cache write failed", "error", err)
	}
}

func (c *CatalogRedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		logger.Warn("catalog cache invalidate failed", "error", err)
	}
}
