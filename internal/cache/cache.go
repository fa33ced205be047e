// Package cache stores analysis and ranking results for later retrieval
// by report id. The first tier is an in-process LRU with TTL expiry; an
// optional Redis tier lets several replicas serve each other's reports.
// A cache miss is never an error, callers re-analyze.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/domain"
)

// Cache is a two-tier key/value store for one result type. Values must be
// JSON-marshalable for the Redis tier.
type Cache[T any] struct {
	local  *expirable.LRU[string, T]
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *logrus.Logger
}

// New builds a cache namespaced by prefix. With an empty Redis URL the
// cache is purely in-process.
func New[T any](cfg domain.CacheConfig, prefix string, logger *logrus.Logger) (*Cache[T], error) {
	if logger == nil {
		logger = logrus.New()
	}
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 100
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	c := &Cache[T]{
		local:  expirable.NewLRU[string, T](maxEntries, nil, ttl),
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		c.client = redis.NewClient(opts)
	}
	return c, nil
}

// Put stores the value in both tiers. A Redis write failure is logged and
// ignored: the local tier still serves this replica.
func (c *Cache[T]) Put(ctx context.Context, key string, value T) {
	c.local.Add(key, value)

	if c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to marshal cache value")
		return
	}
	if err := c.client.Set(ctx, c.prefix+":"+key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to write cache value to redis")
	}
}

// Get returns the cached value, checking the local tier first and falling
// back to Redis. A Redis hit repopulates the local tier.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool) {
	if v, ok := c.local.Get(key); ok {
		return v, true
	}

	var zero T
	if c.client == nil {
		return zero, false
	}

	data, err := c.client.Get(ctx, c.prefix+":"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Failed to read cache value from redis")
		}
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal cache value")
		return zero, false
	}
	c.local.Add(key, v)
	return v, true
}

// Remove drops the key from both tiers.
func (c *Cache[T]) Remove(ctx context.Context, key string) {
	c.local.Remove(key)
	if c.client != nil {
		if err := c.client.Del(ctx, c.prefix+":"+key).Err(); err != nil {
			c.logger.WithError(err).WithField("key", key).Warn("Failed to delete cache value from redis")
		}
	}
}

// Len reports the local tier's entry count.
func (c *Cache[T]) Len() int {
	return c.local.Len()
}

// Close releases the Redis connection if one was configured.
func (c *Cache[T]) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
