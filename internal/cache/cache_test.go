package cache

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/domain"
)

func testCache(t *testing.T, cfg domain.CacheConfig) *Cache[*domain.AnalysisResult] {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	c, err := New[*domain.AnalysisResult](cfg, "analysis", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPutAndGet(t *testing.T) {
	c := testCache(t, domain.CacheConfig{MaxEntries: 10, TTL: time.Minute})
	ctx := context.Background()

	result := &domain.AnalysisResult{DocumentType: domain.DocTypeInsurance}
	c.Put(ctx, "abc", result)

	got, ok := c.Get(ctx, "abc")
	require.True(t, ok)
	assert.Equal(t, domain.DocTypeInsurance, got.DocumentType)
}

func TestGetMissingKey(t *testing.T) {
	c := testCache(t, domain.CacheConfig{MaxEntries: 10, TTL: time.Minute})

	_, ok := c.Get(context.Background(), "nope")
	assert.False(t, ok)
}

func TestEvictionAtCapacity(t *testing.T) {
	c := testCache(t, domain.CacheConfig{MaxEntries: 2, TTL: time.Minute})
	ctx := context.Background()

	c.Put(ctx, "a", &domain.AnalysisResult{})
	c.Put(ctx, "b", &domain.AnalysisResult{})
	c.Put(ctx, "c", &domain.AnalysisResult{})

	assert.LessOrEqual(t, c.Len(), 2)
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok, "oldest entry should have been evicted")
}

func TestRemove(t *testing.T) {
	c := testCache(t, domain.CacheConfig{MaxEntries: 10, TTL: time.Minute})
	ctx := context.Background()

	c.Put(ctx, "abc", &domain.AnalysisResult{})
	c.Remove(ctx, "abc")

	_, ok := c.Get(ctx, "abc")
	assert.False(t, ok)
}

func TestInvalidRedisURL(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	_, err := New[*domain.AnalysisResult](domain.CacheConfig{
		MaxEntries: 10,
		TTL:        time.Minute,
		RedisURL:   "://not-a-url",
	}, "analysis", logger)
	assert.Error(t, err)
}
