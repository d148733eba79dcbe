package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stockie/backend/internal/infrastructure/config"
)

// ResponseCacheFactory creates response caches based on configuration
type ResponseCacheFactory struct {
	redisConfig           config.RedisConfig
	cacheConfig           config.CacheConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// ResponseCacheFactoryOption is a functional option for configuring the factory
type ResponseCacheFactoryOption func(*ResponseCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) ResponseCacheFactoryOption {
	return func(f *ResponseCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to the
// in-memory cache. Default is true.
func WithInMemoryFallback(allow bool) ResponseCacheFactoryOption {
	return func(f *ResponseCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewResponseCacheFactory creates a new factory
func NewResponseCacheFactory(redisCfg config.RedisConfig, cacheCfg config.CacheConfig, opts ...ResponseCacheFactoryOption) *ResponseCacheFactory {
	f := &ResponseCacheFactory{
		redisConfig:           redisCfg,
		cacheConfig:           cacheCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCache returns a Redis cache when Redis is enabled and reachable,
// otherwise an in-memory cache
func (f *ResponseCacheFactory) CreateCache(ctx context.Context) (ResponseCache, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory response cache", zap.Duration("ttl", f.cacheConfig.TTL))
		return f.createInMemory(), nil
	}

	c, err := NewRedisResponseCache(ctx, RedisConfig{
		Addr:      f.redisConfig.Addr(),
		Password:  f.redisConfig.Password,
		DB:        f.redisConfig.DB,
		KeyPrefix: f.cacheConfig.KeyPrefix,
	})
	if err == nil {
		f.logger.Info("using Redis response cache", zap.String("addr", f.redisConfig.Addr()))
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis response cache unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory response cache. "+
		"Instances will not share cached responses.",
		zap.Error(err),
	)
	return f.createInMemory(), nil
}

func (f *ResponseCacheFactory) createInMemory() *InMemoryResponseCache {
	interval := f.cacheConfig.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return NewInMemoryResponseCache(interval)
}
