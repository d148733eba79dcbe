package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "stockie:http:"

// RedisResponseCache implements ResponseCache on Redis so that every
// instance behind a load balancer shares cached responses
type RedisResponseCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisResponseCache connects to Redis and verifies the connection
func NewRedisResponseCache(ctx context.Context, cfg RedisConfig) (*RedisResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisResponseCacheWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisResponseCacheWithClient wraps an existing client
func NewRedisResponseCacheWithClient(client redis.UniversalClient, keyPrefix string) *RedisResponseCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisResponseCache{client: client, keyPrefix: keyPrefix}
}

// Get returns the cached value. A missing key is a miss, not an error.
func (c *RedisResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached response: %w", err)
	}
	return value, true, nil
}

// Set stores value with SET key value EX ttl
func (c *RedisResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, effectiveTTL(ttl)).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisResponseCache) Close() error {
	return c.client.Close()
}

var _ ResponseCache = (*RedisResponseCache)(nil)
