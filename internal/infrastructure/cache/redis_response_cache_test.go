package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisClientForTest returns a client for STOCKIE_TEST_REDIS_ADDR or skips
func redisClientForTest(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("STOCKIE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOCKIE_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	return client
}

func TestRedisResponseCache(t *testing.T) {
	client := redisClientForTest(t)
	prefix := "stockie:test:" + t.Name() + ":"
	c := NewRedisResponseCacheWithClient(client, prefix)
	defer c.Close()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "quote", []byte(`{"price":1}`), time.Minute))
	v, ok, err := c.Get(ctx, "quote")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"price":1}`, string(v))

	ttl, err := client.TTL(ctx, prefix+"quote").Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 2)

	client.Del(ctx, prefix+"quote")
}

func TestNewRedisResponseCacheWithClient_DefaultPrefix(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	c := NewRedisResponseCacheWithClient(client, "")
	defer c.Close()

	assert.Equal(t, defaultKeyPrefix, c.keyPrefix)
}
