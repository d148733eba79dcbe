// Package cache stores serialized HTTP responses for a fixed TTL so repeated
// market-data reads do not hit the vendor API.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached response is served
const DefaultTTL = 10 * time.Minute

// ResponseCache is a TTL key/value store for serialized responses.
// Concurrent misses for the same key are not coalesced.
type ResponseCache interface {
	// Get returns the cached value and true, or false on a miss or expiry
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl; ttl <= 0 uses DefaultTTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases background resources
	Close() error
}

func effectiveTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
