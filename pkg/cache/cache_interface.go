package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations must be safe
// for concurrent use by multiple in-flight requests.
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Increment atomically increments the counter stored under key and
	// returns the new value. Used by the rate limiter.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
