// Package cache provides byte-level caching for analysis results.
//
// The [Cache] interface abstracts the storage tier. Three implementations
// are provided:
//   - [FileCache] stores entries on disk for CLI usage
//   - [RedisCache] stores entries in Redis for server deployments
//   - [NullCache] stores nothing, for tests or when caching is disabled
//
// Keys are built by a [Keyer] from graph fingerprints, so two structurally
// identical graphs share cached analysis results.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-level key-value store with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}